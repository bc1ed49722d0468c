package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/elaine-zeng/pomoduck/resources"
)

type fakeOutput struct {
	played  []*Clip
	looping []string
	stops   int
	failure error
}

func (output *fakeOutput) PlayOnce(clip *Clip) {
	output.played = append(output.played, clip)
}

func (output *fakeOutput) PlayLooping(track string) error {
	if output.failure != nil {
		return output.failure
	}
	output.looping = append(output.looping, track)
	return nil
}

func (output *fakeOutput) Stop() {
	output.stops++
}

func TestMusicStartsOff(t *testing.T) {
	music := NewMusic(&fakeOutput{}, "song.mp3")
	if music.On() {
		t.Error("expected music to start off")
	}
}

func TestMusicToggle(t *testing.T) {
	output := &fakeOutput{}
	music := NewMusic(output, "song.mp3")

	on, err := music.Toggle()
	if err != nil || !on {
		t.Fatalf("expected music on, got on=%v err=%v", on, err)
	}
	if len(output.looping) != 1 || output.looping[0] != "song.mp3" {
		t.Errorf("expected song.mp3 to loop, got %v", output.looping)
	}

	on, err = music.Toggle()
	if err != nil || on {
		t.Fatalf("expected music off, got on=%v err=%v", on, err)
	}
	if output.stops != 1 {
		t.Errorf("expected one stop, got %d", output.stops)
	}
}

func TestMusicFailureStaysOff(t *testing.T) {
	failure := errors.New("no such file")
	output := &fakeOutput{failure: failure}
	music := NewMusic(output, "missing.mp3")

	on, err := music.Toggle()
	if on || music.On() {
		t.Error("expected music to stay off")
	}
	if !errors.Is(err, failure) {
		t.Errorf("expected wrapped failure, got %v", err)
	}
}

func TestMusicTurnOffIsUnconditional(t *testing.T) {
	output := &fakeOutput{}
	music := NewMusic(output, "song.mp3")
	music.TurnOff()
	music.TurnOff()

	if output.stops != 2 {
		t.Errorf("expected two stops, got %d", output.stops)
	}
	if music.On() {
		t.Error("expected music off")
	}
}

func TestMusicSetTrack(t *testing.T) {
	output := &fakeOutput{}
	music := NewMusic(output, "old.mp3")
	music.SetTrack("new.mp3")
	music.Toggle()

	if len(output.looping) != 1 || output.looping[0] != "new.mp3" {
		t.Errorf("expected new.mp3, got %v", output.looping)
	}
}

func TestSilentOutputRefusesMusic(t *testing.T) {
	music := NewMusic(Silent{}, "song.mp3")
	on, err := music.Toggle()
	if on || !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got on=%v err=%v", on, err)
	}
}

func TestCue(t *testing.T) {
	output := &fakeOutput{}
	clip := &Clip{}
	cue := NewCue(output, clip)

	cue.PlayCue()
	cue.SetEnabled(false)
	cue.PlayCue()

	if len(output.played) != 1 || output.played[0] != clip {
		t.Errorf("expected exactly one cue played, got %d", len(output.played))
	}
	if cue.Enabled() {
		t.Error("expected cue disabled")
	}
}

func TestNilCueIsSafe(t *testing.T) {
	var cue *Cue
	cue.PlayCue()
}

func TestDecodeEmbeddedPop(t *testing.T) {
	data, err := resources.Sound(resources.PopSound)
	if err != nil {
		t.Fatalf("load pop sound: %v", err)
	}
	clip, err := DecodeClip(data)
	if err != nil {
		t.Fatalf("decode pop sound: %v", err)
	}
	if clip.Duration() < 50*time.Millisecond || clip.Duration() > 200*time.Millisecond {
		t.Errorf("expected a short pop, got %v", clip.Duration())
	}
}

func TestDecodeClipRejectsGarbage(t *testing.T) {
	if _, err := DecodeClip([]byte("not a wav")); err == nil {
		t.Error("expected an error for invalid data")
	}
}

func TestPlayLoopingWithoutTrack(t *testing.T) {
	player := &Player{sampleRate: DefaultSampleRate}
	if err := player.PlayLooping("  "); !errors.Is(err, ErrNoTrack) {
		t.Errorf("expected ErrNoTrack, got %v", err)
	}
}

func TestPlayLoopingMissingFile(t *testing.T) {
	player := &Player{sampleRate: DefaultSampleRate}
	if err := player.PlayLooping(t.TempDir() + "/missing.mp3"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
