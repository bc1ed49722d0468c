package audio

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	resampleQuality   = 4
)

var (
	// ErrNoTrack indicates that no music file is configured.
	ErrNoTrack = errors.New("no music track configured")
	// ErrUnavailable indicates that no audio device could be opened.
	ErrUnavailable = errors.New("audio output unavailable")
)

// Output is the audio primitive used by the rest of the application.
type Output interface {
	PlayOnce(clip *Clip)
	PlayLooping(track string) error
	Stop()
}

// Clip is a short sound decoded fully into memory.
type Clip struct {
	buffer *beep.Buffer
}

// DecodeClip decodes WAV data into a replayable clip.
func DecodeClip(data []byte) (*Clip, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode clip: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return &Clip{buffer: buffer}, nil
}

// Duration returns the clip length.
func (clip *Clip) Duration() time.Duration {
	if clip == nil || clip.buffer == nil {
		return 0
	}
	return clip.buffer.Format().SampleRate.D(clip.buffer.Len())
}

// Player plays clips and a looping music track through the system speaker.
type Player struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	volume     float64
	music      *beep.Ctrl
	closer     beep.StreamSeekCloser
}

// NewPlayer opens the speaker at the given sample rate.
func NewPlayer(sampleRate beep.SampleRate) (*Player, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{sampleRate: sampleRate}, nil
}

// SetVolume sets the gain exponent applied to every sound (0 is unchanged).
func (player *Player) SetVolume(volume float64) {
	player.mu.Lock()
	player.volume = volume
	player.mu.Unlock()
}

// PlayOnce plays the clip without blocking.
func (player *Player) PlayOnce(clip *Clip) {
	if clip == nil || clip.buffer == nil {
		return
	}
	var streamer beep.Streamer = clip.buffer.Streamer(0, clip.buffer.Len())
	streamer = player.adapt(clip.buffer.Format(), streamer)
	speaker.Play(streamer)
}

// PlayLooping loads the track and loops it until Stop. A track that is
// already playing is replaced.
func (player *Player) PlayLooping(track string) error {
	if strings.TrimSpace(track) == "" {
		return ErrNoTrack
	}
	streamer, format, err := decodeTrack(track)
	if err != nil {
		return err
	}

	ctrl := &beep.Ctrl{Streamer: player.adapt(format, beep.Loop(-1, streamer))}

	player.mu.Lock()
	player.stopLocked()
	player.music = ctrl
	player.closer = streamer
	player.mu.Unlock()

	speaker.Play(ctrl)
	return nil
}

// Stop halts the music track. Clips that are already playing finish.
func (player *Player) Stop() {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.stopLocked()
}

// Close stops playback and releases the speaker.
func (player *Player) Close() {
	player.Stop()
	speaker.Clear()
}

func (player *Player) stopLocked() {
	if player.music != nil {
		speaker.Lock()
		player.music.Streamer = nil
		speaker.Unlock()
		player.music = nil
	}
	if player.closer != nil {
		_ = player.closer.Close()
		player.closer = nil
	}
}

func (player *Player) adapt(format beep.Format, streamer beep.Streamer) beep.Streamer {
	if format.SampleRate != player.sampleRate {
		streamer = beep.Resample(resampleQuality, format.SampleRate, player.sampleRate, streamer)
	}
	player.mu.Lock()
	volume := player.volume
	player.mu.Unlock()
	if volume == 0 {
		return streamer
	}
	return &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volume,
	}
}

func decodeTrack(track string) (beep.StreamSeekCloser, beep.Format, error) {
	file, err := os.Open(track)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open track: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(track)) {
	case ".wav":
		streamer, format, err = wav.Decode(file)
	default:
		streamer, format, err = mp3.Decode(file)
	}
	if err != nil {
		_ = file.Close()
		return nil, beep.Format{}, fmt.Errorf("decode track %s: %w", filepath.Base(track), err)
	}
	return streamer, format, nil
}

// Silent is an Output for systems without a working audio device.
type Silent struct{}

func (Silent) PlayOnce(*Clip) {}

func (Silent) PlayLooping(string) error {
	return ErrUnavailable
}

func (Silent) Stop() {}
