package audio

import "fmt"

// Cue plays a short feedback clip for user actions.
type Cue struct {
	output  Output
	clip    *Clip
	enabled bool
}

// NewCue creates an enabled cue.
func NewCue(output Output, clip *Clip) *Cue {
	return &Cue{output: output, clip: clip, enabled: true}
}

// SetEnabled mutes or unmutes the cue.
func (cue *Cue) SetEnabled(enabled bool) {
	cue.enabled = enabled
}

// Enabled reports whether the cue is audible.
func (cue *Cue) Enabled() bool {
	return cue.enabled
}

// PlayCue plays the clip once.
func (cue *Cue) PlayCue() {
	if cue == nil || !cue.enabled || cue.output == nil {
		return
	}
	cue.output.PlayOnce(cue.clip)
}

// Music is the two-state background music switch. It starts off.
type Music struct {
	output Output
	track  string
	on     bool
}

// NewMusic creates a switched-off music toggle for the given track.
func NewMusic(output Output, track string) *Music {
	return &Music{output: output, track: track}
}

// On reports whether music is playing.
func (music *Music) On() bool {
	return music.on
}

// SetTrack changes the file used the next time music is turned on.
func (music *Music) SetTrack(track string) {
	music.track = track
}

// Toggle flips the switch. When turning on fails the switch stays off.
func (music *Music) Toggle() (bool, error) {
	if music.on {
		music.TurnOff()
		return false, nil
	}
	if err := music.output.PlayLooping(music.track); err != nil {
		return false, fmt.Errorf("play music: %w", err)
	}
	music.on = true
	return true, nil
}

// TurnOff stops playback regardless of the current state.
func (music *Music) TurnOff() {
	music.output.Stop()
	music.on = false
}
