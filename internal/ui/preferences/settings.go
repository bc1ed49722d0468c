package preferences

import (
	"time"

	"github.com/elaine-zeng/pomoduck/internal/core/model"
)

const (
	MinVolume = -5.0
	MaxVolume = 2.0
)

// Settings defines editable user preferences.
type Settings struct {
	FocusDuration time.Duration
	BreakDuration time.Duration
	CueEnabled    bool

	// Volume is a base-2 gain exponent: 0 plays at source level, -1 halves it.
	Volume    float64
	MusicPath string
}

// DefaultSettings returns default settings for Pomoduck.
func DefaultSettings() Settings {
	return Settings{
		FocusDuration: model.DefaultFocusDuration,
		BreakDuration: model.DefaultBreakDuration,
		CueEnabled:    true,
		Volume:        0,
		MusicPath:     "assets/lofi.mp3",
	}
}

// PomodoroConfig converts settings to the engine configuration.
func (settings Settings) PomodoroConfig() model.PomodoroConfig {
	return model.PomodoroConfig{
		Focus: settings.FocusDuration,
		Break: settings.BreakDuration,
	}.Normalized()
}

// ClampVolume limits volume to the supported range.
func ClampVolume(volume float64) float64 {
	if volume < MinVolume {
		return MinVolume
	}
	if volume > MaxVolume {
		return MaxVolume
	}
	return volume
}
