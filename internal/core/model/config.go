package model

import "time"

const (
	DefaultFocusDuration = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
)

// PomodoroConfig defines the length of each phase.
type PomodoroConfig struct {
	Focus time.Duration
	Break time.Duration
}

// DefaultPomodoroConfig returns the classic 25/5 cycle.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		Focus: DefaultFocusDuration,
		Break: DefaultBreakDuration,
	}
}

// Normalized truncates durations to whole seconds and replaces
// non-positive values with defaults.
func (config PomodoroConfig) Normalized() PomodoroConfig {
	config.Focus = config.Focus.Truncate(time.Second)
	config.Break = config.Break.Truncate(time.Second)
	if config.Focus <= 0 {
		config.Focus = DefaultFocusDuration
	}
	if config.Break <= 0 {
		config.Break = DefaultBreakDuration
	}
	return config
}

// FocusSeconds returns the focus phase length in seconds.
func (config PomodoroConfig) FocusSeconds() int {
	return int(config.Focus / time.Second)
}

// BreakSeconds returns the break phase length in seconds.
func (config PomodoroConfig) BreakSeconds() int {
	return int(config.Break / time.Second)
}
