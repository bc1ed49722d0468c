package animation

import "time"

// Config contains animation timing and sizing values.
type Config struct {
	FrameInterval time.Duration
	Width         int
	Height        int
}

// DefaultConfig returns the duck animation defaults.
func DefaultConfig() Config {
	return Config{
		FrameInterval: 100 * time.Millisecond,
		Width:         330,
		Height:        250,
	}
}
