package pomodoro

import "time"

// Phase is the countdown mode.
type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

// Other returns the phase that follows this one.
func (phase Phase) Other() Phase {
	if phase == PhaseFocus {
		return PhaseBreak
	}
	return PhaseFocus
}

// State is a snapshot of the countdown.
type State struct {
	Phase            Phase
	SecondsRemaining int
	Running          bool
}

// Remaining returns the seconds left as a duration.
func (state State) Remaining() time.Duration {
	return time.Duration(state.SecondsRemaining) * time.Second
}

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventTick          EventType = "tick"
	EventPhaseComplete EventType = "phase_complete"
)

// Event represents an engine update for observers.
type Event struct {
	Type  EventType
	State State
	// Completed is the phase that just ran out; set on EventPhaseComplete.
	Completed Phase
}
