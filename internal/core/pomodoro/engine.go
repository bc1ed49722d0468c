package pomodoro

import (
	"fmt"
	"time"

	"github.com/elaine-zeng/pomoduck/internal/core/model"
	"github.com/elaine-zeng/pomoduck/internal/scheduler"
)

// TickInterval is the spacing between countdown ticks.
const TickInterval = time.Second

// Cue plays short audible feedback for a user action.
type Cue interface {
	PlayCue()
}

// Engine is the focus/break countdown state machine. It is not safe for
// concurrent use; every method must run on the UI goroutine, which is also
// where the scheduler delivers ticks.
type Engine struct {
	config    model.PomodoroConfig
	scheduler scheduler.Scheduler
	cue       Cue
	state     State
	job       *scheduler.Job
	observers []func(Event)
}

// New creates an idle engine at the start of a focus phase.
func New(config model.PomodoroConfig, sched scheduler.Scheduler, cue Cue) *Engine {
	config = config.Normalized()
	return &Engine{
		config:    config,
		scheduler: sched,
		cue:       cue,
		state: State{
			Phase:            PhaseFocus,
			SecondsRemaining: config.FocusSeconds(),
		},
	}
}

// Subscribe registers an observer called synchronously on every event.
func (engine *Engine) Subscribe(observer func(Event)) {
	if observer == nil {
		return
	}
	engine.observers = append(engine.observers, observer)
}

// State returns a copy of the current state.
func (engine *Engine) State() State {
	return engine.state
}

// Config returns the active phase durations.
func (engine *Engine) Config() model.PomodoroConfig {
	return engine.config
}

// Start begins counting down. The first tick runs immediately.
func (engine *Engine) Start() {
	engine.playCue()
	if engine.state.Running {
		return
	}
	engine.state.Running = true
	engine.emit(Event{Type: EventStateChange, State: engine.state})

	if engine.tick() {
		engine.job = scheduler.Every(engine.scheduler, TickInterval, engine.tick)
	}
}

// Pause stops the countdown, keeping the remaining time.
func (engine *Engine) Pause() {
	engine.playCue()
	engine.stopTicking()
	if !engine.state.Running {
		return
	}
	engine.state.Running = false
	engine.emit(Event{Type: EventStateChange, State: engine.state})
}

// Reset stops the countdown and returns to a full focus phase.
func (engine *Engine) Reset() {
	engine.playCue()
	engine.stopTicking()
	engine.state = State{
		Phase:            PhaseFocus,
		SecondsRemaining: engine.config.FocusSeconds(),
	}
	engine.emit(Event{Type: EventStateChange, State: engine.state})
}

// UpdateConfig replaces the phase durations. An idle engine that still shows
// the full length of its phase picks up the new length right away; otherwise
// the change applies at the next reset or phase change.
func (engine *Engine) UpdateConfig(config model.PomodoroConfig) {
	config = config.Normalized()
	untouched := !engine.state.Running &&
		engine.state.SecondsRemaining == engine.durationFor(engine.state.Phase)
	engine.config = config
	if untouched {
		engine.state.SecondsRemaining = engine.durationFor(engine.state.Phase)
		engine.emit(Event{Type: EventStateChange, State: engine.state})
	}
}

// tick advances the countdown by one second and reports whether another
// tick should be scheduled.
func (engine *Engine) tick() bool {
	if !engine.state.Running {
		return false
	}

	if engine.state.SecondsRemaining > 0 {
		engine.state.SecondsRemaining--
		engine.emit(Event{Type: EventTick, State: engine.state})
		return true
	}

	completed := engine.state.Phase
	engine.state.Running = false
	engine.state.Phase = completed.Other()
	engine.state.SecondsRemaining = engine.durationFor(engine.state.Phase)
	engine.job = nil

	engine.emit(Event{Type: EventStateChange, State: engine.state})
	engine.emit(Event{Type: EventPhaseComplete, State: engine.state, Completed: completed})
	return false
}

func (engine *Engine) stopTicking() {
	engine.job.Stop()
	engine.job = nil
}

func (engine *Engine) durationFor(phase Phase) int {
	if phase == PhaseBreak {
		return engine.config.BreakSeconds()
	}
	return engine.config.FocusSeconds()
}

func (engine *Engine) playCue() {
	if engine.cue != nil {
		engine.cue.PlayCue()
	}
}

func (engine *Engine) emit(event Event) {
	observers := append([]func(Event){}, engine.observers...)
	for _, observer := range observers {
		observer(event)
	}
}

// Format renders seconds as MM:SS. Minutes are not capped at 59.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
