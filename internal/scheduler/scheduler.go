package scheduler

import (
	"time"

	"fyne.io/fyne/v2"
)

// Cancel drops a pending callback. Calling it after the callback ran is a no-op.
type Cancel func()

// Scheduler defers callbacks onto the host event loop.
type Scheduler interface {
	After(delay time.Duration, callback func()) Cancel
}

// UI runs callbacks on the fyne UI goroutine.
type UI struct{}

// NewUI returns a scheduler backed by time.AfterFunc and fyne.Do.
func NewUI() *UI {
	return &UI{}
}

// After schedules callback on the UI goroutine once delay has elapsed.
// Cancel must be called from the UI goroutine.
func (ui *UI) After(delay time.Duration, callback func()) Cancel {
	cancelled := false
	timer := time.AfterFunc(delay, func() {
		fyne.Do(func() {
			if cancelled {
				return
			}
			callback()
		})
	})
	return func() {
		cancelled = true
		timer.Stop()
	}
}

// Job is a cancellable repeating callback. The callback reports whether the
// job should keep going; it is consulted before every re-arm.
type Job struct {
	scheduler Scheduler
	interval  time.Duration
	run       func() bool
	cancel    Cancel
	stopped   bool
}

// Every arms run after interval and keeps re-arming while run returns true.
func Every(scheduler Scheduler, interval time.Duration, run func() bool) *Job {
	job := &Job{
		scheduler: scheduler,
		interval:  interval,
		run:       run,
	}
	job.arm()
	return job
}

// Stop cancels the pending run. Safe to call more than once and on nil.
func (job *Job) Stop() {
	if job == nil || job.stopped {
		return
	}
	job.stopped = true
	if job.cancel != nil {
		job.cancel()
		job.cancel = nil
	}
}

// Active reports whether another run is scheduled.
func (job *Job) Active() bool {
	return job != nil && !job.stopped
}

func (job *Job) arm() {
	job.cancel = job.scheduler.After(job.interval, job.fire)
}

func (job *Job) fire() {
	job.cancel = nil
	if job.stopped {
		return
	}
	if !job.run() {
		job.stopped = true
		return
	}
	if job.stopped {
		return
	}
	job.arm()
}
