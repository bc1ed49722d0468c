package animation

import (
	"image"
	"time"

	"github.com/elaine-zeng/pomoduck/internal/scheduler"
)

// Loop cycles through a fixed set of frames forever.
type Loop struct {
	frames []image.Image
	index  int
	show   func(image.Image)
	job    *scheduler.Job
}

// NewLoop creates a loop positioned at the first frame.
func NewLoop(frames []image.Image, show func(image.Image)) (*Loop, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return &Loop{
		frames: frames,
		show:   show,
	}, nil
}

// Advance shows the current frame and moves to the next, wrapping to the
// first frame after the last.
func (loop *Loop) Advance() {
	if loop.show != nil {
		loop.show(loop.frames[loop.index])
	}
	loop.index = (loop.index + 1) % len(loop.frames)
}

// Index returns the frame shown by the next Advance.
func (loop *Loop) Index() int {
	return loop.index
}

// Len returns the number of frames.
func (loop *Loop) Len() int {
	return len(loop.frames)
}

// Start shows the first frame now and then one frame per interval.
func (loop *Loop) Start(sched scheduler.Scheduler, interval time.Duration) {
	loop.Stop()
	loop.Advance()
	loop.job = scheduler.Every(sched, interval, func() bool {
		loop.Advance()
		return true
	})
}

// Stop halts the loop. The current frame stays on screen.
func (loop *Loop) Stop() {
	loop.job.Stop()
	loop.job = nil
}
