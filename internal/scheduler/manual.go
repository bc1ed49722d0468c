package scheduler

import "time"

// Manual is a deterministic scheduler driven by Advance. It is meant for tests.
type Manual struct {
	now     time.Duration
	seq     int
	pending []*manualEntry
}

type manualEntry struct {
	at        time.Duration
	seq       int
	callback  func()
	cancelled bool
}

// NewManual returns a scheduler whose clock starts at zero.
func NewManual() *Manual {
	return &Manual{}
}

// After queues callback to run once the clock has advanced by delay.
func (manual *Manual) After(delay time.Duration, callback func()) Cancel {
	if delay < 0 {
		delay = 0
	}
	manual.seq++
	entry := &manualEntry{
		at:       manual.now + delay,
		seq:      manual.seq,
		callback: callback,
	}
	manual.pending = append(manual.pending, entry)
	return func() {
		entry.cancelled = true
	}
}

// Advance moves the clock forward, running every due callback in order.
// Callbacks scheduled while advancing run too if they fall inside the window.
func (manual *Manual) Advance(delta time.Duration) {
	target := manual.now + delta
	for {
		index := manual.nextDue(target)
		if index < 0 {
			break
		}
		entry := manual.pending[index]
		manual.pending = append(manual.pending[:index], manual.pending[index+1:]...)
		manual.now = entry.at
		entry.callback()
	}
	manual.now = target
}

// Now returns the elapsed manual time.
func (manual *Manual) Now() time.Duration {
	return manual.now
}

// Pending returns the number of live callbacks.
func (manual *Manual) Pending() int {
	count := 0
	for _, entry := range manual.pending {
		if !entry.cancelled {
			count++
		}
	}
	return count
}

func (manual *Manual) nextDue(target time.Duration) int {
	best := -1
	live := manual.pending[:0]
	for _, entry := range manual.pending {
		if !entry.cancelled {
			live = append(live, entry)
		}
	}
	manual.pending = live
	for index, entry := range manual.pending {
		if entry.at > target {
			continue
		}
		if best < 0 || entry.at < manual.pending[best].at ||
			(entry.at == manual.pending[best].at && entry.seq < manual.pending[best].seq) {
			best = index
		}
	}
	return best
}
