package fixertest

import (
	"sort"
	"time"

	"github.com/zoobzio/fixer"
)

// Scheduler is a manual fixer.Scheduler. Frames run on Flush; timers run on
// Advance. Nothing runs on its own.
type Scheduler struct {
	now    time.Duration
	seq    int
	frames []*task
	timers []*task
}

type task struct {
	at       time.Duration
	seq      int
	fn       func()
	canceled bool
}

// NewScheduler creates a manual scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Frame implements fixer.Scheduler.
func (s *Scheduler) Frame(fn func()) func() {
	t := &task{fn: fn}
	s.frames = append(s.frames, t)
	return func() { t.canceled = true }
}

// After implements fixer.Scheduler.
func (s *Scheduler) After(d time.Duration, fn func()) func() {
	s.seq++
	t := &task{at: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.canceled = true }
}

// Flush runs the frames queued before the call and returns how many ran.
// Frames requested while flushing run on the next Flush.
func (s *Scheduler) Flush() int {
	queued := s.frames
	s.frames = nil
	n := 0
	for _, t := range queued {
		if t.canceled {
			continue
		}
		t.canceled = true
		t.fn()
		n++
	}
	return n
}

// Advance moves time forward by d and runs every timer that falls due, in
// deadline order. It returns how many ran.
func (s *Scheduler) Advance(d time.Duration) int {
	s.now += d
	n := 0
	for {
		due := s.due()
		if due == nil {
			return n
		}
		due.canceled = true
		due.fn()
		n++
	}
}

func (s *Scheduler) due() *task {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.canceled {
			live = append(live, t)
		}
	}
	s.timers = live
	sort.Slice(s.timers, func(i, j int) bool {
		if s.timers[i].at != s.timers[j].at {
			return s.timers[i].at < s.timers[j].at
		}
		return s.timers[i].seq < s.timers[j].seq
	})
	if len(s.timers) == 0 || s.timers[0].at > s.now {
		return nil
	}
	return s.timers[0]
}

// PendingFrames returns the number of queued, uncanceled frames.
func (s *Scheduler) PendingFrames() int {
	n := 0
	for _, t := range s.frames {
		if !t.canceled {
			n++
		}
	}
	return n
}

// PendingTimers returns the number of uncanceled timers.
func (s *Scheduler) PendingTimers() int {
	n := 0
	for _, t := range s.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}

var _ fixer.Scheduler = (*Scheduler)(nil)
