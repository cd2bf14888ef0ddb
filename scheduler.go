package fixer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/clockz"
)

// DefaultFrameInterval approximates one animation frame at 60Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// Scheduler defers work relative to the notification that triggered it.
// Callbacks must run on the host's notification context. Cancel functions
// must be safe to call more than once and after the callback has run.
type Scheduler interface {
	// Frame runs fn at the next animation frame boundary.
	Frame(fn func()) (cancel func())

	// After runs fn once d has elapsed.
	After(d time.Duration, fn func()) (cancel func())
}

// ClockScheduler implements Scheduler on a clockz.Clock. Timers fire on
// their own goroutines; callbacks are handed to post so they run on the
// host's notification context.
type ClockScheduler struct {
	clock clockz.Clock
	post  func(func())
	frame time.Duration
}

// NewClockScheduler creates a scheduler that delivers callbacks through post.
// Hosts usually pass Host.Post.
func NewClockScheduler(post func(func())) *ClockScheduler {
	return &ClockScheduler{
		clock: clockz.RealClock,
		post:  post,
		frame: DefaultFrameInterval,
	}
}

// Clock sets the clock used for timers.
// Use this with clockz.FakeClock for deterministic tests.
func (s *ClockScheduler) Clock(clock clockz.Clock) *ClockScheduler {
	s.clock = clock
	return s
}

// FrameInterval sets the delay used for Frame. Default: 16ms.
func (s *ClockScheduler) FrameInterval(d time.Duration) *ClockScheduler {
	s.frame = d
	return s
}

// Frame runs fn after one frame interval.
func (s *ClockScheduler) Frame(fn func()) func() {
	return s.After(s.frame, fn)
}

// After runs fn after d. A cancel that races with the timer firing still
// suppresses fn.
func (s *ClockScheduler) After(d time.Duration, fn func()) func() {
	timer := s.clock.NewTimer(d)
	done := make(chan struct{})
	var (
		canceled atomic.Bool
		once     sync.Once
	)

	go func() {
		select {
		case <-timer.C():
			s.post(func() {
				if !canceled.Load() {
					fn()
				}
			})
		case <-done:
		}
	}()

	return func() {
		once.Do(func() {
			canceled.Store(true)
			timer.Stop()
			close(done)
		})
	}
}

var _ Scheduler = (*ClockScheduler)(nil)
