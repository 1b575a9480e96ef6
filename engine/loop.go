package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tickstack/core"
)

// FrameSource delivers frame notifications one at a time.
// Next blocks until the next notification or until stop closes.
// A source must only prepare the following notification after Next
// returns: the loop re-arms after each frame's work completes, so
// frame processing can never overlap
type FrameSource interface {
	Next(stop <-chan struct{}) (time.Time, bool)
}

// TimerSource is a FrameSource backed by a one-shot timer that is
// re-armed on each Next call. The first notification fires immediately
type TimerSource struct {
	interval time.Duration
	clock    TimeProvider
	timer    *time.Timer
}

// NewTimerSource creates a timer-backed frame source.
// clock stamps each notification; a nil clock uses the monotonic
// system clock. Pass a PausableClock to freeze frame deltas while paused
func NewTimerSource(interval time.Duration, clock TimeProvider) *TimerSource {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &TimerSource{
		interval: interval,
		clock:    clock,
	}
}

// Next re-arms the timer and blocks until it fires or stop closes
func (ts *TimerSource) Next(stop <-chan struct{}) (time.Time, bool) {
	if ts.timer == nil {
		ts.timer = time.NewTimer(0)
	} else {
		ts.timer.Reset(ts.interval)
	}

	select {
	case <-ts.timer.C:
		return ts.clock.Now(), true
	case <-stop:
		if !ts.timer.Stop() {
			select {
			case <-ts.timer.C:
			default:
			}
		}
		return time.Time{}, false
	}
}

// Loop drives the scheduler from a frame source on its own goroutine.
//
// Each iteration: wait for a frame notification, run the registered
// dispatch hook (input), advance the scheduler (zero or more fixed
// steps plus one draw), run the flush hook (present), then request the
// next notification. Stopping simply stops re-arming
type Loop struct {
	sched  *Scheduler
	source FrameSource

	// Hooks, set before Start
	dispatch func() // Input dispatch, runs before stepping
	flush    func() // Present, runs after drawing

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
	wg       sync.WaitGroup
}

// NewLoop creates a loop over the given scheduler and frame source
func NewLoop(sched *Scheduler, source FrameSource) *Loop {
	return &Loop{
		sched:    sched,
		source:   source,
		stopChan: make(chan struct{}),
	}
}

// SetDispatch registers the per-frame input dispatch hook, typically
// Router.DispatchAll over the input queue. Must be called before Start
func (l *Loop) SetDispatch(fn func()) {
	l.dispatch = fn
}

// SetFlush registers the per-frame present hook, typically the terminal
// buffer flush. Must be called before Start
func (l *Loop) SetFlush(fn func()) {
	l.flush = fn
}

// Start begins the loop goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the current frame to finish
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

// IsRunning returns true while the loop goroutine is active
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

func (l *Loop) run() {
	defer l.wg.Done()

	for {
		t, ok := l.source.Next(l.stopChan)
		if !ok {
			return
		}

		if l.dispatch != nil {
			l.dispatch()
		}

		l.sched.Advance(t)

		if l.flush != nil {
			l.flush()
		}
	}
}
