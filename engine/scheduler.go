package engine

import (
	"time"
)

// Target receives fixed simulation steps and per-frame render calls.
// The stack.Manager satisfies this interface
type Target interface {
	// Step advances the simulation by exactly dt
	Step(dt time.Duration)

	// Draw renders the latest state. dt is the frame delta, decoupled
	// from how many simulation steps ran this frame
	Draw(dt time.Duration)
}

// Scheduler converts variable-interval frame notifications into a
// deterministic sequence of fixed-size simulation steps plus exactly
// one render call per notification.
//
// Leftover time carries across frames in the accumulator, so jitter in
// the notification source never changes the simulated step size
type Scheduler struct {
	target   Target
	stepSize time.Duration

	// maxDelta caps a single frame delta to bound catch-up work after
	// the process was suspended. Zero disables the clamp
	maxDelta time.Duration

	lastTime    time.Time
	hasLast     bool
	accumulator time.Duration

	stepCount  uint64
	frameCount uint64
}

// NewScheduler creates a scheduler with the given fixed step size.
// maxDelta bounds per-notification delta; pass 0 to disable clamping
func NewScheduler(target Target, stepSize, maxDelta time.Duration) *Scheduler {
	if stepSize <= 0 {
		panic("engine: scheduler step size must be positive")
	}
	return &Scheduler{
		target:   target,
		stepSize: stepSize,
		maxDelta: maxDelta,
	}
}

// Advance processes one frame notification at time t.
// Returns the number of simulation steps consumed and the frame delta
// passed to Draw
func (s *Scheduler) Advance(t time.Time) (steps int, delta time.Duration) {
	if s.hasLast {
		delta = t.Sub(s.lastTime)
		if delta < 0 {
			// Non-monotonic sample, treat as no elapsed time
			delta = 0
		}
		if s.maxDelta > 0 && delta > s.maxDelta {
			delta = s.maxDelta
		}
	}
	s.lastTime = t
	s.hasLast = true

	s.accumulator += delta
	for s.accumulator >= s.stepSize {
		s.target.Step(s.stepSize)
		s.accumulator -= s.stepSize
		steps++
	}

	// Exactly one render per notification, always with the frame delta
	s.target.Draw(delta)

	s.stepCount += uint64(steps)
	s.frameCount++
	return steps, delta
}

// Accumulator returns unconsumed simulation time
func (s *Scheduler) Accumulator() time.Duration {
	return s.accumulator
}

// StepSize returns the fixed simulation step
func (s *Scheduler) StepSize() time.Duration {
	return s.stepSize
}

// StepCount returns total simulation steps consumed
func (s *Scheduler) StepCount() uint64 {
	return s.stepCount
}

// FrameCount returns total frame notifications processed
func (s *Scheduler) FrameCount() uint64 {
	return s.frameCount
}

// Reset clears timing state so the next notification starts a fresh
// sequence (delta 0, empty accumulator). Used when a new session starts
func (s *Scheduler) Reset() {
	s.lastTime = time.Time{}
	s.hasLast = false
	s.accumulator = 0
}
