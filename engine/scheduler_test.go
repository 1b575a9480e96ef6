package engine

import (
	"testing"
	"time"
)

// recordingTarget captures step/draw sequences for assertions
type recordingTarget struct {
	steps []time.Duration
	draws []time.Duration
}

func (r *recordingTarget) Step(dt time.Duration) {
	r.steps = append(r.steps, dt)
}

func (r *recordingTarget) Draw(dt time.Duration) {
	r.draws = append(r.draws, dt)
}

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int64) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestFirstNotificationHasZeroDelta(t *testing.T) {
	target := &recordingTarget{}
	s := NewScheduler(target, 16*time.Millisecond, 0)

	steps, delta := s.Advance(at(0))

	if delta != 0 {
		t.Errorf("Expected zero delta on first notification, got %v", delta)
	}
	if steps != 0 {
		t.Errorf("Expected zero steps on first notification, got %d", steps)
	}
	if len(target.draws) != 1 || target.draws[0] != 0 {
		t.Errorf("Expected exactly one draw with delta 0, got %v", target.draws)
	}
	if len(target.steps) != 0 {
		t.Errorf("Expected no simulation steps, got %v", target.steps)
	}
}

func TestAccumulatorConsumesFixedSteps(t *testing.T) {
	target := &recordingTarget{}
	s := NewScheduler(target, 16*time.Millisecond, 0)

	s.Advance(at(0))
	steps, delta := s.Advance(at(40))

	if delta != 40*time.Millisecond {
		t.Errorf("Expected delta 40ms, got %v", delta)
	}
	if steps != 2 {
		t.Errorf("Expected 2 steps consumed (40 -> 24 -> 8), got %d", steps)
	}
	if s.Accumulator() != 8*time.Millisecond {
		t.Errorf("Expected accumulator left at 8ms, got %v", s.Accumulator())
	}
	for i, st := range target.steps {
		if st != 16*time.Millisecond {
			t.Errorf("Step %d was %v, all steps must be the fixed size", i, st)
		}
	}
	// Draw receives the frame delta, not the consumed step count
	if len(target.draws) != 2 || target.draws[1] != 40*time.Millisecond {
		t.Errorf("Expected one draw per notification with delta 40ms, got %v", target.draws)
	}
}

func TestLeftoverTimeCarriesAcrossFrames(t *testing.T) {
	target := &recordingTarget{}
	s := NewScheduler(target, 16*time.Millisecond, 0)

	s.Advance(at(0))
	s.Advance(at(10)) // acc 10, no step
	s.Advance(at(20)) // acc 20, one step, acc 4

	if got := len(target.steps); got != 1 {
		t.Errorf("Expected exactly one step across the two frames, got %d", got)
	}
	if s.Accumulator() != 4*time.Millisecond {
		t.Errorf("Expected accumulator 4ms, got %v", s.Accumulator())
	}
}

func TestMaxDeltaClampsCatchUp(t *testing.T) {
	target := &recordingTarget{}
	s := NewScheduler(target, 16*time.Millisecond, 100*time.Millisecond)

	s.Advance(at(0))
	// Process suspended for 10 seconds
	steps, delta := s.Advance(at(10_000))

	if delta != 100*time.Millisecond {
		t.Errorf("Expected delta clamped to 100ms, got %v", delta)
	}
	if steps != 6 {
		t.Errorf("Expected 6 steps from the clamped delta, got %d", steps)
	}
}

func TestUnclampedSchedulerReplaysFully(t *testing.T) {
	target := &recordingTarget{}
	s := NewScheduler(target, 16*time.Millisecond, 0)

	s.Advance(at(0))
	steps, _ := s.Advance(at(160))

	if steps != 10 {
		t.Errorf("Expected full replay of 10 steps with clamp disabled, got %d", steps)
	}
}

func TestNonMonotonicSampleTreatedAsZero(t *testing.T) {
	target := &recordingTarget{}
	s := NewScheduler(target, 16*time.Millisecond, 0)

	s.Advance(at(100))
	steps, delta := s.Advance(at(50))

	if delta != 0 || steps != 0 {
		t.Errorf("Expected backward sample to contribute nothing, got delta %v steps %d", delta, steps)
	}
}

func TestResetStartsFreshSequence(t *testing.T) {
	target := &recordingTarget{}
	s := NewScheduler(target, 16*time.Millisecond, 0)

	s.Advance(at(0))
	s.Advance(at(40))
	s.Reset()

	steps, delta := s.Advance(at(10_000))
	if delta != 0 || steps != 0 {
		t.Errorf("Expected fresh sequence after reset, got delta %v steps %d", delta, steps)
	}
	if s.Accumulator() != 0 {
		t.Errorf("Expected empty accumulator after reset, got %v", s.Accumulator())
	}
}

func TestCountersTrackTotals(t *testing.T) {
	target := &recordingTarget{}
	s := NewScheduler(target, 16*time.Millisecond, 0)

	s.Advance(at(0))
	s.Advance(at(40))
	s.Advance(at(80))

	if s.FrameCount() != 3 {
		t.Errorf("Expected 3 frames, got %d", s.FrameCount())
	}
	if s.StepCount() != uint64(len(target.steps)) {
		t.Errorf("Step counter %d does not match delivered steps %d", s.StepCount(), len(target.steps))
	}
}
