package engine_test

import (
	"testing"
	"time"

	"github.com/lixenwraith/tickstack/engine"
	"github.com/lixenwraith/tickstack/events"
	"github.com/lixenwraith/tickstack/stack"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int64) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

// simState counts fixed steps and frame draws
type simState struct {
	stack.BaseState

	steps int
	draws int

	stepSize time.Duration
}

func (s *simState) Step(dt time.Duration) {
	s.steps++
	s.stepSize = dt
}

func (s *simState) Draw(dt time.Duration) {
	s.draws++
}

// overlayTrigger pushes an overlay over itself after a number of steps
type overlayTrigger struct {
	simState

	after   int
	overlay stack.State
}

func (s *overlayTrigger) Step(dt time.Duration) {
	s.simState.Step(dt)
	if s.steps == s.after {
		s.Manager().Push(s.overlay)
	}
}

func TestSchedulerDrivesStateStack(t *testing.T) {
	m := stack.NewManager()
	play := &simState{}
	m.Push(play)

	sched := engine.NewScheduler(m, 16*time.Millisecond, 0)

	sched.Advance(at(0))
	sched.Advance(at(40))

	if play.steps != 2 {
		t.Errorf("Expected 2 fixed steps delivered to the active state, got %d", play.steps)
	}
	if play.stepSize != 16*time.Millisecond {
		t.Errorf("State must receive the fixed step size, got %v", play.stepSize)
	}
	if play.draws != 2 {
		t.Errorf("Expected one draw per notification, got %d", play.draws)
	}
}

func TestOverlayPushedMidStepTakesOverNextFrame(t *testing.T) {
	m := stack.NewManager()
	pause := &simState{}
	play := &overlayTrigger{after: 1, overlay: pause}
	m.Push(play)

	sched := engine.NewScheduler(m, 16*time.Millisecond, 0)

	sched.Advance(at(0))
	// Two steps due: the first triggers the push, the second already
	// lands on the overlay
	sched.Advance(at(32))

	if play.steps != 1 {
		t.Errorf("Expected the trigger state to run exactly one step, got %d", play.steps)
	}
	if pause.steps != 1 {
		t.Errorf("Expected the overlay to receive the remaining step, got %d", pause.steps)
	}

	sched.Advance(at(48))
	if pause.draws == 0 {
		t.Error("Overlay must receive draws once active")
	}
}

func TestEmptyStackSchedulerIsHarmless(t *testing.T) {
	m := stack.NewManager()
	sched := engine.NewScheduler(m, 16*time.Millisecond, 0)

	// Teardown case: notifications with no active state
	sched.Advance(at(0))
	sched.Advance(at(100))

	if m.Len() != 0 {
		t.Error("Stack must stay empty")
	}
}

func TestPausableClockFreezesSimulation(t *testing.T) {
	src := engine.NewMockTimeProvider(epoch)
	clock := engine.NewPausableClock(src)

	m := stack.NewManager()
	play := &simState{}
	m.Push(play)
	sched := engine.NewScheduler(m, 16*time.Millisecond, 0)

	sched.Advance(clock.Now())
	src.Advance(32 * time.Millisecond)
	sched.Advance(clock.Now())

	stepsBeforePause := play.steps
	if stepsBeforePause != 2 {
		t.Fatalf("Expected 2 steps before pause, got %d", stepsBeforePause)
	}

	clock.Pause()
	for i := 0; i < 5; i++ {
		src.Advance(32 * time.Millisecond)
		sched.Advance(clock.Now())
	}

	if play.steps != stepsBeforePause {
		t.Error("Simulation must not advance while the clock is paused")
	}
	if play.draws != 7 {
		t.Errorf("Rendering must continue while paused, got %d draws", play.draws)
	}

	clock.Resume()
	src.Advance(32 * time.Millisecond)
	sched.Advance(clock.Now())

	if play.steps != stepsBeforePause+2 {
		t.Errorf("Expected exactly 2 more steps after resume, got %d", play.steps-stepsBeforePause)
	}
}

func TestEventDispatchBetweenFrames(t *testing.T) {
	m := stack.NewManager()
	play := &eventCountingState{}
	m.Push(play)

	queue := events.NewQueue()
	router := events.NewRouter[*stack.Manager](queue)
	router.Register(forwarder{})

	queue.Push(events.Event{Type: events.EventKey, Key: events.KeyRune, Rune: 'a'})
	router.DispatchAll(m)

	if play.events != 1 {
		t.Errorf("Expected the active state to receive the routed event, got %d", play.events)
	}
}

type eventCountingState struct {
	stack.BaseState
	events int
}

func (s *eventCountingState) HandleEvent(ev events.Event) {
	s.events++
}

type forwarder struct{}

func (forwarder) EventTypes() []events.EventType {
	return []events.EventType{events.EventKey}
}

func (forwarder) HandleEvent(m *stack.Manager, ev events.Event) {
	m.DispatchEvent(ev)
}
