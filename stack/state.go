package stack

import (
	"time"

	"github.com/lixenwraith/tickstack/events"
)

// State is a self-contained unit of game execution logic with its own
// input handling, stepping and rendering. Exactly one state (the top of
// the owning Manager's stack) is active at any time.
//
// Lifecycle contract:
//   - Init is called exactly once, after the state is pushed
//   - Pause is called when another state is pushed on top
//   - Resume is called when the state above is popped
//   - Dispose is called exactly once on removal; the instance must
//     never be reused afterward
type State interface {
	// Init performs one-time setup. The manager back-reference is
	// already assigned when Init runs
	Init()

	// Dispose releases any resources the state holds
	Dispose()

	// Pause signals the state to suspend active behavior while keeping
	// its data intact
	Pause()

	// Resume signals the state to continue from where Pause left it
	Resume()

	// HandleEvent processes a discrete input event
	HandleEvent(ev events.Event)

	// Step advances the simulation by a fixed timestep
	Step(dt time.Duration)

	// Draw renders the state. dt is the frame delta, not the step size
	Draw(dt time.Duration)

	// SetManager assigns or clears the owning manager back-reference.
	// Called by the manager on push and removal, never by user code
	SetManager(m *Manager)

	// Manager returns the owning manager, or nil when not on a stack
	Manager() *Manager
}

// BaseState carries the manager back-reference and no-op defaults for
// the optional hooks. Concrete states embed it and override what they
// need
type BaseState struct {
	manager *Manager
}

// SetManager implements State
func (b *BaseState) SetManager(m *Manager) {
	b.manager = m
}

// Manager implements State
func (b *BaseState) Manager() *Manager {
	return b.manager
}

func (b *BaseState) Init()    {}
func (b *BaseState) Dispose() {}
func (b *BaseState) Pause()   {}
func (b *BaseState) Resume()  {}

func (b *BaseState) HandleEvent(ev events.Event) {}

func (b *BaseState) Step(dt time.Duration) {}
func (b *BaseState) Draw(dt time.Duration) {}
