package stack

import (
	"errors"
	"time"

	"github.com/lixenwraith/tickstack/events"
)

// ErrEmptyStack is returned by Pop on an empty stack.
// Popping nothing is a programmer error and must surface early
var ErrEmptyStack = errors.New("state stack is empty")

type opKind uint8

const (
	opPush opKind = iota
	opPop
	opChange
)

type pendingOp struct {
	kind  opKind
	state State
}

// Manager owns an ordered stack of States and guarantees that exactly
// one state (the top) receives input, step and draw delegation.
//
// All methods must be called from the single frame-loop goroutine.
// Mutations requested from within a state's own delegation (Step, Draw,
// HandleEvent) are deferred and applied after the delegation returns,
// so a state replacing itself mid-step takes effect on the next tick
type Manager struct {
	states []State

	// Deferred mutation handling during delegation
	delegating   bool
	pending      []pendingOp
	virtualDepth int // Stack depth as it will be after pending ops apply
}

// NewManager creates an empty state stack
func NewManager() *Manager {
	return &Manager{}
}

// Len returns the current stack depth
func (m *Manager) Len() int {
	return len(m.states)
}

// Current returns the top state, or (nil, false) when the stack is empty
func (m *Manager) Current() (State, bool) {
	if len(m.states) == 0 {
		return nil, false
	}
	return m.states[len(m.states)-1], true
}

// Push pauses the current top (if any), appends s, assigns the manager
// back-reference and calls Init on s exactly once.
// Postcondition: s is current
func (m *Manager) Push(s State) {
	if m.delegating {
		m.pending = append(m.pending, pendingOp{kind: opPush, state: s})
		m.virtualDepth++
		return
	}
	m.push(s)
}

// Pop disposes the current top, clears its back-reference, removes it,
// and resumes the new top if the stack is still non-empty.
// Returns ErrEmptyStack when there is nothing to pop
func (m *Manager) Pop() error {
	if m.delegating {
		if m.virtualDepth == 0 {
			return ErrEmptyStack
		}
		m.pending = append(m.pending, pendingOp{kind: opPop})
		m.virtualDepth--
		return nil
	}
	return m.pop()
}

// ChangeState disposes and removes every state on the stack in
// top-to-bottom order, then pushes s. This is the hard transition used
// for non-overlay changes (title to play, game-over to title)
func (m *Manager) ChangeState(s State) {
	if m.delegating {
		m.pending = append(m.pending, pendingOp{kind: opChange, state: s})
		m.virtualDepth = 1
		return
	}
	m.changeState(s)
}

// Clear disposes and removes every state, leaving the stack empty.
// Used on teardown
func (m *Manager) Clear() {
	if m.delegating {
		m.pending = append(m.pending, pendingOp{kind: opChange})
		m.virtualDepth = 0
		return
	}
	m.disposeAll()
}

// DispatchEvent forwards the event to the current state's HandleEvent.
// Events on an empty stack are dropped, not errors: there may
// legitimately be no active state during teardown
func (m *Manager) DispatchEvent(ev events.Event) {
	top, ok := m.Current()
	if !ok {
		return
	}
	m.beginDelegation()
	top.HandleEvent(ev)
	m.endDelegation()
}

// Step forwards a fixed simulation step to the current state
func (m *Manager) Step(dt time.Duration) {
	top, ok := m.Current()
	if !ok {
		return
	}
	m.beginDelegation()
	top.Step(dt)
	m.endDelegation()
}

// Draw forwards a render call to the current state
func (m *Manager) Draw(dt time.Duration) {
	top, ok := m.Current()
	if !ok {
		return
	}
	m.beginDelegation()
	top.Draw(dt)
	m.endDelegation()
}

// Tick forwards Step then Draw to the current state, in that order.
// Both calls go to the state that was current when the tick began:
// mutations requested inside Step do not redirect the Draw
func (m *Manager) Tick(dt time.Duration) {
	top, ok := m.Current()
	if !ok {
		return
	}
	m.beginDelegation()
	top.Step(dt)
	top.Draw(dt)
	m.endDelegation()
}

// ===== Internal primitives =====

func (m *Manager) beginDelegation() {
	m.delegating = true
	m.virtualDepth = len(m.states)
}

func (m *Manager) endDelegation() {
	m.delegating = false
	m.applyPending()
}

// applyPending replays mutations queued during delegation.
// Pop cannot fail here: virtual depth accounting already rejected
// over-pops at request time
func (m *Manager) applyPending() {
	for len(m.pending) > 0 {
		ops := m.pending
		m.pending = nil
		for _, op := range ops {
			switch op.kind {
			case opPush:
				m.push(op.state)
			case opPop:
				if err := m.pop(); err != nil {
					panic("stack: deferred pop on empty stack")
				}
			case opChange:
				if op.state == nil {
					m.disposeAll()
				} else {
					m.changeState(op.state)
				}
			}
		}
	}
}

func (m *Manager) push(s State) {
	if top, ok := m.Current(); ok {
		top.Pause()
	}
	m.states = append(m.states, s)
	s.SetManager(m)
	s.Init()
}

func (m *Manager) pop() error {
	if len(m.states) == 0 {
		return ErrEmptyStack
	}

	top := m.states[len(m.states)-1]
	top.Dispose()
	top.SetManager(nil)
	m.states[len(m.states)-1] = nil
	m.states = m.states[:len(m.states)-1]

	if next, ok := m.Current(); ok {
		next.Resume()
	}
	return nil
}

func (m *Manager) changeState(s State) {
	m.disposeAll()
	m.push(s)
}

// disposeAll removes every state top-to-bottom without resume calls
func (m *Manager) disposeAll() {
	for len(m.states) > 0 {
		top := m.states[len(m.states)-1]
		top.Dispose()
		top.SetManager(nil)
		m.states[len(m.states)-1] = nil
		m.states = m.states[:len(m.states)-1]
	}
}
