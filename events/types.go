package events

import (
	"time"
)

// EventType represents the type of input event
type EventType int

const (
	// EventNone is the zero value, never delivered
	EventNone EventType = iota

	// EventKey is a discrete keyboard event
	// Producer: terminal poll goroutine | Consumer: frame loop
	EventKey

	// EventResize signals new terminal dimensions
	// Payload: Width, Height
	EventResize

	// EventQuit signals that the run should end (terminal closed, interrupt)
	EventQuit
)

// Key identifies a non-rune key. KeyRune means the Rune field carries input
type Key int16

const (
	KeyRune Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// Event is a discrete input or control event with a type and a code
type Event struct {
	Type EventType
	Key  Key
	Rune rune

	// Resize payload
	Width  int
	Height int

	// When is the producer timestamp
	When time.Time
}
