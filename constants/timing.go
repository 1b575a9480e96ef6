package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameInterval is the frame notification interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// StepSize is the fixed simulation step consumed by the scheduler
	StepSize = 16 * time.Millisecond

	// MaxFrameDelta caps per-notification delta to bound catch-up work
	// after the process was suspended (e.g. terminal backgrounded).
	// Zero disables the clamp
	MaxFrameDelta = 250 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
