// Package audio provides short synthesized sound cues for state
// transitions, with graceful degradation when no backend is available.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a UI sound
type Cue uint8

const (
	CueMenuMove Cue = iota
	CueSelect
	CuePause
	CueResume
	CueGameOver
	cueCount
)

// tone describes the sine burst played for a cue
type tone struct {
	freq     float64
	duration time.Duration
}

// cueTones maps each cue to its tone. Indexed by Cue
var cueTones = [cueCount]tone{
	CueMenuMove: {freq: 660, duration: 30 * time.Millisecond},
	CueSelect:   {freq: 880, duration: 50 * time.Millisecond},
	CuePause:    {freq: 440, duration: 60 * time.Millisecond},
	CueResume:   {freq: 550, duration: 60 * time.Millisecond},
	CueGameOver: {freq: 220, duration: 300 * time.Millisecond},
}

// Service owns the speaker and plays cues.
// Initialization failure disables the service instead of failing the
// game: sound is never load-bearing
type Service struct {
	disabled atomic.Bool
	muted    atomic.Bool
}

// NewService initializes the audio backend.
// On failure the returned service is disabled and every Play is a no-op
func NewService(enabled bool) *Service {
	s := &Service{}
	if !enabled {
		s.disabled.Store(true)
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		s.disabled.Store(true)
	}
	return s
}

// Play queues the cue's tone. Returns false when disabled or muted
func (s *Service) Play(c Cue) bool {
	if s.disabled.Load() || s.muted.Load() || c >= cueCount {
		return false
	}

	t := cueTones[c]
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return false
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
	return true
}

// ToggleMute flips the mute state and returns the new value
func (s *Service) ToggleMute() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted returns the mute state
func (s *Service) IsMuted() bool {
	return s.muted.Load()
}

// IsDisabled returns true if no audio backend is available
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Close shuts the speaker down
func (s *Service) Close() {
	if !s.disabled.Load() {
		speaker.Close()
	}
}
