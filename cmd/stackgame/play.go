package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/tickstack/audio"
	"github.com/lixenwraith/tickstack/core"
	"github.com/lixenwraith/tickstack/events"
	"github.com/lixenwraith/tickstack/logger"
	"github.com/lixenwraith/tickstack/stack"
)

const (
	startLives     = 3
	maxTargets     = 12
	spawnInterval  = 1200 * time.Millisecond
	targetLifetime = 6 * time.Second
	targetRunes    = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	styleTargetFresh = core.Style{Fg: core.RGB{R: 120, G: 220, B: 120}, Bg: core.RGBDefault}
	styleTargetOld   = core.Style{Fg: core.RGB{R: 230, G: 120, B: 80}, Bg: core.RGBDefault, Attrs: core.AttrBold}
	styleHUD         = core.Style{Fg: core.RGB{R: 220, G: 220, B: 120}, Bg: core.RGBDefault, Attrs: core.AttrBold}
)

// target is a letter on screen the player must type before it expires
type target struct {
	r    rune
	x, y int
	age  time.Duration
}

// PlayState runs the actual game: letters spawn, typing them scores,
// letting them expire costs a life
type PlayState struct {
	stack.BaseState

	app *App
	rng *rand.Rand

	score      int
	lives      int
	targets    []target
	spawnTimer time.Duration
	suspended  bool
}

// NewPlayState creates a fresh run
func NewPlayState(app *App) *PlayState {
	return &PlayState{
		app: app,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *PlayState) Init() {
	s.lives = startLives
	logger.Sugar.Infow("run started", "lives", s.lives)
}

func (s *PlayState) Dispose() {
	logger.Sugar.Infow("run ended", "score", s.score)
}

func (s *PlayState) Pause() {
	s.suspended = true
}

func (s *PlayState) Resume() {
	s.suspended = false
}

func (s *PlayState) HandleEvent(ev events.Event) {
	switch ev.Key {
	case events.KeyEscape:
		s.app.Audio.Play(audio.CuePause)
		// Overlay keeps this state's data intact underneath
		s.Manager().Push(NewPauseState(s.app, s))
	case events.KeyCtrlC:
		s.app.RequestQuit()
	case events.KeyRune:
		s.typeRune(ev.Rune)
	}
}

func (s *PlayState) typeRune(r rune) {
	for i, t := range s.targets {
		if t.r == r {
			s.targets = append(s.targets[:i], s.targets[i+1:]...)
			s.score++
			s.app.Audio.Play(audio.CueSelect)
			return
		}
	}
	s.app.Audio.Play(audio.CueMenuMove)
}

func (s *PlayState) Step(dt time.Duration) {
	// Age targets, expire the overdue
	kept := s.targets[:0]
	for _, t := range s.targets {
		t.age += dt
		if t.age >= targetLifetime {
			s.lives--
			continue
		}
		kept = append(kept, t)
	}
	s.targets = kept

	s.spawnTimer += dt
	if s.spawnTimer >= spawnInterval && len(s.targets) < maxTargets {
		s.spawnTimer = 0
		s.spawn()
	}

	if s.lives <= 0 {
		s.app.Audio.Play(audio.CueGameOver)
		// Takes effect next tick, this step finishes on the old top
		s.Manager().Push(NewGameOverState(s.app, s))
	}
}

func (s *PlayState) spawn() {
	w, h := s.app.Width, s.app.Height
	if w < 4 || h < 4 {
		return
	}

	r := rune(targetRunes[s.rng.Intn(len(targetRunes))])
	for _, t := range s.targets {
		if t.r == r {
			return // One of each letter at a time
		}
	}

	s.targets = append(s.targets, target{
		r: r,
		x: 1 + s.rng.Intn(w-2),
		y: 2 + s.rng.Intn(h-3),
	})
}

func (s *PlayState) Draw(dt time.Duration) {
	buf := s.app.Buffer
	buf.Clear(core.StyleDefault)

	for _, t := range s.targets {
		style := styleTargetFresh
		if t.age > targetLifetime/2 {
			style = styleTargetOld
		}
		buf.SetContent(t.x, t.y, t.r, style)
	}

	hud := fmt.Sprintf(" score %d   lives %d ", s.score, s.lives)
	buf.WriteString(0, 0, hud, styleHUD)
}
