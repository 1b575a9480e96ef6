package main

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tickstack/audio"
	"github.com/lixenwraith/tickstack/core"
	"github.com/lixenwraith/tickstack/events"
	"github.com/lixenwraith/tickstack/logger"
	"github.com/lixenwraith/tickstack/stack"
)

var styleOverlay = core.Style{Fg: core.RGB{R: 255, G: 255, B: 255}, Bg: core.RGB{R: 40, G: 40, B: 80}, Attrs: core.AttrBold}

// PauseState is an overlay pushed on top of the play state. It holds a
// direct reference to the state beneath and re-invokes its Draw, so the
// frozen game stays visible under the pause box. The composition is the
// overlay's own doing, the stack manager knows nothing about it
type PauseState struct {
	stack.BaseState

	app     *App
	beneath stack.State // Non-owning, drawn as backdrop
}

// NewPauseState creates the pause overlay over the given state
func NewPauseState(app *App, beneath stack.State) *PauseState {
	return &PauseState{app: app, beneath: beneath}
}

func (s *PauseState) Init() {
	s.app.Clock.Pause()
	logger.Sugar.Infow("paused")
}

func (s *PauseState) Dispose() {
	s.app.Clock.Resume()
	logger.Sugar.Infow("resumed")
}

func (s *PauseState) HandleEvent(ev events.Event) {
	switch ev.Key {
	case events.KeyEscape, events.KeyEnter:
		s.app.Audio.Play(audio.CueResume)
		if err := s.Manager().Pop(); err != nil {
			logger.Sugar.Errorw("pause pop failed", "error", err)
		}
	case events.KeyCtrlC:
		s.app.RequestQuit()
	}
}

func (s *PauseState) Draw(dt time.Duration) {
	// Backdrop first: the paused game, unchanged
	s.beneath.Draw(dt)

	drawCenteredBox(s.app, " PAUSED ", "Esc resumes")
}

// GameOverState is an overlay over the finished run. Enter performs the
// hard transition back to the title, disposing both stacked states
type GameOverState struct {
	stack.BaseState

	app     *App
	beneath *PlayState // Non-owning, drawn as backdrop
}

// NewGameOverState creates the game-over overlay
func NewGameOverState(app *App, beneath *PlayState) *GameOverState {
	return &GameOverState{app: app, beneath: beneath}
}

func (s *GameOverState) Init() {
	logger.Sugar.Infow("game over", "score", s.beneath.score)
}

func (s *GameOverState) HandleEvent(ev events.Event) {
	switch ev.Key {
	case events.KeyEnter:
		s.app.Audio.Play(audio.CueSelect)
		s.Manager().ChangeState(NewTitleState(s.app))
	case events.KeyEscape, events.KeyCtrlC:
		s.app.RequestQuit()
	}
}

func (s *GameOverState) Draw(dt time.Duration) {
	s.beneath.Draw(dt)

	drawCenteredBox(s.app, " GAME OVER ", fmt.Sprintf("final score %d, Enter restarts", s.beneath.score))
}

// drawCenteredBox paints a minimal two-line message box over the buffer
func drawCenteredBox(app *App, title, hint string) {
	buf := app.Buffer
	cx := app.Width / 2
	cy := app.Height / 2

	width := len(title)
	if len(hint) > width {
		width = len(hint)
	}
	width += 4

	for y := cy - 1; y <= cy+1; y++ {
		for x := cx - width/2; x < cx+width/2; x++ {
			buf.SetContent(x, y, ' ', styleOverlay)
		}
	}
	buf.WriteString(cx-len(title)/2, cy-1, title, styleOverlay)
	buf.WriteString(cx-len(hint)/2, cy+1, hint, styleOverlay)
}
