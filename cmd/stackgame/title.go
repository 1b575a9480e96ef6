package main

import (
	"time"

	"github.com/lixenwraith/tickstack/audio"
	"github.com/lixenwraith/tickstack/core"
	"github.com/lixenwraith/tickstack/events"
	"github.com/lixenwraith/tickstack/logger"
	"github.com/lixenwraith/tickstack/stack"
)

var (
	styleTitle  = core.Style{Fg: core.RGB{R: 80, G: 220, B: 120}, Bg: core.RGBDefault, Attrs: core.AttrBold}
	styleText   = core.Style{Fg: core.RGB{R: 200, G: 200, B: 200}, Bg: core.RGBDefault}
	styleDimmed = core.Style{Fg: core.RGB{R: 100, G: 100, B: 100}, Bg: core.RGBDefault, Attrs: core.AttrDim}
)

// TitleState is the entry screen. Enter starts a run, Escape quits
type TitleState struct {
	stack.BaseState

	app   *App
	blink time.Duration
}

// NewTitleState creates the title screen
func NewTitleState(app *App) *TitleState {
	return &TitleState{app: app}
}

func (s *TitleState) Init() {
	logger.Sugar.Infow("entering title")
}

func (s *TitleState) HandleEvent(ev events.Event) {
	switch ev.Key {
	case events.KeyEnter:
		s.app.Audio.Play(audio.CueSelect)
		s.Manager().ChangeState(NewPlayState(s.app))
	case events.KeyEscape, events.KeyCtrlC:
		s.app.RequestQuit()
	}
}

func (s *TitleState) Step(dt time.Duration) {
	s.blink += dt
}

func (s *TitleState) Draw(dt time.Duration) {
	buf := s.app.Buffer
	buf.Clear(core.StyleDefault)

	cx := s.app.Width / 2
	cy := s.app.Height / 2

	title := "S T A C K G A M E"
	buf.WriteString(cx-len(title)/2, cy-2, title, styleTitle)

	// Half-second blink on the prompt
	if (s.blink/(500*time.Millisecond))%2 == 0 {
		prompt := "press Enter to play"
		buf.WriteString(cx-len(prompt)/2, cy+1, prompt, styleText)
	}

	quit := "Esc quits"
	buf.WriteString(cx-len(quit)/2, cy+3, quit, styleDimmed)
}
