package main

import (
	"sync"

	"github.com/lixenwraith/tickstack/audio"
	"github.com/lixenwraith/tickstack/core"
	"github.com/lixenwraith/tickstack/engine"
	"github.com/lixenwraith/tickstack/events"
	"github.com/lixenwraith/tickstack/logger"
	"github.com/lixenwraith/tickstack/stack"
	"github.com/lixenwraith/tickstack/terminal"
)

// App bundles everything the states need: draw buffer, state stack,
// game clock and sound. One instance, owned by main
type App struct {
	Screen *terminal.Screen
	Buffer *core.Buffer
	Stack  *stack.Manager
	Clock  *engine.PausableClock
	Audio  *audio.Service

	Width, Height int

	quitOnce sync.Once
	quitChan chan struct{}
}

// NewApp creates the application context
func NewApp(screen *terminal.Screen, clock *engine.PausableClock, snd *audio.Service) *App {
	w, h := screen.Size()
	return &App{
		Screen:   screen,
		Buffer:   core.NewBuffer(w, h),
		Stack:    stack.NewManager(),
		Clock:    clock,
		Audio:    snd,
		Width:    w,
		Height:   h,
		quitChan: make(chan struct{}),
	}
}

// RequestQuit signals main to stop the loop and tear down.
// Safe to call from any state, any number of times
func (a *App) RequestQuit() {
	a.quitOnce.Do(func() {
		close(a.quitChan)
	})
}

// QuitChan returns the channel closed when a quit was requested
func (a *App) QuitChan() <-chan struct{} {
	return a.quitChan
}

// ===== Router handlers =====

// stackForwarder forwards key events to the active state
type stackForwarder struct{}

func (stackForwarder) EventTypes() []events.EventType {
	return []events.EventType{events.EventKey}
}

func (stackForwarder) HandleEvent(app *App, ev events.Event) {
	app.Stack.DispatchEvent(ev)
}

// resizeHandler keeps the buffer and dimensions in sync with the
// terminal and forwards the event so states can re-layout
type resizeHandler struct{}

func (resizeHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventResize}
}

func (resizeHandler) HandleEvent(app *App, ev events.Event) {
	if ev.Width == app.Width && ev.Height == app.Height {
		return
	}
	logger.Sugar.Debugw("terminal resized", "width", ev.Width, "height", ev.Height)
	app.Width = ev.Width
	app.Height = ev.Height
	app.Buffer.Resize(ev.Width, ev.Height)
	app.Screen.Sync()
	app.Stack.DispatchEvent(ev)
}

// quitHandler ends the run when the terminal closes underneath us
type quitHandler struct{}

func (quitHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventQuit}
}

func (quitHandler) HandleEvent(app *App, ev events.Event) {
	app.RequestQuit()
}
