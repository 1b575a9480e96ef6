package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tickstack/core"
	"github.com/lixenwraith/tickstack/events"
)

// Screen wraps a tcell.Screen, translating input into events.Event and
// flushing core.Buffer contents to the terminal
type Screen struct {
	tc tcell.Screen
}

// New creates and initializes a screen on the controlling terminal
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	tc.HideCursor()
	return &Screen{tc: tc}, nil
}

// NewWithScreen wraps an already-initialized tcell screen.
// Used by tests with tcell's simulation screen
func NewWithScreen(tc tcell.Screen) *Screen {
	return &Screen{tc: tc}
}

// Fini restores the terminal. Safe to call multiple times
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Size returns current terminal dimensions
func (s *Screen) Size() (width, height int) {
	return s.tc.Size()
}

// PollEvent blocks until the next input event.
// Returns an EventQuit event when the screen has been finalized
func (s *Screen) PollEvent() events.Event {
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			return events.Event{Type: events.EventQuit}
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			out := events.Event{Type: events.EventKey, When: tev.When()}
			switch tev.Key() {
			case tcell.KeyRune:
				out.Key = events.KeyRune
				out.Rune = tev.Rune()
			case tcell.KeyEscape:
				out.Key = events.KeyEscape
			case tcell.KeyEnter:
				out.Key = events.KeyEnter
			case tcell.KeyTab:
				out.Key = events.KeyTab
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				out.Key = events.KeyBackspace
			case tcell.KeyUp:
				out.Key = events.KeyUp
			case tcell.KeyDown:
				out.Key = events.KeyDown
			case tcell.KeyLeft:
				out.Key = events.KeyLeft
			case tcell.KeyRight:
				out.Key = events.KeyRight
			case tcell.KeyCtrlC:
				out.Key = events.KeyCtrlC
			default:
				// Unmapped key, skip
				continue
			}
			return out

		case *tcell.EventResize:
			w, h := tev.Size()
			return events.Event{
				Type:   events.EventResize,
				Width:  w,
				Height: h,
				When:   tev.When(),
			}

		default:
			// Mouse, paste and focus events are not part of the input model
			continue
		}
	}
}

// Flush writes dirty buffer cells to the terminal and shows the result
func (s *Screen) Flush(buf *core.Buffer) {
	for _, p := range buf.DirtyRegions() {
		cell, ok := buf.GetCell(p.X, p.Y)
		if !ok {
			continue
		}
		s.tc.SetContent(p.X, p.Y, cell.Rune, nil, styleFor(cell.Style))
	}
	buf.ClearDirty()
	s.tc.Show()
}

// Sync forces a full terminal repaint
func (s *Screen) Sync() {
	s.tc.Sync()
}

// styleFor converts a core.Style to a tcell.Style
func styleFor(st core.Style) tcell.Style {
	out := tcell.StyleDefault

	if st.Fg.R >= 0 {
		out = out.Foreground(tcell.NewRGBColor(st.Fg.R, st.Fg.G, st.Fg.B))
	}
	if st.Bg.R >= 0 {
		out = out.Background(tcell.NewRGBColor(st.Bg.R, st.Bg.G, st.Bg.B))
	}

	if st.Attrs&core.AttrBold != 0 {
		out = out.Bold(true)
	}
	if st.Attrs&core.AttrDim != 0 {
		out = out.Dim(true)
	}
	if st.Attrs&core.AttrReverse != 0 {
		out = out.Reverse(true)
	}
	if st.Attrs&core.AttrBlink != 0 {
		out = out.Blink(true)
	}
	return out
}

// Terminal control sequences for emergency restoration
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
