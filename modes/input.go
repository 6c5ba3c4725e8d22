package modes

import (
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/connect-four/engine"
)

// Board is the view of the renderer the input handler needs
type Board interface {
	// ColumnAt maps a screen x coordinate to a board column
	ColumnAt(x int) int
	// Resize refits the board to the screen, the session redraws afterwards
	Resize()
}

// Options tune end-of-game behaviour
type Options struct {
	// KeepOpen leaves the final board up until quit or a new game
	KeepOpen bool
	// EndGameWait is the pause after the last move before exiting
	EndGameWait time.Duration
	// Sleep replaces time.Sleep in tests
	Sleep func(time.Duration)
	Logger *slog.Logger
}

// InputHandler turns tcell events into session moves
type InputHandler struct {
	session *engine.Session
	board   Board
	opts    Options

	// Primary button state, drops fire on the press edge only.
	// Cleared by any buttonless mouse event, resize or focus change.
	buttonDown bool
}

// NewInputHandler creates an input handler driving session
func NewInputHandler(session *engine.Session, board Board, opts Options) *InputHandler {
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &InputHandler{
		session: session,
		board:   board,
		opts:    opts,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		return h.handleMouseEvent(ev)
	case *tcell.EventResize:
		h.buttonDown = false
		h.board.Resize()
		h.session.Redraw()
	case *tcell.EventFocus:
		// A release outside the window is never reported
		h.buttonDown = false
	}
	return true
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return false
	case tcell.KeyLeft:
		h.session.Hover(h.session.HoverColumn() - 1)
		return true
	case tcell.KeyRight:
		h.session.Hover(h.session.HoverColumn() + 1)
		return true
	case tcell.KeyEnter, tcell.KeyDown:
		return h.drop(h.session.HoverColumn())
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); {
	case r == 'q' || r == 'Q':
		return false
	case r == 'h':
		h.session.Hover(h.session.HoverColumn() - 1)
	case r == 'l':
		h.session.Hover(h.session.HoverColumn() + 1)
	case r == ' ' || r == 'j':
		return h.drop(h.session.HoverColumn())
	case r >= '1' && r < '1'+engine.Cols:
		return h.drop(int(r - '1'))
	case r == 'n' && h.opts.KeepOpen && h.session.State().Over:
		h.session.Reset()
	}
	return true
}

func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) bool {
	x, _ := ev.Position()
	col := h.board.ColumnAt(x)

	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := h.buttonDown
	h.buttonDown = pressed

	if pressed && !wasDown {
		return h.drop(col)
	}
	h.session.Hover(col)
	return true
}

// drop applies a move; returns false once a finished game should exit
func (h *InputHandler) drop(col int) bool {
	outcome, err := h.session.Drop(col)
	if err != nil {
		// Invalid columns are dropped silently
		h.opts.Logger.Debug("drop rejected", "col", col, "error", err)
		return true
	}
	if !outcome.Terminal() || h.opts.KeepOpen {
		return true
	}

	h.opts.Logger.Info("game over, exiting", "outcome", outcome, "wait", h.opts.EndGameWait)
	if h.opts.EndGameWait > 0 {
		h.opts.Sleep(h.opts.EndGameWait)
	}
	return false
}
