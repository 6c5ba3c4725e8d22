package render

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ErrRenderFailure marks platform display errors; they are fatal
var ErrRenderFailure = errors.New("render failure")

// NewScreen creates and initialises the terminal screen with mouse
// motion reporting enabled
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: create screen: %w", ErrRenderFailure, err)
	}
	if err := InitScreen(screen); err != nil {
		return nil, err
	}
	return screen, nil
}

// InitScreen prepares an allocated screen for the game: mouse motion and focus reporting on, cursor hidden
func InitScreen(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("%w: init screen: %w", ErrRenderFailure, err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()
	return nil
}
