package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/connect-four/config"
	"github.com/lixenwraith/connect-four/engine"
)

// Theme holds the resolved colors of the board
type Theme struct {
	Board   tcell.Color // Board frame
	Hole    tcell.Color // Empty cell
	Player1 tcell.Color
	Player2 tcell.Color
	Text    tcell.Color // Status line and neutral banners
}

// NewTheme resolves configured color names or #rrggbb values
func NewTheme(cfg config.Theme) (Theme, error) {
	var t Theme
	fields := []struct {
		name  string
		value string
		dst   *tcell.Color
	}{
		{"board", cfg.Board, &t.Board},
		{"hole", cfg.Hole, &t.Hole},
		{"player1", cfg.Player1, &t.Player1},
		{"player2", cfg.Player2, &t.Player2},
		{"text", cfg.Text, &t.Text},
	}
	for _, f := range fields {
		c := tcell.GetColor(f.value)
		if c == tcell.ColorDefault {
			return Theme{}, fmt.Errorf("theme %s: unknown color %q", f.name, f.value)
		}
		*f.dst = c
	}
	return t, nil
}

// PieceColor returns the color of a cell holding p
func (t Theme) PieceColor(p engine.Piece) tcell.Color {
	switch p {
	case engine.Player1:
		return t.Player1
	case engine.Player2:
		return t.Player2
	default:
		return t.Hole
	}
}
