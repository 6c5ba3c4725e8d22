package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/connect-four/constants"
	"github.com/lixenwraith/connect-four/engine"
)

const (
	winMarker = '▒' // Fill rune of highlighted winning tokens
)

// TerminalRenderer draws the game on a tcell screen and implements engine.Renderer
type TerminalRenderer struct {
	screen      tcell.Screen
	layout      Layout
	theme       Theme
	restartHint bool
}

// NewTerminalRenderer creates a renderer and fits the layout to the screen
func NewTerminalRenderer(screen tcell.Screen, layout Layout, theme Theme) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		layout: layout,
		theme:  theme,
	}
	r.layout.Fit(screen.Size())
	return r
}

// Layout returns the current layout, used to map pointer positions
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// ColumnAt maps a screen x coordinate to a board column
func (r *TerminalRenderer) ColumnAt(x int) int {
	return r.layout.ColumnAt(x)
}

// SetRestartHint appends the new-game key to end-of-game status lines
func (r *TerminalRenderer) SetRestartHint(on bool) {
	r.restartHint = on
}

// Resize refits the layout and clears the screen; the caller redraws
func (r *TerminalRenderer) Resize() {
	r.layout.Fit(r.screen.Size())
	r.screen.Clear()
	r.screen.Sync()
}

// DrawBoard redraws every cell and the status line
func (r *TerminalRenderer) DrawBoard(b *engine.Board, state engine.GameState) {
	boardStyle := tcell.StyleDefault.Background(r.theme.Board)

	for row := 0; row < engine.Rows; row++ {
		for col := 0; col < engine.Cols; col++ {
			x, y := r.layout.CellOrigin(row, col)
			r.fill(x, y, r.layout.CellWidth, r.layout.CellHeight, ' ', boardStyle)
			r.drawToken(x, y, r.theme.PieceColor(b.CellAt(row, col)), ' ')
		}
	}

	r.drawStatus(state)
	r.screen.Show()
}

// DrawPreview clears the preview row and draws a token for player above col
func (r *TerminalRenderer) DrawPreview(col int, player engine.Piece) {
	r.clearPreviewRow()
	if col >= 0 && col < engine.Cols {
		x, y := r.layout.PreviewOrigin(col)
		r.drawToken(x, y, r.theme.PieceColor(player), ' ')
	}
	r.screen.Show()
}

// DrawWinMessage highlights the winning line and shows the banner in the winner's color
func (r *TerminalRenderer) DrawWinMessage(player engine.Piece, line [engine.WinLength]engine.Position) {
	color := r.theme.PieceColor(player)
	for _, pos := range line {
		if !pos.InBounds() {
			continue
		}
		x, y := r.layout.CellOrigin(pos.Row, pos.Col)
		r.drawToken(x, y, color, winMarker)
	}

	r.drawBanner(fmt.Sprintf(constants.StatusWinFormat, player), tcell.StyleDefault.Foreground(color).Bold(true))
	r.screen.Show()
}

// DrawDrawMessage shows the draw banner
func (r *TerminalRenderer) DrawDrawMessage() {
	r.drawBanner(constants.StatusDrawText, tcell.StyleDefault.Foreground(r.theme.Text).Bold(true))
	r.screen.Show()
}

// drawToken paints the token area of the cell whose top-left corner is (x, y)
func (r *TerminalRenderer) drawToken(x, y int, color tcell.Color, fill rune) {
	tx, ty, tw, th := r.layout.tokenRect(x, y)
	style := tcell.StyleDefault.Background(color).Foreground(r.theme.Board)
	r.fill(tx, ty, tw, th, fill, style)
}

func (r *TerminalRenderer) clearPreviewRow() {
	x, y := r.layout.PreviewOrigin(0)
	r.fill(x, y, r.layout.Width(), r.layout.CellHeight, ' ', tcell.StyleDefault)
}

// drawBanner replaces the preview row with centred text
func (r *TerminalRenderer) drawBanner(text string, style tcell.Style) {
	r.clearPreviewRow()
	x, y := r.layout.PreviewOrigin(0)
	y += (r.layout.CellHeight - 1) / 2
	r.drawText(x+max((r.layout.Width()-len(text))/2, 0), y, text, style)
}

func (r *TerminalRenderer) drawStatus(state engine.GameState) {
	var (
		text  string
		color = r.theme.Text
	)
	switch {
	case state.Over && state.Draw:
		text = constants.StatusDrawText
	case state.Over:
		text = fmt.Sprintf(constants.StatusWinFormat, state.Winner)
		color = r.theme.PieceColor(state.Winner)
	default:
		text = fmt.Sprintf(constants.StatusTurnFormat, state.Turn)
		color = r.theme.PieceColor(state.Turn)
	}
	if state.Over && r.restartHint {
		text += constants.StatusRestartHint
	}

	y := r.layout.StatusY()
	width, _ := r.screen.Size()
	r.fill(0, y, width, 1, ' ', tcell.StyleDefault)
	r.drawText(r.layout.OriginX, y, text, tcell.StyleDefault.Foreground(color))
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *TerminalRenderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r.screen.SetContent(x+dx, y+dy, ch, nil, style)
		}
	}
}
