package render

import (
	"github.com/lixenwraith/connect-four/constants"
	"github.com/lixenwraith/connect-four/engine"
)

// Layout maps board coordinates to terminal cells.
// The preview row sits above the board, the status line below it.
type Layout struct {
	CellWidth  int
	CellHeight int
	OriginX    int
	OriginY    int
}

// NewLayout returns a layout anchored at the top-left corner
func NewLayout(cellWidth, cellHeight int) Layout {
	return Layout{
		CellWidth:  max(cellWidth, constants.MinCellSize),
		CellHeight: max(cellHeight, constants.MinCellSize),
	}
}

// Width is the board width in terminal columns
func (l Layout) Width() int {
	return engine.Cols * l.CellWidth
}

// Height covers the preview row, the board and the status line
func (l Layout) Height() int {
	return (engine.Rows+1)*l.CellHeight + constants.StatusLineGap + 1
}

// Fit centres the board horizontally on a screen of the given size
func (l *Layout) Fit(screenWidth, screenHeight int) {
	l.OriginX = max((screenWidth-l.Width())/2, 0)
	l.OriginY = max((screenHeight-l.Height())/2, 0)
}

// ColumnAt maps a screen x coordinate to a board column as
// floor((x-OriginX)/CellWidth). The result may be outside [0, Cols).
func (l Layout) ColumnAt(x int) int {
	dx := x - l.OriginX
	if dx < 0 {
		return -1
	}
	return dx / l.CellWidth
}

// CellOrigin returns the top-left terminal cell of a board cell
func (l Layout) CellOrigin(row, col int) (x, y int) {
	x = l.OriginX + col*l.CellWidth
	y = l.OriginY + (engine.Rows-row)*l.CellHeight
	return x, y
}

// PreviewOrigin returns the top-left terminal cell of the preview slot of col
func (l Layout) PreviewOrigin(col int) (x, y int) {
	return l.OriginX + col*l.CellWidth, l.OriginY
}

// StatusY is the terminal row of the status line
func (l Layout) StatusY() int {
	return l.OriginY + (engine.Rows+1)*l.CellHeight + constants.StatusLineGap
}

// tokenRect returns the part of a cell painted with a token: one column of
// margin on each side when the cell is wide enough, and a gap row at the bottom
func (l Layout) tokenRect(x, y int) (tx, ty, tw, th int) {
	tx, tw = x, l.CellWidth
	if l.CellWidth >= 3 {
		tx, tw = x+1, l.CellWidth-2
	}
	return tx, y, tw, l.CellHeight - 1
}
