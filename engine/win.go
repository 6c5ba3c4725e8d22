package engine

import "github.com/lixenwraith/connect-four/constants"

// WinLength is the run length that wins
const WinLength = constants.WinLength

// direction is a unit step between two cells of a win window
type direction struct {
	dRow, dCol int
}

// Scan order: horizontal, vertical, diagonal up-right, diagonal down-right
var directions = [...]direction{
	{dRow: 0, dCol: 1},
	{dRow: 1, dCol: 0},
	{dRow: 1, dCol: 1},
	{dRow: -1, dCol: 1},
}

// HasWin reports whether piece owns four consecutive cells in any direction.
// The board is only read.
func HasWin(b *Board, piece Piece) bool {
	_, ok := FindWin(b, piece)
	return ok
}

// FindWin returns the first winning window for piece, scanning every
// direction until one matches
func FindWin(b *Board, piece Piece) ([WinLength]Position, bool) {
	var line [WinLength]Position
	if !piece.Valid() {
		return line, false
	}

	for _, d := range directions {
		// Start cells are bounded so the whole window stays on the board
		rowLo, rowHi := 0, Rows-1
		switch {
		case d.dRow > 0:
			rowHi = Rows - WinLength
		case d.dRow < 0:
			rowLo = WinLength - 1
		}
		colHi := Cols - 1
		if d.dCol > 0 {
			colHi = Cols - WinLength
		}

		for row := rowLo; row <= rowHi; row++ {
			for col := 0; col <= colHi; col++ {
				if windowMatches(b, row, col, d, piece) {
					for i := range line {
						line[i] = Position{Row: row + i*d.dRow, Col: col + i*d.dCol}
					}
					return line, true
				}
			}
		}
	}
	return line, false
}

// windowMatches checks every cell of the window explicitly against piece
func windowMatches(b *Board, row, col int, d direction, piece Piece) bool {
	for i := 0; i < WinLength; i++ {
		if b.cells[row+i*d.dRow][col+i*d.dCol] != piece {
			return false
		}
	}
	return true
}
