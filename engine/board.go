package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/connect-four/constants"
)

// Board dimensions, re-exported for callers that only import engine
const (
	Rows = constants.Rows
	Cols = constants.Cols
)

// Board is the fixed 6x7 grid; row 0 is the bottom row.
// Columns fill bottom-up, a cell is only occupied when every cell below it is.
// Board performs no rule checks on writes, the session enforces them.
type Board struct {
	cells [Rows][Cols]Piece
}

// NewBoard returns a board with every cell empty
func NewBoard() *Board {
	return &Board{}
}

// ValidateColumn returns ErrInvalidColumn for an out-of-range column and
// ErrColumnFull when the top cell of the column is occupied
func (b *Board) ValidateColumn(col int) error {
	if col < 0 || col >= Cols {
		return fmt.Errorf("column %d outside [0,%d): %w", col, Cols, ErrInvalidColumn)
	}
	if b.cells[Rows-1][col] != Empty {
		return fmt.Errorf("column %d: %w", col, ErrColumnFull)
	}
	return nil
}

// IsValidColumn reports whether a piece can be dropped into col
func (b *Board) IsValidColumn(col int) bool {
	return b.ValidateColumn(col) == nil
}

// NextOpenRow returns the lowest empty row of col, or -1 if the column
// is full or out of range. Callers check IsValidColumn first.
func (b *Board) NextOpenRow(col int) int {
	if col < 0 || col >= Cols {
		return -1
	}
	for row := 0; row < Rows; row++ {
		if b.cells[row][col] == Empty {
			return row
		}
	}
	return -1
}

// Drop writes piece into the cell without validation
func (b *Board) Drop(row, col int, piece Piece) {
	b.cells[row][col] = piece
}

// CellAt returns the piece at (row, col); cells off the board read as Empty
func (b *Board) CellAt(row, col int) Piece {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Empty
	}
	return b.cells[row][col]
}

// IsFull reports whether no column accepts another piece
func (b *Board) IsFull() bool {
	for col := 0; col < Cols; col++ {
		if b.cells[Rows-1][col] == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells
func (b *Board) Count() int {
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.cells[row][col] != Empty {
				n++
			}
		}
	}
	return n
}

// Reset clears every cell
func (b *Board) Reset() {
	b.cells = [Rows][Cols]Piece{}
}

// String renders the board top row first, one line per row
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Cols; col++ {
			sb.WriteByte(b.cells[row][col].symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
