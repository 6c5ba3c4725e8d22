package constants

// Board Geometry
const (
	// Rows is the number of rows on the board, row 0 is the bottom row
	Rows = 6

	// Cols is the number of columns on the board
	Cols = 7

	// WinLength is the run length that wins the game
	WinLength = 4
)
