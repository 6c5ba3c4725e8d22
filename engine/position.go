package engine

import "fmt"

// Position addresses a single board cell
type Position struct {
	Row int
	Col int
}

// InBounds reports whether the position lies on the board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
