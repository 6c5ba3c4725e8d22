package engine

// Piece is the content of a board cell
type Piece uint8

const (
	Empty Piece = iota
	Player1
	Player2
)

// Valid reports whether p belongs to a player
func (p Piece) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other player, Empty stays Empty
func (p Piece) Opponent() Piece {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "empty"
	}
}

// symbol is the single-character form used by Board.String
func (p Piece) symbol() byte {
	switch p {
	case Player1:
		return 'X'
	case Player2:
		return 'O'
	default:
		return '.'
	}
}
