package engine

// Renderer draws the game; implemented by the render package
type Renderer interface {
	// DrawBoard redraws every cell and the status line
	DrawBoard(b *Board, state GameState)
	// DrawPreview shows a token for player above col, replacing any previous preview
	DrawPreview(col int, player Piece)
	// DrawWinMessage shows the win banner and highlights the winning line
	DrawWinMessage(player Piece, line [WinLength]Position)
	// DrawDrawMessage shows the draw banner
	DrawDrawMessage()
}

// SoundPlayer plays game sound effects, implementations must not block
type SoundPlayer interface {
	PlayDrop()
	PlayWin()
	PlayDraw()
}

// nopSound is used when no SoundPlayer is configured
type nopSound struct{}

func (nopSound) PlayDrop() {}
func (nopSound) PlayWin()  {}
func (nopSound) PlayDraw() {}
