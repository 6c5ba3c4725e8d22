package engine

import (
	"io"
	"log/slog"
)

// Session owns one game: the board, its state and the collaborators that
// present it. All methods run on the event loop goroutine, nothing is locked.
type Session struct {
	board    *Board
	state    GameState
	renderer Renderer
	sound    SoundPlayer
	logger   *slog.Logger

	// Column of the last preview, drawn again for the next player after a move
	hoverCol int
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithSound attaches a sound player
func WithSound(sp SoundPlayer) SessionOption {
	return func(s *Session) {
		if sp != nil {
			s.sound = sp
		}
	}
}

// WithLogger sets the session logger
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session with an empty board and Player 1 to move
func NewSession(renderer Renderer, opts ...SessionOption) *Session {
	s := &Session{
		board:    NewBoard(),
		state:    NewGameState(),
		renderer: renderer,
		sound:    nopSound{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		hoverCol: Cols / 2,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the session board; callers must not mutate it
func (s *Session) Board() *Board {
	return s.board
}

// State returns a copy of the game state
func (s *Session) State() GameState {
	return s.state
}

// Turn returns the player whose move is awaited
func (s *Session) Turn() Piece {
	return s.state.Turn
}

// HoverColumn returns the column of the current preview
func (s *Session) HoverColumn() int {
	return s.hoverCol
}

// Start draws the empty board and the first preview
func (s *Session) Start() {
	s.logger.Info("game started", "turn", s.state.Turn)
	s.Redraw()
}

// Redraw repaints everything from the current state, used after resize
func (s *Session) Redraw() {
	s.renderer.DrawBoard(s.board, s.state)
	switch {
	case s.state.Over && s.state.Draw:
		s.renderer.DrawDrawMessage()
	case s.state.Over:
		s.renderer.DrawWinMessage(s.state.Winner, s.state.WinLine)
	default:
		s.renderer.DrawPreview(s.hoverCol, s.state.Turn)
	}
}

// Hover previews the current player's piece above col, clamped to the board.
// Cosmetic only, ignored once the game is over.
func (s *Session) Hover(col int) {
	if s.state.Over {
		return
	}
	s.hoverCol = clampColumn(col)
	s.renderer.DrawPreview(s.hoverCol, s.state.Turn)
}

// Drop plays the current player's piece into col.
// Rejected moves return OutcomeIgnored with the reason and change nothing.
func (s *Session) Drop(col int) (Outcome, error) {
	if s.state.Over {
		return OutcomeIgnored, ErrGameOver
	}
	if err := s.board.ValidateColumn(col); err != nil {
		s.logger.Debug("move ignored", "player", s.state.Turn, "col", col, "error", err)
		return OutcomeIgnored, err
	}

	piece := s.state.Turn
	row := s.board.NextOpenRow(col)
	s.board.Drop(row, col, piece)

	s.state.Phase = PhaseMoveApplied
	s.state.Moves++
	s.state.LastMove = Position{Row: row, Col: col}
	s.hoverCol = col
	s.logger.Debug("move applied", "player", piece, "row", row, "col", col, "moves", s.state.Moves)

	if line, won := FindWin(s.board, piece); won {
		s.finish(piece, line)
		s.renderer.DrawBoard(s.board, s.state)
		s.renderer.DrawWinMessage(piece, line)
		s.sound.PlayWin()
		s.logger.Info("game won", "winner", piece, "moves", s.state.Moves)
		return OutcomeWin, nil
	}

	if s.board.IsFull() {
		s.state.Over = true
		s.state.Draw = true
		s.state.Phase = PhaseGameOver
		s.renderer.DrawBoard(s.board, s.state)
		s.renderer.DrawDrawMessage()
		s.sound.PlayDraw()
		s.logger.Info("game drawn", "moves", s.state.Moves)
		return OutcomeDraw, nil
	}

	s.state.Turn = piece.Opponent()
	s.state.Phase = PhaseAwaitingInput
	s.renderer.DrawBoard(s.board, s.state)
	s.renderer.DrawPreview(s.hoverCol, s.state.Turn)
	s.sound.PlayDrop()
	return OutcomeContinue, nil
}

// Reset starts a new game on the same session
func (s *Session) Reset() {
	s.board.Reset()
	s.state = NewGameState()
	s.logger.Info("game reset")
	s.Redraw()
}

func (s *Session) finish(winner Piece, line [WinLength]Position) {
	s.state.Over = true
	s.state.Winner = winner
	s.state.WinLine = line
	s.state.Phase = PhaseGameOver
}

func clampColumn(col int) int {
	if col < 0 {
		return 0
	}
	if col >= Cols {
		return Cols - 1
	}
	return col
}
