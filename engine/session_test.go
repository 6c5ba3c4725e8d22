package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer captures collaborator calls
type recordingRenderer struct {
	boards   int
	previews []preview
	wins     []Piece
	winLines [][WinLength]Position
	draws    int
	last     GameState
}

type preview struct {
	col    int
	player Piece
}

func (r *recordingRenderer) DrawBoard(_ *Board, state GameState) {
	r.boards++
	r.last = state
}

func (r *recordingRenderer) DrawPreview(col int, player Piece) {
	r.previews = append(r.previews, preview{col: col, player: player})
}

func (r *recordingRenderer) DrawWinMessage(player Piece, line [WinLength]Position) {
	r.wins = append(r.wins, player)
	r.winLines = append(r.winLines, line)
}

func (r *recordingRenderer) DrawDrawMessage() {
	r.draws++
}

type countingSound struct {
	drops, wins, draws int
}

func (c *countingSound) PlayDrop() { c.drops++ }
func (c *countingSound) PlayWin()  { c.wins++ }
func (c *countingSound) PlayDraw() { c.draws++ }

func newTestSession() (*Session, *recordingRenderer, *countingSound) {
	r := &recordingRenderer{}
	snd := &countingSound{}
	return NewSession(r, WithSound(snd)), r, snd
}

func TestNewSession(t *testing.T) {
	s, r, _ := newTestSession()

	state := s.State()
	assert.Equal(t, Player1, state.Turn)
	assert.Equal(t, PhaseAwaitingInput, state.Phase)
	assert.False(t, state.Over)
	assert.Equal(t, Empty, state.Winner)
	assert.Zero(t, s.Board().Count())

	s.Start()
	assert.Equal(t, 1, r.boards)
	require.Len(t, r.previews, 1)
	assert.Equal(t, preview{col: Cols / 2, player: Player1}, r.previews[0])
}

func TestSession_TurnAlternates(t *testing.T) {
	s, _, snd := newTestSession()

	outcome, err := s.Drop(0)
	require.NoError(t, err)
	assert.Equal(t, OutcomeContinue, outcome)
	assert.Equal(t, Player2, s.Turn())
	assert.Equal(t, Player1, s.Board().CellAt(0, 0))

	outcome, err = s.Drop(0)
	require.NoError(t, err)
	assert.Equal(t, OutcomeContinue, outcome)
	assert.Equal(t, Player1, s.Turn())
	assert.Equal(t, Player2, s.Board().CellAt(1, 0))

	state := s.State()
	assert.Equal(t, 2, state.Moves)
	assert.Equal(t, Position{Row: 1, Col: 0}, state.LastMove)
	assert.Equal(t, PhaseAwaitingInput, state.Phase)
	assert.Equal(t, 2, snd.drops)
}

func TestSession_InvalidMoveKeepsTurn(t *testing.T) {
	t.Run("Out of range", func(t *testing.T) {
		s, r, snd := newTestSession()

		for _, col := range []int{-1, Cols} {
			outcome, err := s.Drop(col)
			require.ErrorIs(t, err, ErrInvalidColumn)
			assert.Equal(t, OutcomeIgnored, outcome)
		}

		assert.Equal(t, Player1, s.Turn())
		assert.Zero(t, s.Board().Count())
		assert.Zero(t, r.boards, "ignored moves render nothing")
		assert.Zero(t, snd.drops)
	})

	t.Run("Full column", func(t *testing.T) {
		// Given: six moves into column 0, alternating players
		s, _, _ := newTestSession()
		for i := 0; i < Rows; i++ {
			_, err := s.Drop(0)
			require.NoError(t, err)
		}
		require.False(t, s.Board().IsValidColumn(0))
		before := s.Board().String()
		turn := s.Turn()

		// When: a further click lands on column 0
		outcome, err := s.Drop(0)

		// Then: board and turn are unchanged
		require.ErrorIs(t, err, ErrColumnFull)
		assert.Equal(t, OutcomeIgnored, outcome)
		assert.Equal(t, before, s.Board().String())
		assert.Equal(t, turn, s.Turn())
		assert.Equal(t, Rows, s.State().Moves)
	})
}

func TestSession_HorizontalWin(t *testing.T) {
	s, r, snd := newTestSession()

	// Player 1 on the bottom row, Player 2 stacks on top
	moves := []int{0, 0, 1, 1, 2, 2}
	for _, col := range moves {
		outcome, err := s.Drop(col)
		require.NoError(t, err)
		require.Equal(t, OutcomeContinue, outcome)
	}

	outcome, err := s.Drop(3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, outcome)

	state := s.State()
	assert.True(t, state.Over)
	assert.Equal(t, Player1, state.Winner)
	assert.Equal(t, PhaseGameOver, state.Phase)
	assert.False(t, state.Draw)
	assert.Equal(t, Player1, state.Turn, "turn stays with the winner")
	assert.Equal(t, [WinLength]Position{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, state.WinLine)

	require.Equal(t, []Piece{Player1}, r.wins)
	assert.Equal(t, state.WinLine, r.winLines[0])
	assert.True(t, r.last.Over, "final board drawn with the finished state")
	assert.Equal(t, 1, snd.wins)
}

func TestSession_VerticalWinForPlayer2(t *testing.T) {
	s, r, _ := newTestSession()

	moves := []int{0, 3, 1, 3, 0, 3, 1}
	for _, col := range moves {
		_, err := s.Drop(col)
		require.NoError(t, err)
	}

	outcome, err := s.Drop(3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, outcome)
	assert.Equal(t, Player2, s.State().Winner)
	assert.Equal(t, []Piece{Player2}, r.wins)
}

func TestSession_MovesAfterGameOverAreIgnored(t *testing.T) {
	s, r, _ := newTestSession()
	for _, col := range []int{0, 6, 1, 6, 2, 6, 3} {
		_, err := s.Drop(col)
		require.NoError(t, err)
	}
	require.True(t, s.State().Over)
	before := s.Board().String()
	previews := len(r.previews)

	outcome, err := s.Drop(4)
	require.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, OutcomeIgnored, outcome)
	assert.Equal(t, before, s.Board().String())

	s.Hover(2)
	assert.Len(t, r.previews, previews, "no preview after the game ended")
}

func TestSession_Draw(t *testing.T) {
	// Given: a full board without any run except for the top of column 6
	s, r, snd := newTestSession()
	for col := 0; col < Cols; col++ {
		fillColumn(s.board, col)
	}
	last := s.board.CellAt(Rows-1, Cols-1)
	s.board.Drop(Rows-1, Cols-1, Empty)
	s.state.Turn = last

	// When: the last piece is played
	outcome, err := s.Drop(Cols - 1)

	// Then: the game ends in a draw
	require.NoError(t, err)
	assert.Equal(t, OutcomeDraw, outcome)
	assert.True(t, outcome.Terminal())

	state := s.State()
	assert.True(t, state.Over)
	assert.True(t, state.Draw)
	assert.Equal(t, Empty, state.Winner)
	assert.Equal(t, PhaseGameOver, state.Phase)
	assert.Equal(t, 1, r.draws)
	assert.Empty(t, r.wins)
	assert.Equal(t, 1, snd.draws)
}

func TestSession_Hover(t *testing.T) {
	s, r, _ := newTestSession()

	s.Hover(2)
	s.Hover(-4)
	s.Hover(42)

	assert.Equal(t, []preview{
		{col: 2, player: Player1},
		{col: 0, player: Player1},
		{col: Cols - 1, player: Player1},
	}, r.previews)
	assert.Equal(t, Cols-1, s.HoverColumn())
	assert.Zero(t, s.Board().Count(), "hover never mutates the board")
	assert.Equal(t, Player1, s.Turn())
}

func TestSession_PreviewFollowsTurn(t *testing.T) {
	s, r, _ := newTestSession()

	_, err := s.Drop(4)
	require.NoError(t, err)

	require.NotEmpty(t, r.previews)
	assert.Equal(t, preview{col: 4, player: Player2}, r.previews[len(r.previews)-1])
}

func TestSession_Reset(t *testing.T) {
	s, r, _ := newTestSession()
	for _, col := range []int{0, 6, 1, 6, 2, 6, 3} {
		_, err := s.Drop(col)
		require.NoError(t, err)
	}
	require.True(t, s.State().Over)

	s.Reset()

	assert.Equal(t, NewGameState(), s.State())
	assert.Zero(t, s.Board().Count())
	assert.False(t, r.last.Over)

	outcome, err := s.Drop(0)
	require.NoError(t, err)
	assert.Equal(t, OutcomeContinue, outcome)
}

func TestSession_RedrawAfterGameOver(t *testing.T) {
	s, r, _ := newTestSession()
	for _, col := range []int{0, 6, 1, 6, 2, 6, 3} {
		_, err := s.Drop(col)
		require.NoError(t, err)
	}
	wins := len(r.wins)

	s.Redraw()

	assert.Len(t, r.wins, wins+1, "win banner repainted")
}

func TestOutcomeAndPhaseStrings(t *testing.T) {
	assert.Equal(t, "win", OutcomeWin.String())
	assert.Equal(t, "ignored", OutcomeIgnored.String())
	assert.False(t, OutcomeContinue.Terminal())
	assert.Equal(t, "game-over", PhaseGameOver.String())
	assert.Equal(t, "awaiting-input", PhaseAwaitingInput.String())
}
