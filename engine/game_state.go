package engine

// GamePhase is the state of the move state machine
type GamePhase int

const (
	PhaseAwaitingInput GamePhase = iota
	PhaseMoveApplied
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting-input"
	case PhaseMoveApplied:
		return "move-applied"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// GameState is the turn and outcome bookkeeping of one game
type GameState struct {
	Turn  Piece     // Player whose move is awaited
	Phase GamePhase // Current state machine phase

	// Outcome, set once Phase reaches PhaseGameOver
	Over    bool
	Winner  Piece // Empty on a draw
	Draw    bool
	WinLine [WinLength]Position

	Moves    int      // Accepted moves so far
	LastMove Position // Valid when Moves > 0
}

// NewGameState returns the state of a fresh game, Player 1 to move
func NewGameState() GameState {
	return GameState{
		Turn:  Player1,
		Phase: PhaseAwaitingInput,
	}
}

// Outcome classifies the result of a drop request
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // Move rejected, nothing changed
	OutcomeContinue                // Move applied, turn passed
	OutcomeWin                     // Move applied, mover won
	OutcomeDraw                    // Move applied, board full without a winner
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ended the game
func (o Outcome) Terminal() bool {
	return o == OutcomeWin || o == OutcomeDraw
}
