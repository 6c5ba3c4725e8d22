package constants

// UI Layout Constants
const (
	// MinCellSize is the smallest cell edge the renderer can draw a token in
	MinCellSize = 2

	// StatusLineGap is the number of blank rows between the board and the status line
	StatusLineGap = 1
)

// UI text
const (
	StatusTurnFormat  = "%s to move | click or 1-7 to drop | q to quit"
	StatusWinFormat   = "%s wins! Game over"
	StatusDrawText    = "Board full, it's a draw"
	StatusRestartHint = " | n for a new game"
)
