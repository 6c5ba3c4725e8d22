package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = fmt.Errorf("column is full: %w", ErrInvalidColumn)
	ErrGameOver      = errors.New("game is over")
)
