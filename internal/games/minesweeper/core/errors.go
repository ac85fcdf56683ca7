package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a board cannot hold the requested
	// size or mine count.
	ErrInvalidDimensions = errors.New("minesweeper: invalid board dimensions")

	// ErrOutOfBounds is returned by index-taking operations for indices
	// outside the board.
	ErrOutOfBounds = errors.New("minesweeper: index out of bounds")

	// ErrUnknownPreset is returned when a preset id is not in the table.
	ErrUnknownPreset = errors.New("minesweeper: unknown preset")
)

// DimensionsError carries the rejected reset arguments.
type DimensionsError struct {
	Width  int
	Height int
	Mines  int
}

func (e *DimensionsError) Error() string {
	return fmt.Sprintf("minesweeper: invalid board %dx%d with %d mines", e.Width, e.Height, e.Mines)
}

func (e *DimensionsError) Unwrap() error {
	return ErrInvalidDimensions
}

func outOfBounds(op string, index, length int) error {
	return fmt.Errorf("%s(%d) on board of %d tiles: %w", op, index, length, ErrOutOfBounds)
}
