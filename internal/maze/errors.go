package maze

import "errors"

var (
	// ErrOutOfBounds is returned when a position lies outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")

	// ErrNotConfigured is returned when a search runs before start and exit are set.
	ErrNotConfigured = errors.New("maze: start and exit must be set")

	// ErrInvalidDimensions is returned for a grid with fewer than one row or column.
	ErrInvalidDimensions = errors.New("maze: invalid dimensions")
)
