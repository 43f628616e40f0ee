package board

import "errors"

var (
	ErrEmptyMap        = errors.New("map width and height must be positive")
	ErrTooManyBombs    = errors.New("bomb count exceeds cell count")
	ErrInvalidTileSize = errors.New("invalid tile size")
	ErrNoViewport      = errors.New("no viewport to derive adaptive tile size from")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
