package grid

import "errors"

var (
	// ErrScene indicates the scene file could not be read.
	ErrScene = errors.New("grid: cannot read scene")

	// ErrDimensions indicates a non-positive grid width or height.
	ErrDimensions = errors.New("grid: width and height must be positive")
)
