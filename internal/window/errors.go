package window

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed indicates an operation on a window that was already torn down.
	ErrClosed = errors.New("window: closed")

	// ErrOutOfBounds indicates a print position outside the window.
	ErrOutOfBounds = errors.New("window: position out of bounds")

	// ErrTooLarge indicates a window that does not fit on the terminal.
	ErrTooLarge = errors.New("window: region exceeds terminal")
)

// ResourceError reports a failure to allocate the terminal surface.
type ResourceError struct {
	Rows, Cols int
	Wrapped    error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("window: cannot allocate %dx%d surface: %v", e.Cols, e.Rows, e.Wrapped)
}

func (e *ResourceError) Unwrap() error {
	return e.Wrapped
}

// RenderError reports a failed draw or flush.
type RenderError struct {
	Op      string
	X, Y    int
	Wrapped error
}

func (e *RenderError) Error() string {
	if e.Op == "print" {
		return fmt.Sprintf("window: print at (%d,%d): %v", e.X, e.Y, e.Wrapped)
	}
	return fmt.Sprintf("window: %s: %v", e.Op, e.Wrapped)
}

func (e *RenderError) Unwrap() error {
	return e.Wrapped
}
