package automaton

import "errors"

var (
	// ErrTicks indicates a run was requested with a non-positive tick count.
	ErrTicks = errors.New("automaton: ticks must be positive")

	// ErrNilGrid indicates a run was requested without a grid.
	ErrNilGrid = errors.New("automaton: nil grid")
)

// RunError wraps an error with the tick at which a run stopped.
type RunError struct {
	Tick    int
	Wrapped error
}

func (e *RunError) Error() string {
	return e.Wrapped.Error()
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
