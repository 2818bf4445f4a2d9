package automaton

import (
	"context"
	"fmt"

	"github.com/san-kum/diorama/internal/grid"
)

// Observer is notified after every tick of a Runner, and once before the first
// tick with tick == 0.
type Observer interface {
	OnTick(tick int, g *grid.Grid)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(tick int, g *grid.Grid)

func (f ObserverFunc) OnTick(tick int, g *grid.Grid) { f(tick, g) }

// Runner steps a grid without any terminal attached.
type Runner struct {
	engine    *Engine
	observers []Observer
}

func NewRunner(engine *Engine) *Runner {
	return &Runner{
		engine:    engine,
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances g by ticks steps, returning the number of ticks completed.
// Cancellation is checked between ticks.
func (r *Runner) Run(ctx context.Context, g *grid.Grid, ticks int) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if ticks <= 0 {
		return 0, fmt.Errorf("%w, got %d", ErrTicks, ticks)
	}

	r.notify(0, g)
	for i := 1; i <= ticks; i++ {
		select {
		case <-ctx.Done():
			return i - 1, &RunError{Tick: i - 1, Wrapped: ctx.Err()}
		default:
		}
		r.engine.Step(g)
		r.notify(i, g)
	}
	return ticks, nil
}

func (r *Runner) notify(tick int, g *grid.Grid) {
	for _, o := range r.observers {
		o.OnTick(tick, g)
	}
}
