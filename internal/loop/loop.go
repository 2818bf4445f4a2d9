// Package loop drives the frame cycle: erase, composite, draw, refresh, step, poll.
package loop

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mattn/go-runewidth"

	"github.com/san-kum/diorama/internal/compositor"
	"github.com/san-kum/diorama/internal/grid"
	"github.com/san-kum/diorama/internal/input"
	"github.com/san-kum/diorama/internal/window"
)

const HelpLine = "q: Quit, a: increase timeout, s: decrease timeout"

// Surface is the drawing target. window.Window and tui.Surface implement it.
type Surface interface {
	Erase()
	Print(x, y int, text string, pair *window.ColorPair) error
	Refresh() error
	Size() (rows, cols int)
}

// Stepper advances the grid by one tick.
type Stepper interface {
	Step(g *grid.Grid)
}

// Poller blocks for one bounded key read and returns the decoded command.
type Poller interface {
	Poll() input.Command
}

type Options struct {
	// Automaton enables the per-frame step; false shows a static scene.
	Automaton bool
	HelpLine  string
	HelpPair  *window.ColorPair
	// Status prefixes the help line with the current timeout and steam count.
	Status func() string
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{Automaton: true, HelpLine: HelpLine}
}

type Loop struct {
	surface Surface
	grid    *grid.Grid
	engine  Stepper
	poller  Poller
	opts    Options
	logger  *slog.Logger
	frames  int
}

func New(surface Surface, g *grid.Grid, engine Stepper, poller Poller, opts Options) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loop{
		surface: surface,
		grid:    g,
		engine:  engine,
		poller:  poller,
		opts:    opts,
		logger:  logger,
	}
}

// Frames returns how many frames have been drawn.
func (l *Loop) Frames() int { return l.frames }

// Run draws frames until Quit is polled, ctx is done, or a draw fails. The caller
// owns the surface and must close it after Run returns.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("loop start", "width", l.grid.Width(), "height", l.grid.Height(), "automaton", l.opts.Automaton)
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop canceled", "frames", l.frames)
			return nil
		default:
		}

		if err := l.Frame(); err != nil {
			l.logger.Error("frame failed", "frame", l.frames, "err", err)
			return err
		}
		if l.opts.Automaton && l.engine != nil {
			l.engine.Step(l.grid)
		}
		if cmd := l.poller.Poll(); cmd == input.Quit {
			l.logger.Info("loop quit", "frames", l.frames)
			return nil
		}
	}
}

// Frame erases the surface, draws the current grid and help line, and refreshes.
func (l *Loop) Frame() error {
	l.surface.Erase()

	buf := compositor.Render(l.grid)
	rows, cols := l.surface.Size()
	for y := 0; y < buf.Height && y < rows; y++ {
		for x := 0; x < buf.Width && x < cols; x++ {
			c := buf.At(x, y)
			if c == ' ' {
				continue
			}
			if err := l.surface.Print(x, y, string(c), nil); err != nil {
				return err
			}
			// A double-width glyph covers the next cell too.
			if rw := runewidth.RuneWidth(c); rw > 1 {
				x += rw - 1
			}
		}
	}

	if help := l.helpText(); help != "" && buf.Height < rows {
		if err := l.surface.Print(0, buf.Height, help, l.opts.HelpPair); err != nil {
			return err
		}
	}

	if err := l.surface.Refresh(); err != nil {
		return err
	}
	l.frames++
	return nil
}

func (l *Loop) helpText() string {
	if l.opts.Status == nil {
		return l.opts.HelpLine
	}
	if l.opts.HelpLine == "" {
		return l.opts.Status()
	}
	return fmt.Sprintf("%s | %s", l.opts.Status(), l.opts.HelpLine)
}
