package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/diorama/internal/automaton"
	"github.com/san-kum/diorama/internal/config"
	"github.com/san-kum/diorama/internal/grid"
	"github.com/san-kum/diorama/internal/input"
	"github.com/san-kum/diorama/internal/loop"
	"github.com/san-kum/diorama/internal/tui"
	"github.com/san-kum/diorama/internal/window"
)

// terminal is what the interactive loop needs from a backend.
type terminal interface {
	loop.Surface
	input.KeyReader
	MaxExtents() (rows, cols int)
	Close() error
}

func openTerminal(backend string) (terminal, error) {
	switch backend {
	case config.BackendTea:
		return tui.Open(0, 0, tea.WithAltScreen())
	default:
		return window.Open(0, 0, 0, 0)
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	text, err := grid.ReadSceneFile(cfg.Scene)
	if err != nil {
		return err
	}
	pair, err := cfg.Help.Pair()
	if err != nil {
		return err
	}

	term, err := openTerminal(cfg.Backend)
	if err != nil {
		return err
	}
	defer term.Close()

	// The last row holds the help line and the last column is left blank.
	rows, cols := term.Size()
	g, err := grid.New(cols-1, rows-1)
	if err != nil {
		return fmt.Errorf("terminal %dx%d too small: %w", cols, rows, err)
	}
	if err := grid.ReadScene(g, strings.NewReader(text)); err != nil {
		return err
	}
	seeded := grid.Seed(g, grid.Presets[cfg.Steam])
	logger.Debug("grid ready", "width", g.Width(), "height", g.Height(), "scene", cfg.Scene, "steam", cfg.Steam, "seeded", seeded)

	state := input.NewPlaybackState(cfg.TimeoutMs, cfg.DrawChar())
	ctrl := input.NewController(term, state, logger)

	opts := loop.DefaultOptions()
	opts.Automaton = !cfg.Static
	opts.HelpPair = pair
	opts.Logger = logger
	if cfg.Status {
		opts.Status = func() string {
			return fmt.Sprintf("%dms steam:%d", state.TimeoutMs(), g.Count(grid.KindSteam))
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := loop.New(term, g, automaton.NewSeeded(cfg.Seed), ctrl, opts)
	if err := l.Run(ctx); err != nil {
		return err
	}
	logger.Info("exit", "frames", l.Frames(), "seed", cfg.Seed)
	return nil
}

// headlessGrid builds a grid just large enough for the scene and the steam seeds,
// with a one-cell margin on the right and bottom.
func headlessGrid(cfg *config.Config) (*grid.Grid, error) {
	text, err := grid.ReadSceneFile(cfg.Scene)
	if err != nil {
		return nil, err
	}
	points := grid.Presets[cfg.Steam]
	sw, sh := grid.SceneSize(text)
	pw, ph := grid.Extent(points)
	g, err := grid.New(max(sw, pw, 2)+1, max(sh, ph, 2)+1)
	if err != nil {
		return nil, err
	}
	if err := grid.ReadScene(g, strings.NewReader(text)); err != nil {
		return nil, err
	}
	grid.Seed(g, points)
	return g, nil
}
