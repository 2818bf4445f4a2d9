package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/diorama/internal/config"
	"github.com/san-kum/diorama/internal/grid"
)

var (
	timeoutMs  int
	character  string
	scenePath  string
	steam      string
	static     bool
	backend    string
	seed       int64
	logFile    string
	status     bool
	configFile string
	preset     string

	// preview/stats
	frames  int
	theme   string
	ticks   int
	svgPath string
	jsonOut string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "diorama: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags. The root command opens the
// interactive diorama when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "diorama",
		Short:         "animated ascii diorama with rising steam",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&timeoutMs, "timeout", "t", config.DefaultConfig().TimeoutMs, "frame timeout in milliseconds (10-1000)")
	flags.StringVarP(&character, "character", "c", config.DefaultConfig().Character, "draw character")
	flags.StringVar(&scenePath, "scene", config.DefaultScene, "scene text file")
	flags.StringVar(&steam, "steam", config.DefaultSteam, "steam seed preset")
	flags.BoolVar(&static, "static", false, "draw the scene without advancing the steam")
	flags.StringVar(&backend, "backend", config.DefaultBackend, "terminal backend (tcell, tea)")
	flags.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	flags.StringVar(&logFile, "log", "", "write debug logs to this file")
	flags.BoolVar(&status, "status", false, "show timeout and steam count next to the help line")
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "print frames to stdout without a terminal ui",
		Args:  cobra.NoArgs,
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	previewCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	previewCmd.Flags().StringVar(&svgPath, "svg", "", "also write the last frame as svg")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "simulate headless and report steam statistics",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	statsCmd.Flags().StringVar(&svgPath, "svg", "", "also write the population plot as svg")
	statsCmd.Flags().StringVar(&jsonOut, "json", "", "write the run report as json (- for stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration and steam presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "config presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", p)
			}
			fmt.Fprintln(out, "steam presets:")
			for _, p := range grid.PresetNames() {
				fmt.Fprintf(out, "  %s (%d points)\n", p, len(grid.Presets[p]))
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(previewCmd, statsCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file, environment and flags, in
// increasing precedence, and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	// Config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("timeout") {
		cfg.TimeoutMs = timeoutMs
	}
	if fl.Changed("character") {
		cfg.Character = character
	}
	if fl.Changed("scene") {
		cfg.Scene = scenePath
	}
	if fl.Changed("steam") {
		cfg.Steam = steam
	}
	if fl.Changed("static") {
		cfg.Static = static
	}
	if fl.Changed("backend") {
		cfg.Backend = backend
	}
	if fl.Changed("seed") {
		cfg.Seed = seed
	}
	if fl.Changed("log") {
		cfg.LogFile = logFile
	}
	if fl.Changed("status") {
		cfg.Status = status
	}
	if fl.Changed("frames") {
		cfg.Preview.Frames = frames
	}
	if fl.Changed("theme") {
		cfg.Preview.Theme = theme
	}
	if fl.Changed("ticks") {
		cfg.Preview.Ticks = ticks
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// openLogger returns a file-backed logger, or a discarding one when path is empty.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
