package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/diorama/internal/grid"
	"github.com/san-kum/diorama/internal/input"
	"github.com/san-kum/diorama/internal/window"
)

const (
	DefaultScene   = "coffee.txt"
	DefaultSteam   = "cup"
	DefaultBackend = BackendTcell
	DefaultTheme   = "cafe"
	DefaultFrames  = 5
	DefaultTicks   = 200

	BackendTcell = "tcell"
	BackendTea   = "tea"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	TimeoutMs int        `yaml:"timeout_ms" env:"TIMEOUT"`
	Character string     `yaml:"character" env:"CHARACTER"`
	Scene     string     `yaml:"scene" env:"SCENE"`
	Steam     string     `yaml:"steam" env:"STEAM"`
	Static    bool       `yaml:"static" env:"STATIC"`
	Backend   string     `yaml:"backend" env:"BACKEND"`
	Seed      int64      `yaml:"seed" env:"SEED"`
	LogFile   string     `yaml:"log_file" env:"LOG"`
	Status    bool       `yaml:"status" env:"STATUS"`
	Help      HelpConfig `yaml:"help" envPrefix:"HELP_"`
	Preview   ViewConfig `yaml:"preview" envPrefix:"PREVIEW_"`
}

type HelpConfig struct {
	Foreground string `yaml:"foreground" env:"FG"`
	Background string `yaml:"background" env:"BG"`
}

type ViewConfig struct {
	Theme  string `yaml:"theme" env:"THEME"`
	Frames int    `yaml:"frames" env:"FRAMES"`
	Ticks  int    `yaml:"ticks" env:"TICKS"`
}

func DefaultConfig() *Config {
	return &Config{
		TimeoutMs: input.DefaultTimeoutMs,
		Character: string(input.DefaultDrawChar),
		Scene:     DefaultScene,
		Steam:     DefaultSteam,
		Backend:   DefaultBackend,
		Preview: ViewConfig{
			Theme:  DefaultTheme,
			Frames: DefaultFrames,
			Ticks:  DefaultTicks,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from DIORAMA_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: "DIORAMA_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.TimeoutMs < input.MinTimeoutMs || c.TimeoutMs > input.MaxTimeoutMs {
		return fmt.Errorf("%w: timeout %dms outside [%d,%d]", ErrInvalid, c.TimeoutMs, input.MinTimeoutMs, input.MaxTimeoutMs)
	}
	if utf8.RuneCountInString(c.Character) != 1 {
		return fmt.Errorf("%w: character must be a single rune, got %q", ErrInvalid, c.Character)
	}
	if c.Scene == "" {
		return fmt.Errorf("%w: scene path is empty", ErrInvalid)
	}
	if _, ok := grid.Presets[c.Steam]; !ok {
		return fmt.Errorf("%w: unknown steam preset %q (available: %v)", ErrInvalid, c.Steam, grid.PresetNames())
	}
	switch c.Backend {
	case BackendTcell, BackendTea:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if _, err := c.Help.Pair(); err != nil {
		return err
	}
	if c.Preview.Frames < 1 {
		return fmt.Errorf("%w: preview frames must be positive", ErrInvalid)
	}
	if c.Preview.Ticks < 1 {
		return fmt.Errorf("%w: ticks must be positive", ErrInvalid)
	}
	return nil
}

// Pair resolves the help line colors from the 8-color palette. An unset
// foreground is white and an unset background black; both unset means no pair.
func (h HelpConfig) Pair() (*window.ColorPair, error) {
	if h.Foreground == "" && h.Background == "" {
		return nil, nil
	}
	fg, bg := window.White, window.Black
	if h.Foreground != "" {
		c, ok := window.ParseColor(h.Foreground)
		if !ok {
			return nil, fmt.Errorf("%w: help foreground %q", ErrInvalid, h.Foreground)
		}
		fg = c
	}
	if h.Background != "" {
		c, ok := window.ParseColor(h.Background)
		if !ok {
			return nil, fmt.Errorf("%w: help background %q", ErrInvalid, h.Background)
		}
		bg = c
	}
	return window.NewColorPair(fg, bg), nil
}

// DrawChar returns the configured draw character, or the default when unset.
func (c *Config) DrawChar() rune {
	r, _ := utf8.DecodeRuneInString(c.Character)
	if r == utf8.RuneError {
		return input.DefaultDrawChar
	}
	return r
}
