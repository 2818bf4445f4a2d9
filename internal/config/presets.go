package config

import "sort"

var Presets = map[string]*Config{
	"calm": {
		TimeoutMs: 800, Scene: DefaultScene, Steam: "cup", Backend: BackendTcell,
		Preview: ViewConfig{Theme: "cafe", Frames: 3, Ticks: 100},
	},
	"brisk": {
		TimeoutMs: 60, Scene: DefaultScene, Steam: "cup", Backend: BackendTcell,
		Preview: ViewConfig{Theme: "ocean", Frames: 8, Ticks: 400},
	},
	"still": {
		TimeoutMs: 1000, Scene: DefaultScene, Steam: "cup", Static: true, Backend: BackendTcell,
		Preview: ViewConfig{Theme: "plain", Frames: 1, Ticks: 1},
	},
	"bare": {
		TimeoutMs: 500, Scene: DefaultScene, Steam: "none", Backend: BackendTcell,
		Preview: ViewConfig{Theme: "retro", Frames: 1, Ticks: 1},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	def := DefaultConfig()
	if cfg.Character == "" {
		cfg.Character = def.Character
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
