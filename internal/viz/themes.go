package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the parts of a diorama frame.
type Theme struct {
	Name  string
	Scene lipgloss.Color
	// Steam is indexed by level; index 0 is unused.
	Steam [5]lipgloss.Color
	Help  lipgloss.Color
	Plain bool
}

// Available themes
var (
	ThemeCafe = Theme{
		Name:  "cafe",
		Scene: lipgloss.Color("#c8a27a"), // Latte
		Steam: [5]lipgloss.Color{"", "#5a5a66", "#8a8a99", "#c0c0cc", "#f4f4ff"},
		Help:  lipgloss.Color("#666688"),
	}

	ThemeOcean = Theme{
		Name:  "ocean",
		Scene: lipgloss.Color("#0077be"),
		Steam: [5]lipgloss.Color{"", "#1f4a66", "#2f7aa0", "#5fb8e0", "#e0f0ff"},
		Help:  lipgloss.Color("#4488aa"),
	}

	ThemeRetroGreen = Theme{
		Name:  "retro",
		Scene: lipgloss.Color("#00cc00"), // Green phosphor
		Steam: [5]lipgloss.Color{"", "#004400", "#007700", "#00aa00", "#88ff88"},
		Help:  lipgloss.Color("#005500"),
	}

	ThemePlain = Theme{Name: "plain", Plain: true}

	// Default theme
	DefaultTheme = ThemeCafe

	// All available themes
	Themes = []Theme{
		ThemeCafe,
		ThemeOcean,
		ThemeRetroGreen,
		ThemePlain,
	}
)

// GetTheme returns a theme by name and whether it exists.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return DefaultTheme, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
