package window

import "github.com/gdamore/tcell/v2"

// Color is one of the eight base terminal colors.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

func (c Color) Valid() bool { return c <= White }

// ParseColor returns the base color with the given lowercase name.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}

// ColorPair is a foreground/background combination applied to a single Print.
type ColorPair struct {
	Foreground Color
	Background Color
}

func NewColorPair(fg, bg Color) *ColorPair {
	return &ColorPair{Foreground: fg, Background: bg}
}

// style converts p to a tcell style; nil and invalid colors fall back to the default.
func (p *ColorPair) style() tcell.Style {
	st := tcell.StyleDefault
	if p == nil {
		return st
	}
	if p.Foreground.Valid() {
		st = st.Foreground(tcell.PaletteColor(int(p.Foreground)))
	}
	if p.Background.Valid() {
		st = st.Background(tcell.PaletteColor(int(p.Background)))
	}
	return st
}
