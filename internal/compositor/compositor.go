// Package compositor maps a grid onto the characters drawn for one frame.
package compositor

import (
	"strings"

	"github.com/san-kum/diorama/internal/grid"
)

// Shade glyphs indexed by steam level; index 0 is unused.
var steamGlyphs = [grid.MaxSteam + 1]rune{' ', '░', '▒', '▓', '█'}

// CharBuffer is a row-major W×H frame of runes.
type CharBuffer struct {
	Width, Height int
	Cells         []rune
}

// Render builds the frame for g. It only reads g.
func Render(g *grid.Grid) CharBuffer {
	buf := CharBuffer{
		Width:  g.Width(),
		Height: g.Height(),
		Cells:  make([]rune, g.Len()),
	}
	for i, c := range g.Cells() {
		buf.Cells[i] = Glyph(c.Value)
	}
	return buf
}

// Glyph returns the character drawn for a single value. Anything the automaton
// could not have produced draws as a blank.
func Glyph(v grid.CellValue) rune {
	switch v.Kind {
	case grid.KindEmpty:
		return ' '
	case grid.KindSteam:
		if v.Level < grid.MinSteam || v.Level > grid.MaxSteam {
			return ' '
		}
		return steamGlyphs[v.Level]
	case grid.KindScene:
		return v.Char
	default:
		return ' '
	}
}

func (b CharBuffer) At(x, y int) rune {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return ' '
	}
	return b.Cells[y*b.Width+x]
}

func (b CharBuffer) Row(y int) string {
	if y < 0 || y >= b.Height {
		return ""
	}
	return string(b.Cells[y*b.Width : (y+1)*b.Width])
}

func (b CharBuffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		sb.WriteString(b.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}
