package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/diorama/internal/compositor"
	"github.com/san-kum/diorama/internal/grid"
)

// Frame styles a grid with theme t. Runs of cells sharing a style are rendered
// together; plain themes return the bare character buffer.
func Frame(g *grid.Grid, t Theme) string {
	buf := compositor.Render(g)
	if t.Plain {
		return strings.TrimSuffix(buf.String(), "\n")
	}

	var b strings.Builder
	for y := 0; y < buf.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var cur lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(cur).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < buf.Width; x++ {
			c := colorFor(g.At(x, y), t)
			if c != cur {
				flush()
				cur = c
			}
			run.WriteRune(buf.At(x, y))
		}
		flush()
	}
	return b.String()
}

func colorFor(v grid.CellValue, t Theme) lipgloss.Color {
	switch v.Kind {
	case grid.KindScene:
		return t.Scene
	case grid.KindSteam:
		if v.Level >= grid.MinSteam && v.Level <= grid.MaxSteam {
			return t.Steam[v.Level]
		}
	}
	return ""
}

// Caption renders a muted line under a frame.
func Caption(t Theme, format string, args ...any) string {
	text := fmt.Sprintf(format, args...)
	if t.Plain || t.Help == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(t.Help).Italic(true).Render(text)
}

// Separator draws a horizontal rule of the given width.
func Separator(t Theme, width int) string {
	if width < 1 {
		return ""
	}
	line := strings.Repeat("─", width)
	if t.Plain || t.Help == "" {
		return line
	}
	return lipgloss.NewStyle().Foreground(t.Help).Render(line)
}
