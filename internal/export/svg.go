package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/diorama/internal/grid"
	"github.com/san-kum/diorama/internal/viz"
)

const (
	background = "#0a0a0a"
	foreground = "#e0e0e0"
)

// FrameToSVG draws a grid as an SVG document. Each cell is scale pixels wide and
// twice that tall. Steam is drawn as filled cells whose opacity follows the level;
// scene characters are drawn as text.
func FrameToSVG(g *grid.Grid, t viz.Theme, scale float64) string {
	if g == nil || scale <= 0 {
		return ""
	}

	cw, ch := scale, scale*2
	width := float64(g.Width()) * cw
	height := float64(g.Height()) * ch

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	sb.WriteString(fmt.Sprintf(`<g font-family="monospace" font-size="%.1f" fill="%s">
`, ch*0.8, colorOr(string(t.Scene), foreground)))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v := g.At(x, y)
			switch v.Kind {
			case grid.KindSteam:
				if v.Level < grid.MinSteam || v.Level > grid.MaxSteam {
					continue
				}
				opacity := float64(v.Level) / grid.MaxSteam
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="%.2f"/>
`, float64(x)*cw, float64(y)*ch, cw, ch, colorOr(string(t.Steam[v.Level]), foreground), opacity))
			case grid.KindScene:
				if v.Char == ' ' {
					continue
				}
				sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>
`, float64(x)*cw, float64(y+1)*ch-ch*0.2, html.EscapeString(string(v.Char))))
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG plots a per-tick series, such as steam population, as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	// Find bounds
	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	stepX := float64(width) / float64(len(values)-1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, colorOr(strokeColor, foreground)))

	for i, v := range values {
		x := float64(i) * stepX
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}
