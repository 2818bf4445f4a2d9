package grid

import "sort"

// Point is a column/row position.
type Point struct {
	X, Y int
}

// Span returns the points of a horizontal run of n cells starting at x, y.
func Span(x, y, n int) []Point {
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, Point{X: x + i, Y: y})
	}
	return pts
}

// Presets are named steam origins. "cup" traces the rim of the bundled coffee scene.
var Presets = map[string][]Point{
	"none": nil,
	"cup":  concat(Span(29, 18, 8), Span(37, 17, 24), Span(61, 18, 8)),
	"kettle": concat(
		Span(12, 10, 3),
		Span(13, 9, 2),
	),
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for k := range Presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Seed sets Steam(MaxSteam) at every point inside g and returns how many were placed.
func Seed(g *Grid, points []Point) int {
	n := 0
	for _, p := range points {
		if g.Set(p.X, p.Y, Steam(MaxSteam)) {
			n++
		}
	}
	return n
}

// Extent returns the smallest width and height that contain every point.
func Extent(points []Point) (width, height int) {
	for _, p := range points {
		if p.X+1 > width {
			width = p.X + 1
		}
		if p.Y+1 > height {
			height = p.Y + 1
		}
	}
	return width, height
}

func concat(parts ...[]Point) []Point {
	var out []Point
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
