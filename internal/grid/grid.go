package grid

import "fmt"

// Grid is a row-major W×H field of cells. len(cells) == W*H always holds.
type Grid struct {
	width, height int
	cells         []Cell
}

// New returns a grid of Empty cells.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = Cell{Value: Empty(), X: x, Y: y}
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Len() int    { return len(g.cells) }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the value at column x, row y. Positions outside the grid read as Empty.
func (g *Grid) At(x, y int) CellValue {
	if !g.InBounds(x, y) {
		return Empty()
	}
	return g.cells[y*g.width+x].Value
}

// Set stores v at column x, row y and reports whether the position was inside the grid.
func (g *Grid) Set(x, y int, v CellValue) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x].Value = v
	return true
}

// Cells exposes the backing slice in row-major order. Callers must not resize it.
func (g *Grid) Cells() []Cell { return g.cells }

func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]Cell, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites g with src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.width != g.width || src.height != g.height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensions, g.width, g.height, src.width, src.height)
	}
	copy(g.cells, src.cells)
	return nil
}

// Equal reports whether both grids have the same shape and values.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i].Value != o.cells[i].Value {
			return false
		}
	}
	return true
}

// Count returns how many cells hold a value of kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c.Value.Kind == k {
			n++
		}
	}
	return n
}
