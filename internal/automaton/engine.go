package automaton

import "github.com/san-kum/diorama/internal/grid"

// StayProbability is the chance a steam cell keeps its level for one tick.
const StayProbability = 0.5

type Engine struct {
	src      Source
	snapshot *grid.Grid
	ticks    int
}

func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// NewSeeded returns an engine drawing from math/rand seeded with seed.
func NewSeeded(seed int64) *Engine {
	return NewEngine(NewRand(seed))
}

// Ticks returns how many times Step has run.
func (e *Engine) Ticks() int { return e.ticks }

// Step advances g by one tick in place.
//
// Sources are interior cells whose target (one row up) is also interior, so the
// border rows and columns are never written. Rows are visited top to bottom and
// columns left to right; one value is drawn per steam source in that order.
func (e *Engine) Step(g *grid.Grid) {
	e.ticks++
	w, h := g.Width(), g.Height()
	if w < 3 || h < 3 {
		return
	}
	if e.snapshot == nil || e.snapshot.Width() != w || e.snapshot.Height() != h {
		e.snapshot = g.Clone()
	} else {
		_ = e.snapshot.CopyFrom(g)
	}

	for y := 2; y <= h-2; y++ {
		for x := 1; x <= w-2; x++ {
			level, ok := e.snapshot.At(x, y).SteamLevel()
			if !ok {
				continue
			}
			next := Decay(level, e.src.Float64())
			if blocks(g.At(x, y-1)) {
				continue
			}
			g.Set(x, y-1, next)
		}
	}
}

// blocks reports whether a write onto v is dropped. Visible scene characters stop
// steam; blank scene cells are open air.
func blocks(v grid.CellValue) bool {
	c, ok := v.SceneChar()
	return ok && c != ' '
}

// Decay applies the transition table to one steam level given a draw p.
// Levels outside [grid.MinSteam, grid.MaxSteam] pass through unchanged.
func Decay(level int8, p float64) grid.CellValue {
	if level < grid.MinSteam || level > grid.MaxSteam {
		return grid.Steam(level)
	}
	if p < StayProbability {
		return grid.Steam(level)
	}
	if level == grid.MinSteam {
		return grid.Empty()
	}
	return grid.Steam(level - 1)
}
