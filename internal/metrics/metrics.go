// Package metrics collects per-tick statistics about the steam automaton.
package metrics

import "github.com/san-kum/diorama/internal/grid"

// Metric observes a grid after every tick and summarizes the run as one value.
// Every Metric satisfies automaton.Observer.
type Metric interface {
	Name() string
	OnTick(tick int, g *grid.Grid)
	Value() float64
	Reset()
}

// Population records how many steam cells exist after each tick.
type Population struct {
	name    string
	history []float64
}

func NewPopulation() *Population {
	return &Population{name: "steam_population"}
}

func (p *Population) Name() string { return p.name }

func (p *Population) OnTick(tick int, g *grid.Grid) {
	p.history = append(p.history, float64(g.Count(grid.KindSteam)))
}

// Value is the mean population over all observed ticks.
func (p *Population) Value() float64 {
	if len(p.history) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range p.history {
		sum += v
	}
	return sum / float64(len(p.history))
}

func (p *Population) Peak() float64 {
	peak := 0.0
	for _, v := range p.history {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// History returns the per-tick counts; index 0 is the state before the first tick.
func (p *Population) History() []float64 { return p.history }

func (p *Population) Reset() { p.history = p.history[:0] }

// Levels holds the steam level histogram of the most recent tick.
type Levels struct {
	name   string
	counts [grid.MaxSteam + 1]int
}

func NewLevels() *Levels {
	return &Levels{name: "mean_level"}
}

func (l *Levels) Name() string { return l.name }

func (l *Levels) OnTick(tick int, g *grid.Grid) {
	l.counts = [grid.MaxSteam + 1]int{}
	for _, c := range g.Cells() {
		if lvl, ok := c.Value.SteamLevel(); ok && lvl >= grid.MinSteam && lvl <= grid.MaxSteam {
			l.counts[lvl]++
		}
	}
}

// Count returns the number of cells at level after the most recent tick.
func (l *Levels) Count(level int) int {
	if level < grid.MinSteam || level > grid.MaxSteam {
		return 0
	}
	return l.counts[level]
}

// Value is the mean steam level after the most recent tick.
func (l *Levels) Value() float64 {
	total, weighted := 0, 0
	for lvl := grid.MinSteam; lvl <= grid.MaxSteam; lvl++ {
		total += l.counts[lvl]
		weighted += lvl * l.counts[lvl]
	}
	if total == 0 {
		return 0
	}
	return float64(weighted) / float64(total)
}

func (l *Levels) Reset() { l.counts = [grid.MaxSteam + 1]int{} }

// Plume tracks how far above the bottom row steam has reached.
type Plume struct {
	name    string
	highest int
}

func NewPlume() *Plume {
	return &Plume{name: "plume_height"}
}

func (p *Plume) Name() string { return p.name }

func (p *Plume) OnTick(tick int, g *grid.Grid) {
	for _, c := range g.Cells() {
		if c.Value.Kind != grid.KindSteam {
			continue
		}
		if h := g.Height() - 1 - c.Y; h > p.highest {
			p.highest = h
		}
	}
}

// Value is the greatest height, in rows above the bottom edge, reached so far.
func (p *Plume) Value() float64 { return float64(p.highest) }

func (p *Plume) Reset() { p.highest = 0 }
