// Package automaton advances the steam cellular automaton.
//
// Each tick, every steam cell in the interior of the grid decays with probability
// one half and writes the result into the cell directly above it. Sources are read
// from a snapshot taken at the start of the tick, so a cell is written at most once
// per tick and only from the cell below it. Scene cells are never overwritten.
//
//   - [Engine]: single-tick update rule
//   - [Source]: uniform random draws in [0, 1)
//   - [Runner]: headless multi-tick driver with per-tick observers
//
// # Thread Safety
//
// Engine instances are NOT thread-safe; they own a scratch snapshot reused every tick.
package automaton
