// Package grid holds the cell model shared by the automaton and the compositor.
//
// A [Grid] is a fixed-size, row-major slice of [Cell] values. Each cell carries a
// [CellValue], a tagged union with exactly one active variant:
//
//   - Empty: nothing to draw
//   - Steam(level): rising vapor, level 1 (faint) to 4 (dense)
//   - Scene(char): background art loaded from a text file
//
// # Example
//
//	text, err := grid.ReadSceneFile("coffee.txt")
//	if err != nil {
//		return err
//	}
//	g, _ := grid.New(80, 24)
//	grid.ReadScene(g, strings.NewReader(text))
//	grid.Seed(g, grid.Presets["cup"])
package grid
