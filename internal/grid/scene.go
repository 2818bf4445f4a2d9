package grid

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadSceneFile returns the scene text stored at path.
func ReadSceneFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrScene, err)
	}
	return string(data), nil
}

// ReadScene copies scene text into g: line i becomes row i and rune j of that line
// becomes Scene(rune) at column j. Cells past the end of a short line keep their
// current value and text outside the grid is dropped.
func ReadScene(g *Grid, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScene, err)
	}
	for y, line := range sceneLines(string(data)) {
		if y >= g.height {
			break
		}
		x := 0
		for _, c := range line {
			if x >= g.width {
				break
			}
			g.Set(x, y, Scene(c))
			x++
		}
	}
	return nil
}

// SceneSize returns the number of columns and rows the scene text occupies.
func SceneSize(text string) (cols, rows int) {
	lines := sceneLines(text)
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > cols {
			cols = n
		}
	}
	return cols, len(lines)
}

func sceneLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
