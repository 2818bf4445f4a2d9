package grid

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g := mustGrid(t, 7, 4)

	if g.Len() != 28 {
		t.Errorf("expected 28 cells, got %d", g.Len())
	}
	for i, c := range g.Cells() {
		if !c.Value.IsEmpty() {
			t.Errorf("cell %d: expected Empty, got %v", i, c.Value)
		}
		if c.X != i%7 || c.Y != i/7 {
			t.Errorf("cell %d: expected coords (%d,%d), got (%d,%d)", i, i%7, i/7, c.X, c.Y)
		}
	}
}

func TestNewGridInvalid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h)
			if !errors.Is(err, ErrDimensions) {
				t.Errorf("expected ErrDimensions, got %v", err)
			}
		})
	}
}

func TestSetAndAtOutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 3)

	if g.Set(3, 0, Steam(4)) {
		t.Error("set outside grid should report false")
	}
	if got := g.At(-1, 0); !got.IsEmpty() {
		t.Errorf("expected Empty outside grid, got %v", got)
	}
	if !g.Set(2, 2, Scene('x')) {
		t.Fatal("set inside grid should report true")
	}
	if c, ok := g.At(2, 2).SceneChar(); !ok || c != 'x' {
		t.Errorf("expected Scene('x'), got %v", g.At(2, 2))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Set(1, 1, Steam(3))

	c := g.Clone()
	c.Set(1, 1, Empty())

	if lvl, ok := g.At(1, 1).SteamLevel(); !ok || lvl != 3 {
		t.Errorf("clone mutation leaked into original: %v", g.At(1, 1))
	}
	if g.Equal(c) {
		t.Error("grids should differ after clone mutation")
	}
}

func TestCellValueVariants(t *testing.T) {
	tests := []struct {
		v    CellValue
		kind Kind
		str  string
	}{
		{Empty(), KindEmpty, "Empty"},
		{Steam(2), KindSteam, "Steam(2)"},
		{Scene('#'), KindScene, "Scene('#')"},
	}
	for _, tt := range tests {
		if tt.v.Kind != tt.kind {
			t.Errorf("%v: expected kind %v, got %v", tt.v, tt.kind, tt.v.Kind)
		}
		if tt.v.String() != tt.str {
			t.Errorf("expected %q, got %q", tt.str, tt.v.String())
		}
	}

	if _, ok := Scene('a').SteamLevel(); ok {
		t.Error("scene value should not report a steam level")
	}
}

func TestReadScene(t *testing.T) {
	g := mustGrid(t, 2, 2)
	if err := ReadScene(g, strings.NewReader("AB\nCD")); err != nil {
		t.Fatalf("read scene: %v", err)
	}

	want := [][]rune{{'A', 'B'}, {'C', 'D'}}
	for y, row := range want {
		for x, c := range row {
			if got := g.At(x, y); got != Scene(c) {
				t.Errorf("(%d,%d): expected %v, got %v", x, y, Scene(c), got)
			}
		}
	}
}

func TestReadSceneShortAndLongLines(t *testing.T) {
	g := mustGrid(t, 4, 2)
	text := "ab\r\nwxyz12\nextra row\n"
	if err := ReadScene(g, strings.NewReader(text)); err != nil {
		t.Fatalf("read scene: %v", err)
	}

	if !g.At(2, 0).IsEmpty() || !g.At(3, 0).IsEmpty() {
		t.Errorf("short line should leave trailing cells empty: %v %v", g.At(2, 0), g.At(3, 0))
	}
	if g.At(3, 1) != Scene('z') {
		t.Errorf("expected Scene('z'), got %v", g.At(3, 1))
	}
	if g.At(1, 0) == Scene('\r') {
		t.Error("carriage return leaked into the grid")
	}
}

func TestReadSceneUTF8(t *testing.T) {
	g := mustGrid(t, 3, 1)
	if err := ReadScene(g, strings.NewReader("☕─╮")); err != nil {
		t.Fatalf("read scene: %v", err)
	}
	if g.At(0, 0) != Scene('☕') || g.At(2, 0) != Scene('╮') {
		t.Errorf("unexpected runes: %v %v", g.At(0, 0), g.At(2, 0))
	}
}

func TestReadSceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.txt")
	if err := os.WriteFile(path, []byte("~~\n||\n"), 0644); err != nil {
		t.Fatal(err)
	}
	text, err := ReadSceneFile(path)
	if err != nil {
		t.Fatalf("read scene file: %v", err)
	}
	if text != "~~\n||\n" {
		t.Errorf("unexpected text %q", text)
	}

	_, err = ReadSceneFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrScene) {
		t.Errorf("expected ErrScene, got %v", err)
	}
}

func TestSceneSize(t *testing.T) {
	cols, rows := SceneSize("abc\nde\n\nfghij\n")
	if cols != 5 || rows != 4 {
		t.Errorf("expected 5x4, got %dx%d", cols, rows)
	}
	if c, r := SceneSize(""); c != 0 || r != 0 {
		t.Errorf("expected 0x0 for empty text, got %dx%d", c, r)
	}
}

func TestSeed(t *testing.T) {
	g := mustGrid(t, 5, 5)
	pts := []Point{{1, 1}, {2, 3}, {9, 9}}

	if n := Seed(g, pts); n != 2 {
		t.Errorf("expected 2 seeded cells, got %d", n)
	}
	if g.At(2, 3) != Steam(MaxSteam) {
		t.Errorf("expected Steam(4), got %v", g.At(2, 3))
	}
	if g.Count(KindSteam) != 2 {
		t.Errorf("expected 2 steam cells, got %d", g.Count(KindSteam))
	}
}

func TestCupPresetExtent(t *testing.T) {
	w, h := Extent(Presets["cup"])
	if w != 69 || h != 19 {
		t.Errorf("expected cup extent 69x19, got %dx%d", w, h)
	}
	if len(Presets["cup"]) != 40 {
		t.Errorf("expected 40 cup points, got %d", len(Presets["cup"]))
	}
}
