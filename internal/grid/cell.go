package grid

import "fmt"

// Kind discriminates the active variant of a CellValue.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindSteam
	KindScene
)

const (
	MinSteam = 1
	MaxSteam = 4
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSteam:
		return "steam"
	case KindScene:
		return "scene"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// CellValue is the content of one cell. Only the field matching Kind is meaningful;
// build values with Empty, Steam and Scene.
type CellValue struct {
	Kind  Kind
	Level int8
	Char  rune
}

func Empty() CellValue { return CellValue{Kind: KindEmpty} }

// Steam returns a steam value. Levels outside [MinSteam, MaxSteam] are kept as-is so
// callers can observe them; the compositor draws them as blanks.
func Steam(level int8) CellValue { return CellValue{Kind: KindSteam, Level: level} }

func Scene(c rune) CellValue { return CellValue{Kind: KindScene, Char: c} }

func (v CellValue) IsEmpty() bool { return v.Kind == KindEmpty }

// SteamLevel reports the level and true when v is a steam value.
func (v CellValue) SteamLevel() (int8, bool) {
	if v.Kind != KindSteam {
		return 0, false
	}
	return v.Level, true
}

// SceneChar reports the character and true when v is a scene value.
func (v CellValue) SceneChar() (rune, bool) {
	if v.Kind != KindScene {
		return 0, false
	}
	return v.Char, true
}

func (v CellValue) String() string {
	switch v.Kind {
	case KindEmpty:
		return "Empty"
	case KindSteam:
		return fmt.Sprintf("Steam(%d)", v.Level)
	case KindScene:
		return fmt.Sprintf("Scene(%q)", v.Char)
	default:
		return v.Kind.String()
	}
}

// Cell pairs a value with the coordinates it occupies. X is the column and Y the
// row; the grid keeps them in sync with the cell's index.
type Cell struct {
	Value CellValue
	X, Y  int
}
