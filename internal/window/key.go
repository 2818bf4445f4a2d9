package window

import "fmt"

// KeyCode classifies a key event independently of the terminal backend.
type KeyCode uint8

const (
	// KeyNone means the read timed out with no key pressed.
	KeyNone KeyCode = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyInterrupt
	KeyOther
)

var keyCodeNames = map[KeyCode]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyInterrupt: "interrupt",
	KeyOther:     "other",
}

func (k KeyCode) String() string {
	if s, ok := keyCodeNames[k]; ok {
		return s
	}
	return fmt.Sprintf("keycode(%d)", uint8(k))
}

// Key is one decoded key press. Rune is only set when Code is KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

func RuneKey(r rune) Key { return Key{Code: KeyRune, Rune: r} }

func (k Key) String() string {
	if k.Code == KeyRune {
		return fmt.Sprintf("%q", k.Rune)
	}
	return k.Code.String()
}
