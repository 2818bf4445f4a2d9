package input

import (
	"fmt"

	"github.com/san-kum/diorama/internal/window"
)

// Command is the logical action decoded from one key read.
type Command uint8

const (
	Continue Command = iota
	Quit
	IncreaseTimeout
	DecreaseTimeout
	// Up and Down are decoded but nothing consumes them yet.
	Up
	Down
)

var commandNames = map[Command]string{
	Continue:        "continue",
	Quit:            "quit",
	IncreaseTimeout: "increase-timeout",
	DecreaseTimeout: "decrease-timeout",
	Up:              "up",
	Down:            "down",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

var runeCommands = map[rune]Command{
	'q': Quit,
	'a': IncreaseTimeout,
	's': DecreaseTimeout,
	'k': Up,
	'j': Down,
}

var codeCommands = map[window.KeyCode]Command{
	window.KeyUp:        Up,
	window.KeyDown:      Down,
	window.KeyInterrupt: Quit,
}

// Classify maps a key to its command. Unbound keys and timeouts are Continue.
func Classify(k window.Key) Command {
	if k.Code == window.KeyRune {
		if c, ok := runeCommands[k.Rune]; ok {
			return c
		}
		return Continue
	}
	if c, ok := codeCommands[k.Code]; ok {
		return c
	}
	return Continue
}
