package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/diorama/internal/window"
)

func openHeadless(t *testing.T, rows, cols int) *Surface {
	t.Helper()
	s, err := Open(rows, cols,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	if err != nil {
		t.Fatalf("open surface: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want window.Key
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, window.RuneKey('a')},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, window.Key{Code: window.KeyOther}},
		{tea.KeyMsg{Type: tea.KeyUp}, window.Key{Code: window.KeyUp}},
		{tea.KeyMsg{Type: tea.KeyDown}, window.Key{Code: window.KeyDown}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, window.Key{Code: window.KeyInterrupt}},
		{tea.KeyMsg{Type: tea.KeySpace}, window.RuneKey(' ')},
		{tea.KeyMsg{Type: tea.KeyTab}, window.Key{Code: window.KeyOther}},
	}
	for _, tt := range tests {
		if got := translateKey(tt.msg); got != tt.want {
			t.Errorf("translateKey(%v): expected %v, got %v", tt.msg, tt.want, got)
		}
	}
}

func TestModelView(t *testing.T) {
	cells := []cell{
		{r: 'a'}, {r: '█'}, {r: ' '},
		{r: 'x'}, {r: 'y'}, {r: 'z'},
	}
	m := model{frame: frame{rows: 2, cols: 3, cells: cells}}

	if got := m.View(); got != "a█ \nxyz" {
		t.Errorf("unexpected view %q", got)
	}
}

func TestModelForwardsKeysAndSize(t *testing.T) {
	keys := make(chan window.Key, 1)
	var rows, cols int
	m := model{keys: keys, resize: func(r, c int) { rows, cols = r, c }}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	next.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if k := <-keys; k != window.RuneKey('s') {
		t.Errorf("expected 's', got %v", k)
	}
	if rows != 30 || cols != 100 {
		t.Errorf("expected 30x100, got %dx%d", rows, cols)
	}
}

func TestSurfacePrintAndBounds(t *testing.T) {
	s := openHeadless(t, 3, 5)

	if err := s.Print(1, 1, "hey!!", nil); err != nil {
		t.Fatalf("print: %v", err)
	}
	row := s.cells[5:10]
	var b strings.Builder
	for _, c := range row {
		b.WriteRune(c.r)
	}
	if b.String() != " hey!" {
		t.Errorf("expected clipped row %q, got %q", " hey!", b.String())
	}

	err := s.Print(5, 0, "x", nil)
	if !errors.Is(err, window.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if err := s.Refresh(); err != nil {
		t.Errorf("refresh: %v", err)
	}
}

func TestSurfaceReadKey(t *testing.T) {
	s := openHeadless(t, 2, 2)
	s.SetTimeout(time.Second)

	s.program.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	k, err := s.ReadKey()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if k != window.RuneKey('q') {
		t.Errorf("expected 'q', got %v", k)
	}

	s.SetTimeout(10 * time.Millisecond)
	k, err = s.ReadKey()
	if err != nil || k.Code != window.KeyNone {
		t.Errorf("expected timeout, got %v %v", k, err)
	}
}

func TestSurfaceClose(t *testing.T) {
	s := openHeadless(t, 2, 2)

	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
	if err := s.Refresh(); !errors.Is(err, window.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
