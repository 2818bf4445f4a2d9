package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/diorama/internal/window"
)

type cell struct {
	r    rune
	pair *window.ColorPair
}

// frame is an immutable snapshot handed from the surface to the program.
type frame struct {
	rows, cols int
	cells      []cell
}

type frameMsg frame

type model struct {
	frame  frame
	keys   chan<- window.Key
	resize func(rows, cols int)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = frame(msg)
	case tea.KeyMsg:
		select {
		case m.keys <- translateKey(msg):
		default:
		}
	case tea.WindowSizeMsg:
		if m.resize != nil {
			m.resize(msg.Height, msg.Width)
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	for y := 0; y < m.frame.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := m.frame.cells[y*m.frame.cols : (y+1)*m.frame.cols]
		var run strings.Builder
		var pair *window.ColorPair
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(pairStyle(pair).Render(run.String()))
			run.Reset()
		}
		for _, c := range row {
			if c.r == 0 {
				continue
			}
			if c.pair != pair {
				flush()
				pair = c.pair
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return b.String()
}

var pairStyles = map[window.ColorPair]lipgloss.Style{}

func pairStyle(p *window.ColorPair) lipgloss.Style {
	if p == nil {
		return lipgloss.NewStyle()
	}
	if st, ok := pairStyles[*p]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if p.Foreground.Valid() {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(int(p.Foreground))))
	}
	if p.Background.Valid() {
		st = st.Background(lipgloss.Color(strconv.Itoa(int(p.Background))))
	}
	pairStyles[*p] = st
	return st
}

var keyTable = map[tea.KeyType]window.KeyCode{
	tea.KeyUp:    window.KeyUp,
	tea.KeyDown:  window.KeyDown,
	tea.KeyLeft:  window.KeyLeft,
	tea.KeyRight: window.KeyRight,
	tea.KeyCtrlC: window.KeyInterrupt,
}

func translateKey(msg tea.KeyMsg) window.Key {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return window.RuneKey(msg.Runes[0])
	}
	if msg.Type == tea.KeySpace {
		return window.RuneKey(' ')
	}
	if code, ok := keyTable[msg.Type]; ok {
		return window.Key{Code: code}
	}
	return window.Key{Code: window.KeyOther}
}
