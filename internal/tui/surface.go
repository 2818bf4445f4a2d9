// Package tui draws the diorama through a Bubble Tea program.
//
// [Surface] offers the same erase/print/refresh/read-key contract as the tcell
// window: the frame loop writes into an in-memory canvas, Refresh hands a snapshot
// to the program for display, and key messages are queued for ReadKey.
package tui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/san-kum/diorama/internal/window"
)

const (
	keyBuffer   = 64
	sizeTimeout = 2 * time.Second
)

type Surface struct {
	program    *tea.Program
	rows, cols int
	cells      []cell
	timeout    time.Duration
	keys       chan window.Key

	mu        sync.Mutex
	termRows  int
	termCols  int
	sized     chan struct{}
	sizedOnce sync.Once
	done      chan struct{}
	runErr    error
	closeOnce sync.Once
	closed    bool
}

// Open starts a Bubble Tea program and returns a surface drawing through it.
// Non-positive rows or cols wait for the terminal size and use all of it.
func Open(rows, cols int, opts ...tea.ProgramOption) (*Surface, error) {
	s := &Surface{
		timeout: window.DefaultTimeout,
		keys:    make(chan window.Key, keyBuffer),
		sized:   make(chan struct{}),
		done:    make(chan struct{}),
	}
	m := model{keys: s.keys, resize: s.setExtents}
	s.program = tea.NewProgram(m, opts...)

	go func() {
		_, err := s.program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			err = nil
		}
		s.runErr = err
		close(s.done)
	}()

	if rows <= 0 || cols <= 0 {
		select {
		case <-s.sized:
		case <-s.done:
			return nil, &window.ResourceError{Rows: rows, Cols: cols, Wrapped: s.exitErr()}
		case <-time.After(sizeTimeout):
			s.Close()
			return nil, &window.ResourceError{Rows: rows, Cols: cols, Wrapped: errors.New("tui: terminal size unknown")}
		}
		tr, tc := s.MaxExtents()
		if rows <= 0 {
			rows = tr
		}
		if cols <= 0 {
			cols = tc
		}
	}
	if rows <= 0 || cols <= 0 {
		s.Close()
		return nil, &window.ResourceError{Rows: rows, Cols: cols, Wrapped: window.ErrTooLarge}
	}

	s.rows, s.cols = rows, cols
	s.cells = make([]cell, rows*cols)
	s.Erase()
	return s, nil
}

func (s *Surface) setExtents(rows, cols int) {
	s.mu.Lock()
	s.termRows, s.termCols = rows, cols
	s.mu.Unlock()
	s.sizedOnce.Do(func() { close(s.sized) })
}

func (s *Surface) exitErr() error {
	if s.runErr != nil {
		return s.runErr
	}
	return window.ErrClosed
}

func (s *Surface) Size() (rows, cols int) { return s.rows, s.cols }

// MaxExtents returns the last terminal size reported to the program, or the
// surface size when none has arrived.
func (s *Surface) MaxExtents() (rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.termRows == 0 && s.termCols == 0 {
		return s.rows, s.cols
	}
	return s.termRows, s.termCols
}

func (s *Surface) Erase() {
	for i := range s.cells {
		s.cells[i] = cell{r: ' '}
	}
}

func (s *Surface) Print(x, y int, text string, pair *window.ColorPair) error {
	if s.closed {
		return &window.RenderError{Op: "print", X: x, Y: y, Wrapped: window.ErrClosed}
	}
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return &window.RenderError{Op: "print", X: x, Y: y, Wrapped: window.ErrOutOfBounds}
	}
	col := x
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > s.cols {
			break
		}
		s.cells[y*s.cols+col] = cell{r: r, pair: pair}
		for i := 1; i < rw; i++ {
			s.cells[y*s.cols+col+i] = cell{}
		}
		col += rw
	}
	return nil
}

// Refresh publishes the canvas to the program.
func (s *Surface) Refresh() error {
	if s.closed {
		return &window.RenderError{Op: "refresh", Wrapped: window.ErrClosed}
	}
	select {
	case <-s.done:
		return &window.RenderError{Op: "refresh", Wrapped: s.exitErr()}
	default:
	}
	snap := make([]cell, len(s.cells))
	copy(snap, s.cells)
	s.program.Send(frameMsg{rows: s.rows, cols: s.cols, cells: snap})
	return nil
}

func (s *Surface) SetTimeout(d time.Duration) { s.timeout = d }

func (s *Surface) Timeout() time.Duration { return s.timeout }

// ReadKey waits up to the configured timeout for a key message.
func (s *Surface) ReadKey() (window.Key, error) {
	if s.closed {
		return window.Key{}, &window.RenderError{Op: "read", Wrapped: window.ErrClosed}
	}
	if s.timeout <= 0 {
		select {
		case k := <-s.keys:
			return k, nil
		default:
			return window.Key{Code: window.KeyNone}, nil
		}
	}
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()
	select {
	case k := <-s.keys:
		return k, nil
	case <-s.done:
		return window.Key{}, fmt.Errorf("tui: program exited: %w", s.exitErr())
	case <-timer.C:
		return window.Key{Code: window.KeyNone}, nil
	}
}

// Close stops the program and waits for it to restore the terminal.
func (s *Surface) Close() error {
	s.closeOnce.Do(func() {
		s.closed = true
		s.program.Quit()
		<-s.done
	})
	return s.runErr
}
