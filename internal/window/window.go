package window

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	DefaultTimeout = 500 * time.Millisecond
	eventBuffer    = 64
)

// Window is a rectangular region of a tcell screen. It is driven from a single
// goroutine; only the event pump runs alongside it.
type Window struct {
	screen           tcell.Screen
	rows, cols       int
	originX, originY int
	timeout          time.Duration

	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once
	closed    bool
}

// Open initializes the controlling terminal and allocates a window on it.
// A non-positive rows or cols extends the window to the terminal edge.
func Open(rows, cols, originX, originY int) (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &ResourceError{Rows: rows, Cols: cols, Wrapped: err}
	}
	if err := screen.Init(); err != nil {
		return nil, &ResourceError{Rows: rows, Cols: cols, Wrapped: err}
	}
	screen.HideCursor()
	screen.Clear()

	w, err := Create(screen, rows, cols, originX, originY)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return w, nil
}

// Create allocates a window on an already initialized screen and takes ownership
// of it: closing the window finalizes the screen.
func Create(screen tcell.Screen, rows, cols, originX, originY int) (*Window, error) {
	sw, sh := screen.Size()
	if rows <= 0 {
		rows = sh - originY
	}
	if cols <= 0 {
		cols = sw - originX
	}
	if originX < 0 || originY < 0 || rows <= 0 || cols <= 0 || originX+cols > sw || originY+rows > sh {
		return nil, &ResourceError{
			Rows:    rows,
			Cols:    cols,
			Wrapped: fmt.Errorf("%w: terminal is %dx%d", ErrTooLarge, sw, sh),
		}
	}

	w := &Window{
		screen:  screen,
		rows:    rows,
		cols:    cols,
		originX: originX,
		originY: originY,
		timeout: DefaultTimeout,
		events:  make(chan tcell.Event, eventBuffer),
		done:    make(chan struct{}),
	}
	go w.pump()
	return w, nil
}

func (w *Window) pump() {
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case w.events <- ev:
		case <-w.done:
			return
		}
	}
}

// Size returns the window dimensions.
func (w *Window) Size() (rows, cols int) { return w.rows, w.cols }

// Origin returns the terminal position of the window's top-left corner.
func (w *Window) Origin() (x, y int) { return w.originX, w.originY }

// MaxExtents returns the current terminal dimensions.
func (w *Window) MaxExtents() (rows, cols int) {
	cols, rows = w.screen.Size()
	return rows, cols
}

// Erase blanks the window in the back buffer. Nothing reaches the terminal until Refresh.
func (w *Window) Erase() {
	if w.closed {
		return
	}
	for y := 0; y < w.rows; y++ {
		for x := 0; x < w.cols; x++ {
			w.screen.SetContent(w.originX+x, w.originY+y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// Print writes text starting at column x, row y, clipping at the right edge.
// A non-nil pair colors this write only.
func (w *Window) Print(x, y int, text string, pair *ColorPair) error {
	if w.closed {
		return &RenderError{Op: "print", X: x, Y: y, Wrapped: ErrClosed}
	}
	if x < 0 || y < 0 || x >= w.cols || y >= w.rows {
		return &RenderError{Op: "print", X: x, Y: y, Wrapped: ErrOutOfBounds}
	}

	st := pair.style()
	col := x
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > w.cols {
			break
		}
		w.screen.SetContent(w.originX+col, w.originY+y, r, nil, st)
		col += rw
	}
	return nil
}

// Refresh flushes the back buffer to the terminal.
func (w *Window) Refresh() error {
	if w.closed {
		return &RenderError{Op: "refresh", Wrapped: ErrClosed}
	}
	w.screen.Show()
	return nil
}

// SetTimeout bounds every subsequent ReadKey. A non-positive d makes reads non-blocking.
func (w *Window) SetTimeout(d time.Duration) { w.timeout = d }

func (w *Window) Timeout() time.Duration { return w.timeout }

// ReadKey waits up to the configured timeout for a key press. A timeout returns a
// Key with Code KeyNone. Resize events are absorbed without extending the wait.
func (w *Window) ReadKey() (Key, error) {
	if w.closed {
		return Key{}, &RenderError{Op: "read", Wrapped: ErrClosed}
	}
	if w.timeout <= 0 {
		for {
			select {
			case ev := <-w.events:
				if k, ok := w.handle(ev); ok {
					return k, nil
				}
			default:
				return Key{Code: KeyNone}, nil
			}
		}
	}

	timer := time.NewTimer(w.timeout)
	defer timer.Stop()
	for {
		select {
		case ev := <-w.events:
			if k, ok := w.handle(ev); ok {
				return k, nil
			}
		case <-timer.C:
			return Key{Code: KeyNone}, nil
		}
	}
}

func (w *Window) handle(ev tcell.Event) (Key, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev), true
	case *tcell.EventResize:
		w.screen.Sync()
	}
	return Key{}, false
}

var keyTable = map[tcell.Key]KeyCode{
	tcell.KeyUp:    KeyUp,
	tcell.KeyDown:  KeyDown,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyRight: KeyRight,
	tcell.KeyCtrlC: KeyInterrupt,
}

func translateKey(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return RuneKey(ev.Rune())
	}
	if code, ok := keyTable[ev.Key()]; ok {
		return Key{Code: code}
	}
	return Key{Code: KeyOther}
}

// Close restores the terminal. It is safe to call more than once.
func (w *Window) Close() error {
	w.closeOnce.Do(func() {
		w.closed = true
		close(w.done)
		w.screen.Fini()
	})
	return nil
}
