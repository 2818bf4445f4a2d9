package loop_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/diorama/internal/automaton"
	"github.com/san-kum/diorama/internal/grid"
	"github.com/san-kum/diorama/internal/input"
	"github.com/san-kum/diorama/internal/loop"
	"github.com/san-kum/diorama/internal/window"
)

type printed struct {
	x, y int
	text string
	pair *window.ColorPair
}

type fakeSurface struct {
	rows, cols int
	erases     int
	refreshes  int
	prints     []printed
	failPrint  error
	log        *[]string
}

func (s *fakeSurface) Erase() {
	s.erases++
	s.prints = nil
	s.record("erase")
}

func (s *fakeSurface) Print(x, y int, text string, pair *window.ColorPair) error {
	if s.failPrint != nil {
		return s.failPrint
	}
	s.prints = append(s.prints, printed{x, y, text, pair})
	return nil
}

func (s *fakeSurface) Refresh() error {
	s.refreshes++
	s.record("refresh")
	return nil
}

func (s *fakeSurface) record(call string) {
	if s.log != nil {
		*s.log = append(*s.log, call)
	}
}

func (s *fakeSurface) Size() (int, int) { return s.rows, s.cols }

func (s *fakeSurface) textAt(x, y int) string {
	for _, p := range s.prints {
		if p.x == x && p.y == y {
			return p.text
		}
	}
	return ""
}

type scriptedPoller struct {
	cmds  []input.Command
	polls int
	calls *[]string
}

func (p *scriptedPoller) Poll() input.Command {
	i := p.polls
	p.polls++
	if p.calls != nil {
		*p.calls = append(*p.calls, "poll")
	}
	if i < len(p.cmds) {
		return p.cmds[i]
	}
	return input.Quit
}

type countingStepper struct {
	steps int
	calls *[]string
}

func (c *countingStepper) Step(*grid.Grid) {
	c.steps++
	if c.calls != nil {
		*c.calls = append(*c.calls, "step")
	}
}

func sceneGrid(w, h int, text string) *grid.Grid {
	g, err := grid.New(w, h)
	Expect(err).NotTo(HaveOccurred())
	Expect(grid.ReadScene(g, strings.NewReader(text))).To(Succeed())
	return g
}

var _ = Describe("Loop", func() {
	var (
		surface *fakeSurface
		g       *grid.Grid
	)

	BeforeEach(func() {
		surface = &fakeSurface{rows: 10, cols: 20}
		g = sceneGrid(6, 5, "AB\nCD")
	})

	It("draws one frame and exits when the first poll is quit", func() {
		poller := &scriptedPoller{cmds: []input.Command{input.Quit}}
		l := loop.New(surface, g, &countingStepper{}, poller, loop.DefaultOptions())

		Expect(l.Run(context.Background())).To(Succeed())
		Expect(l.Frames()).To(Equal(1))
		Expect(surface.erases).To(Equal(1))
		Expect(surface.refreshes).To(Equal(1))
	})

	It("runs erase, refresh, step and poll in order", func() {
		var calls []string
		surface.log = &calls
		poller := &scriptedPoller{cmds: []input.Command{input.Continue, input.Quit}, calls: &calls}
		stepper := &countingStepper{calls: &calls}
		l := loop.New(surface, g, stepper, poller, loop.DefaultOptions())

		Expect(l.Run(context.Background())).To(Succeed())
		Expect(calls).To(Equal([]string{"erase", "refresh", "step", "poll", "erase", "refresh", "step", "poll"}))
	})

	It("prints scene characters at their grid positions", func() {
		l := loop.New(surface, g, nil, &scriptedPoller{}, loop.DefaultOptions())
		Expect(l.Frame()).To(Succeed())

		Expect(surface.textAt(0, 0)).To(Equal("A"))
		Expect(surface.textAt(1, 0)).To(Equal("B"))
		Expect(surface.textAt(0, 1)).To(Equal("C"))
		Expect(surface.textAt(1, 1)).To(Equal("D"))
	})

	It("skips the cell covered by a wide glyph", func() {
		wide := sceneGrid(6, 5, "☕ab")
		l := loop.New(surface, wide, nil, &scriptedPoller{}, loop.DefaultOptions())
		Expect(l.Frame()).To(Succeed())

		Expect(surface.textAt(0, 0)).To(Equal("☕"))
		Expect(surface.textAt(1, 0)).To(BeEmpty())
		Expect(surface.textAt(2, 0)).To(Equal("b"))
	})

	It("prints the help line below the grid with its color pair", func() {
		opts := loop.DefaultOptions()
		opts.HelpPair = window.NewColorPair(window.Cyan, window.Black)
		l := loop.New(surface, g, nil, &scriptedPoller{}, opts)
		Expect(l.Frame()).To(Succeed())

		Expect(surface.textAt(0, 5)).To(Equal(loop.HelpLine))
		last := surface.prints[len(surface.prints)-1]
		Expect(last.pair).To(Equal(opts.HelpPair))
	})

	It("prefixes the help line with the status text", func() {
		opts := loop.DefaultOptions()
		opts.Status = func() string { return "timeout 500ms" }
		l := loop.New(surface, g, nil, &scriptedPoller{}, opts)
		Expect(l.Frame()).To(Succeed())

		Expect(surface.textAt(0, 5)).To(Equal("timeout 500ms | " + loop.HelpLine))
	})

	It("skips the help line when the grid fills the surface", func() {
		surface.rows = 5
		l := loop.New(surface, g, nil, &scriptedPoller{}, loop.DefaultOptions())
		Expect(l.Frame()).To(Succeed())

		for _, p := range surface.prints {
			Expect(p.y).To(BeNumerically("<", 5))
		}
	})

	It("leaves the grid untouched in static mode", func() {
		grid.Seed(g, []grid.Point{{X: 2, Y: 3}})
		before := g.Clone()
		poller := &scriptedPoller{cmds: []input.Command{input.Continue, input.Continue, input.Continue, input.Quit}}
		opts := loop.DefaultOptions()
		opts.Automaton = false

		l := loop.New(surface, g, automaton.NewSeeded(1), poller, opts)
		Expect(l.Run(context.Background())).To(Succeed())
		Expect(l.Frames()).To(Equal(4))
		Expect(g.Equal(before)).To(BeTrue())
	})

	It("steps the automaton once per frame", func() {
		stepper := &countingStepper{}
		poller := &scriptedPoller{cmds: []input.Command{input.Continue, input.Up, input.Down, input.Quit}}
		l := loop.New(surface, g, stepper, poller, loop.DefaultOptions())

		Expect(l.Run(context.Background())).To(Succeed())
		Expect(stepper.steps).To(Equal(4))
	})

	It("aborts with the render error", func() {
		renderErr := &window.RenderError{Op: "print", Wrapped: window.ErrOutOfBounds}
		surface.failPrint = renderErr
		poller := &scriptedPoller{}
		l := loop.New(surface, g, nil, poller, loop.DefaultOptions())

		err := l.Run(context.Background())
		var rerr *window.RenderError
		Expect(errors.As(err, &rerr)).To(BeTrue())
		Expect(poller.polls).To(Equal(0))
		Expect(l.Frames()).To(Equal(0))
	})

	It("returns without drawing when the context is already done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		l := loop.New(surface, g, nil, &scriptedPoller{}, loop.DefaultOptions())

		Expect(l.Run(ctx)).To(Succeed())
		Expect(surface.erases).To(Equal(0))
	})

	Context("on a tcell window", func() {
		var (
			screen tcell.SimulationScreen
			win    *window.Window
		)

		BeforeEach(func() {
			screen = tcell.NewSimulationScreen("UTF-8")
			Expect(screen.Init()).To(Succeed())
			screen.SetSize(40, 12)
			var err error
			win, err = window.Create(screen, 0, 0, 0, 0)
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			Expect(win.Close()).To(Succeed())
		})

		It("renders steam and quits on q", func() {
			grid.Seed(g, []grid.Point{{X: 3, Y: 3}})
			ctrl := input.NewController(win, input.NewPlaybackState(200, input.DefaultDrawChar), nil)
			opts := loop.DefaultOptions()
			opts.Automaton = false
			l := loop.New(win, g, nil, ctrl, opts)

			screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
			Expect(l.Run(context.Background())).To(Succeed())

			mainc, _, _, _ := screen.GetContent(3, 3)
			Expect(mainc).To(Equal('█'))
			mainc, _, _, _ = screen.GetContent(0, 0)
			Expect(mainc).To(Equal('A'))
			Expect(win.Timeout()).To(Equal(200 * time.Millisecond))
		})

		It("keeps drawing frames while reads time out", func() {
			ctrl := input.NewController(win, input.NewPlaybackState(10, input.DefaultDrawChar), nil)
			l := loop.New(win, g, automaton.NewSeeded(3), ctrl, loop.DefaultOptions())

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			Expect(l.Run(ctx)).To(Succeed())
			Expect(l.Frames()).To(BeNumerically(">", 1))
		})
	})
})
