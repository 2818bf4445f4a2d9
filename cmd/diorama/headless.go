package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/diorama/internal/automaton"
	"github.com/san-kum/diorama/internal/export"
	"github.com/san-kum/diorama/internal/grid"
	"github.com/san-kum/diorama/internal/metrics"
	"github.com/san-kum/diorama/internal/store"
	"github.com/san-kum/diorama/internal/viz"
)

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	t, ok := viz.GetTheme(cfg.Preview.Theme)
	if !ok {
		return fmt.Errorf("unknown theme: %s (available: %v)", cfg.Preview.Theme, viz.ThemeNames())
	}
	g, err := headlessGrid(cfg)
	if err != nil {
		return err
	}

	engine := automaton.NewSeeded(cfg.Seed)
	out := cmd.OutOrStdout()
	for i := 0; i < cfg.Preview.Frames; i++ {
		if i > 0 {
			fmt.Fprintln(out, viz.Separator(t, g.Width()))
		}
		fmt.Fprintln(out, viz.Frame(g, t))
		fmt.Fprintln(out, viz.Caption(t, "frame %d  steam %d", i, g.Count(grid.KindSteam)))
		if i == cfg.Preview.Frames-1 && svgPath != "" {
			if err := writeSVG(svgPath, export.FrameToSVG(g, t, svgScale)); err != nil {
				return err
			}
		}
		if !cfg.Static {
			engine.Step(g)
		}
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := headlessGrid(cfg)
	if err != nil {
		return err
	}

	pop := metrics.NewPopulation()
	levels := metrics.NewLevels()
	plume := metrics.NewPlume()
	runner := automaton.NewRunner(automaton.NewSeeded(cfg.Seed))
	for _, m := range []metrics.Metric{pop, levels, plume} {
		runner.AddObserver(m)
	}

	done, err := runner.Run(cmd.Context(), g, cfg.Preview.Ticks)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "grid %dx%d, %d ticks, seed %d\n\n", g.Width(), g.Height(), done, cfg.Seed)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "%s\t%.0f\n", pop.Name(), pop.Value())
	fmt.Fprintf(w, "peak_population\t%.0f\n", pop.Peak())
	fmt.Fprintf(w, "%s\t%.3f\n", levels.Name(), levels.Value())
	for lvl := grid.MaxSteam; lvl >= grid.MinSteam; lvl-- {
		fmt.Fprintf(w, "level_%d\t%d\n", lvl, levels.Count(lvl))
	}
	fmt.Fprintf(w, "%s\t%.0f\n", plume.Name(), plume.Value())
	if err := w.Flush(); err != nil {
		return err
	}

	if history := pop.History(); len(history) > 1 {
		graph := asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("steam cells per tick"),
		)
		fmt.Fprintf(out, "\n%s\n", graph)
	}
	if jsonOut != "" {
		report := &store.Report{
			Scene:      cfg.Scene,
			Steam:      cfg.Steam,
			Seed:       cfg.Seed,
			Width:      g.Width(),
			Height:     g.Height(),
			Ticks:      done,
			Timestamp:  time.Now(),
			Population: pop.History(),
			Metrics: map[string]float64{
				pop.Name():        pop.Value(),
				"peak_population": pop.Peak(),
				levels.Name():     levels.Value(),
				plume.Name():      plume.Value(),
			},
		}
		if jsonOut == "-" {
			err = store.WriteJSON(out, report)
		} else {
			err = store.ExportJSON(jsonOut, report)
		}
		if err != nil {
			return fmt.Errorf("export json: %w", err)
		}
	}
	if svgPath != "" {
		if err := writeSVG(svgPath, export.SeriesToSVG(pop.History(), 600, 200, "")); err != nil {
			return err
		}
	}
	return nil
}

const svgScale = 8

func writeSVG(path, doc string) error {
	if doc == "" {
		return fmt.Errorf("nothing to export to %s", path)
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
