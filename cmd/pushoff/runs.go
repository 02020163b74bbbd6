package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/pushoff/internal/config"
	"github.com/san-kum/pushoff/internal/control"
	"github.com/san-kum/pushoff/internal/export"
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/metrics"
	"github.com/san-kum/pushoff/internal/sim"
	"github.com/san-kum/pushoff/internal/storage"
)

// botKinds returns the controller kinds for a headless round. Keyboard
// slots fall back to the command's bot flags.
func botKinds(cfg *config.Config) ([2]string, error) {
	kinds := [2]string{cfg.Players.P1, cfg.Players.P2}
	defaults := [2]string{p1Kind, p2Kind}
	for i, k := range kinds {
		if k == config.PlayerKeys {
			kinds[i] = defaults[i]
		}
		if kinds[i] == config.PlayerKeys {
			return kinds, fmt.Errorf("player %d needs a bot in a headless round", i+1)
		}
	}
	return kinds, nil
}

func newRunner(cfg *config.Config, kinds [2]string, seed int64) (*sim.Runner, error) {
	opts := cfg.MatchOptions()
	opts.Seed = seed

	var controllers [2]control.Controller
	for i, kind := range kinds {
		c, err := newController(kind, cfg.Features.Charge)
		if err != nil {
			return nil, err
		}
		controllers[i] = c
	}

	r := sim.New(match.New(opts), controllers)
	for _, m := range metrics.Defaults() {
		r.AddMetric(m)
	}
	return r, nil
}

func simConfig() sim.Config {
	c := sim.DefaultConfig()
	if maxTicks > 0 {
		c.MaxTicks = maxTicks
	}
	return c
}

func headless(cmd *cobra.Command, args []string) (*config.Config, [2]string, error) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, [2]string{}, err
	}
	if cfg.Mode != config.ModePushoff {
		return nil, [2]string{}, fmt.Errorf("preset %q has no headless mode", cfg.Board())
	}
	kinds, err := botKinds(cfg)
	return cfg, kinds, err
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, kinds, err := headless(cmd, args)
	if err != nil {
		return err
	}
	r, err := newRunner(cfg, kinds, cfg.Seed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, err := r.Run(ctx, simConfig())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("preset:  %s\n", cfg.Board())
	fmt.Printf("players: %s vs %s\n", kinds[0], kinds[1])
	fmt.Printf("seed:    %d\n", result.Seed)
	if result.Draw() {
		fmt.Printf("result:  draw after %d ticks\n", result.Ticks)
	} else {
		fmt.Printf("result:  %s wins at tick %d (%.1fs game time)\n", result.Winner, result.Ticks, float64(result.Ticks)/sim.TickRate)
	}
	fmt.Printf("elapsed: %v\n\n", elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range metrics.Defaults() {
		fmt.Fprintf(w, "%s\t%.3f\n", m.Name(), result.Metrics[m.Name()])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if noSave {
		return nil
	}
	st := storage.New(cfg.RunsDir())
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Board(), kinds, result)
	if err != nil {
		return err
	}
	log.Info("run saved", "id", runID)
	fmt.Printf("\nsaved: %s\n", runID)
	return nil
}

func benchRounds(cmd *cobra.Command, args []string) error {
	cfg, kinds, err := headless(cmd, args)
	if err != nil {
		return err
	}
	if rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", rounds)
	}
	// fail on bad controller kinds before spawning workers
	if _, err := newRunner(cfg, kinds, cfg.Seed); err != nil {
		return err
	}

	factory := func(s int64) *sim.Runner {
		r, _ := newRunner(cfg, kinds, s)
		return r
	}
	ens := sim.NewEnsemble(factory, rounds, cfg.Seed)
	ens.SetWorkers(workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := simConfig()
	c.Record = false
	start := time.Now()
	summary, err := ens.Run(ctx, c)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	ticks := 0
	var collisions, length float64
	for _, r := range summary.Results {
		ticks += r.Ticks
		collisions += r.Metrics["collisions"]
	}
	n := float64(len(summary.Results))
	length = float64(ticks) / n / sim.TickRate

	fmt.Printf("benchmarking %s: %s vs %s, %d rounds from seed %d\n\n", cfg.Board(), kinds[0], kinds[1], rounds, cfg.Seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "P1 WINS\tP2 WINS\tDRAWS\tAVG ROUND\tAVG HITS\tTICKS/SEC")
	fmt.Fprintf(w, "%d\t%d\t%d\t%.1fs\t%.1f\t%.0f\n",
		summary.Wins[0], summary.Wins[1], summary.Draws,
		length, collisions/n, float64(ticks)/elapsed.Seconds())
	return w.Flush()
}

func runStore(cmd *cobra.Command) (*storage.Store, *config.Config, error) {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return nil, nil, err
	}
	return storage.New(cfg.RunsDir()), cfg, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, _, err := runStore(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tPLAYERS\tWINNER\tTICKS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s v %s\t%s\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Controllers[0], run.Controllers[1],
			run.Winner,
			run.Ticks,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st, _, err := runStore(cmd)
	if err != nil {
		return err
	}
	runID := args[0]
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s  winner: %s\n", meta.Preset, meta.Winner)
	fmt.Printf("frames: %d\n\n", len(frames))

	sep := make([]float64, len(frames))
	xs := [2][]float64{make([]float64, len(frames)), make([]float64, len(frames))}
	speed := [2][]float64{make([]float64, len(frames)), make([]float64, len(frames))}
	impact := make([]float64, len(frames))
	for i, f := range frames {
		sep[i] = f.Players[0].Dist(f.Players[1])
		for p := range f.Players {
			xs[p][i] = f.Players[p].X
			speed[p][i] = f.Players[p].Speed()
		}
		impact[i] = f.Impact
	}

	plots := []struct {
		caption string
		series  [][]float64
	}{
		{"separation", [][]float64{sep}},
		{"x position (p1 cyan, p2 magenta)", xs[:]},
		{"speed (p1 cyan, p2 magenta)", speed[:]},
		{"impact strength", [][]float64{impact}},
	}
	for _, p := range plots {
		graph := asciigraph.PlotMany(p.series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
			asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, cfg, err := runStore(cmd)
	if err != nil {
		return err
	}
	runID := args[0]
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if svgPath != "" {
		opts := export.DefaultSVGOptions()
		opts.Bounds = cfg.Arena
		opts.Radius = cfg.Tuning.Radius()
		if err := export.SaveSVG(svgPath, frames, opts); err != nil {
			return err
		}
		fmt.Printf("drew %s to %s\n", runID, svgPath)
		if outPath == "" {
			return nil
		}
	}

	winner := match.None
	switch meta.Winner {
	case match.P1.String():
		winner = match.P1
	case match.P2.String():
		winner = match.P2
	}
	result := &sim.Result{
		Seed:    meta.Seed,
		Winner:  winner,
		Ticks:   meta.Ticks,
		Frames:  frames,
		Metrics: meta.Metrics,
	}
	data := storage.NewExportData(meta.Preset, meta.Controllers, result)

	if outPath == "" {
		return storage.WriteJSON(os.Stdout, data)
	}
	if err := storage.ExportJSON(outPath, data); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", runID, outPath)
	return nil
}
