package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/pushoff/internal/control"
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/optim"
	"github.com/san-kum/pushoff/internal/sim"
)

var (
	tuneKp = []float64{0.02, 0.05, 0.1, 0.2}
	tuneKd = []float64{0, 0.2, 0.4, 0.8}
)

// tuneBot plays the tuned bot as player one against an untouched bot and
// ranks each gain setting by player one's win rate.
func tuneBot(cmd *cobra.Command, args []string) error {
	cfg, kinds, err := headless(cmd, args)
	if err != nil {
		return err
	}
	if rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", rounds)
	}
	if _, err := newRunner(cfg, kinds, cfg.Seed); err != nil {
		return err
	}

	c := simConfig()
	c.Record = false

	eval := func(ctx context.Context, params map[string]float64) (float64, error) {
		factory := func(s int64) *sim.Runner {
			r, _ := newRunner(cfg, kinds, s)
			if bot, ok := r.Controllers()[0].(*control.Bot); ok {
				bot.SetGains(params["kp"], params["kd"])
			}
			return r
		}
		ens := sim.NewEnsemble(factory, rounds, cfg.Seed)
		ens.SetWorkers(workers)
		summary, err := ens.Run(ctx, c)
		if err != nil {
			return 0, err
		}
		return float64(summary.Wins[match.P1.Index()]) / float64(rounds), nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("tuning %s bot on %s against %s, %d rounds per setting\n\n", kinds[0], cfg.Board(), kinds[1], rounds)
	trials, err := optim.NewGridSearch([]string{"kp", "kd"}, [][]float64{tuneKp, tuneKd}).Search(ctx, eval)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KP\tKD\tWIN RATE")
	for i, t := range trials {
		if i == topN {
			break
		}
		fmt.Fprintf(w, "%.3f\t%.3f\t%.0f%%\n", t.Params["kp"], t.Params["kd"], t.Score*100)
	}
	return w.Flush()
}
