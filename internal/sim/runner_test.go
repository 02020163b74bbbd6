package sim

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pushoff/internal/control"
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/metrics"
	"github.com/san-kum/pushoff/internal/physics"
)

func newMatch(f match.Features, seed int64) *match.Match {
	opts := match.DefaultOptions(f)
	opts.Seed = seed
	return match.New(opts)
}

var _ = Describe("Runner", func() {
	ctx := context.Background()

	Describe("configuration", func() {
		It("rejects a runner without a match", func() {
			_, err := New(nil, [2]control.Controller{control.NewNone(), control.NewNone()}).Run(ctx, DefaultConfig())
			Expect(err).To(MatchError(ErrNoMatch))
		})

		It("rejects a non-positive tick limit", func() {
			r := New(newMatch(match.Features{}, 1), [2]control.Controller{control.NewNone(), control.NewNone()})
			_, err := r.Run(ctx, Config{MaxTicks: 0})
			Expect(err).To(MatchError(ErrInvalidConfig))
		})

		It("rejects a missing controller", func() {
			r := New(newMatch(match.Features{}, 1), [2]control.Controller{control.NewNone(), nil})
			_, err := r.Run(ctx, DefaultConfig())
			Expect(err).To(MatchError(ErrInvalidConfig))
		})
	})

	It("calls an idle round a draw at the tick limit", func() {
		r := New(newMatch(match.Features{}, 1), [2]control.Controller{control.NewNone(), control.NewNone()})
		res, err := r.Run(ctx, Config{MaxTicks: 300, Record: true})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Draw()).To(BeTrue())
		Expect(res.Ticks).To(Equal(300))
		Expect(res.Frames).To(HaveLen(301))
		Expect(res.Frames[0].Tick).To(Equal(0))
		Expect(res.Frames[300].Tick).To(Equal(300))
	})

	It("ends the round when a player walks off the arena", func() {
		walkOff := control.NewScript(physics.Input{Left: true})
		r := New(newMatch(match.Features{}, 1), [2]control.Controller{walkOff, control.NewNone()})
		res, err := r.Run(ctx, Config{MaxTicks: 600})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Winner).To(Equal(match.P2))
		Expect(res.Ticks).To(BeNumerically("<", 600))
		Expect(res.Frames).To(BeEmpty())
		Expect(r.Match().Wins()).To(Equal([2]int{0, 1}))
	})

	It("feeds metrics from the match", func() {
		r := New(newMatch(match.Features{}, 1), [2]control.Controller{control.NewBot(false), control.NewNone()})
		hits := metrics.NewCollisions()
		r.AddMetric(hits)

		res, err := r.Run(ctx, Config{MaxTicks: 600})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Metrics).To(HaveKey("collisions"))
		Expect(hits.Value()).To(BeNumerically(">=", 1))
	})

	It("stops on cancellation with what it played", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		r := New(newMatch(match.Features{}, 1), [2]control.Controller{control.NewNone(), control.NewNone()})
		res, err := r.Run(cctx, DefaultConfig())
		Expect(err).To(MatchError(context.Canceled))
		Expect(res).NotTo(BeNil())
		Expect(res.Ticks).To(Equal(0))
	})

	It("passes snapshots on to its observers", func() {
		r := New(newMatch(match.Features{}, 1), [2]control.Controller{control.NewNone(), control.NewNone()})
		seen := 0
		r.AddObserver(match.ObserverFunc(func(match.Snapshot) { seen++ }))

		_, err := r.Run(ctx, Config{MaxTicks: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(Equal(11))
	})
})

var _ = Describe("Ensemble", func() {
	factory := func(seed int64) *Runner {
		m := newMatch(match.Features{Charge: true, Obstacles: true}, seed)
		return New(m, [2]control.Controller{control.NewBot(true), control.NewBot(true)})
	}

	It("plays every seed and tallies the outcomes", func() {
		s, err := NewEnsemble(factory, 6, 100).Run(context.Background(), Config{MaxTicks: 900})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Results).To(HaveLen(6))
		Expect(s.Wins[0] + s.Wins[1] + s.Draws).To(Equal(6))
		for i, res := range s.Results {
			Expect(res.Seed).To(Equal(int64(100 + i)))
		}
	})

	It("is deterministic for a fixed seed range", func() {
		a := NewEnsemble(factory, 4, 7)
		a.SetWorkers(1)
		b := NewEnsemble(factory, 4, 7)

		sa, err := a.Run(context.Background(), Config{MaxTicks: 900})
		Expect(err).NotTo(HaveOccurred())
		sb, err := b.Run(context.Background(), Config{MaxTicks: 900})
		Expect(err).NotTo(HaveOccurred())

		for i := range sa.Results {
			Expect(sa.Results[i].Winner).To(Equal(sb.Results[i].Winner))
			Expect(sa.Results[i].Ticks).To(Equal(sb.Results[i].Ticks))
		}
	})
})
