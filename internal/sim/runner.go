package sim

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/san-kum/pushoff/internal/control"
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/metrics"
)

type resetter interface {
	Reset()
}

// Runner plays rounds of a match headlessly, asking controllers for input
// instead of a keyboard.
type Runner struct {
	match       *match.Match
	controllers [2]control.Controller
	metrics     []metrics.Metric
	observers   []match.Observer
	seed        int64

	recording bool
	frames    []Frame
}

func New(m *match.Match, controllers [2]control.Controller) *Runner {
	r := &Runner{
		match:       m,
		controllers: controllers,
		metrics:     make([]metrics.Metric, 0),
		observers:   make([]match.Observer, 0),
	}
	if m != nil {
		r.seed = m.Options().Seed
		m.AddObserver(r)
	}
	return r
}

func (r *Runner) AddMetric(m metrics.Metric)         { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o match.Observer)       { r.observers = append(r.observers, o) }
func (r *Runner) Match() *match.Match                { return r.match }
func (r *Runner) Controllers() [2]control.Controller { return r.controllers }

// OnTick fans a snapshot out to metrics and observers and records a frame.
func (r *Runner) OnTick(s match.Snapshot) {
	for _, m := range r.metrics {
		m.Observe(s)
	}
	for _, o := range r.observers {
		o.OnTick(s)
	}
	if !r.recording {
		return
	}
	f := Frame{Tick: s.Tick, Players: s.Players, Obstacles: len(s.Obstacles)}
	for _, hit := range s.Impacts {
		f.Impact = hit.Strength
	}
	r.frames = append(r.frames, f)
}

func (r *Runner) validate(cfg Config) error {
	if r.match == nil {
		return ErrNoMatch
	}
	if cfg.MaxTicks <= 0 {
		return fmt.Errorf("%w: max ticks must be positive, got %d", ErrInvalidConfig, cfg.MaxTicks)
	}
	for i, c := range r.controllers {
		if c == nil {
			return fmt.Errorf("%w: no controller for player %d", ErrInvalidConfig, i+1)
		}
	}
	return nil
}

// Run plays one round to its end or to cfg.MaxTicks. On cancellation it
// returns what was played so far together with the context error.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validate(cfg); err != nil {
		return nil, err
	}

	for _, m := range r.metrics {
		m.Reset()
	}
	for _, c := range r.controllers {
		if rs, ok := c.(resetter); ok {
			rs.Reset()
		}
	}

	r.recording = cfg.Record
	r.frames = nil
	if cfg.Record {
		r.frames = make([]Frame, 0, min(cfg.MaxTicks, 4096)+1)
	}
	defer func() { r.recording = false }()

	if r.match.State() != match.Playing {
		r.match.Start()
	}

	var runErr error
	for r.match.CurrentTick() < cfg.MaxTicks {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		in := control.Pair(r.controllers, r.match.Players(), r.match.CurrentTick()+1)
		if r.match.Tick(in) {
			break
		}
	}

	result := &Result{
		Seed:    r.seed,
		Winner:  r.match.Winner(),
		Ticks:   r.match.CurrentTick(),
		Frames:  r.frames,
		Metrics: make(map[string]float64, len(r.metrics)),
	}
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	log.Debug("round finished", "seed", r.seed, "winner", result.Winner, "ticks", result.Ticks)
	return result, runErr
}
