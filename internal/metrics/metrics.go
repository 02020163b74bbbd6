package metrics

import "github.com/san-kum/pushoff/internal/match"

type Metric interface {
	Name() string
	Observe(s match.Snapshot)
	Value() float64
	Reset()
}

// Observer adapts a set of metrics to a match observer.
type Observer []Metric

func (o Observer) OnTick(s match.Snapshot) {
	for _, m := range o {
		m.Observe(s)
	}
}

func Defaults() []Metric {
	return []Metric{
		NewCollisions(),
		NewPeakImpact(),
		NewSeparation(),
	}
}
