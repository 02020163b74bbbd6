package metrics

import "github.com/san-kum/pushoff/internal/match"

// Separation is the mean distance between the players over the ticks played.
type Separation struct {
	samples int
	total   float64
}

func NewSeparation() *Separation { return &Separation{} }

func (s *Separation) Name() string { return "separation" }

func (s *Separation) Observe(snap match.Snapshot) {
	if snap.State == match.Start {
		return
	}
	s.total += snap.Separation()
	s.samples++
}

func (s *Separation) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.total / float64(s.samples)
}

func (s *Separation) Reset() {
	s.samples = 0
	s.total = 0
}
