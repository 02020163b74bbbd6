package metrics

import "github.com/san-kum/pushoff/internal/match"

type Collisions struct {
	count int
}

func NewCollisions() *Collisions { return &Collisions{} }

func (c *Collisions) Name() string { return "collisions" }

func (c *Collisions) Observe(s match.Snapshot) {
	c.count += len(s.Impacts)
}

func (c *Collisions) Value() float64 { return float64(c.count) }
func (c *Collisions) Reset()         { c.count = 0 }

// PeakImpact records the hardest hit, as relative speed at contact.
type PeakImpact struct {
	peak float64
}

func NewPeakImpact() *PeakImpact { return &PeakImpact{} }

func (p *PeakImpact) Name() string { return "peak_impact" }

func (p *PeakImpact) Observe(s match.Snapshot) {
	for _, hit := range s.Impacts {
		if hit.Strength > p.peak {
			p.peak = hit.Strength
		}
	}
}

func (p *PeakImpact) Value() float64 { return p.peak }
func (p *PeakImpact) Reset()         { p.peak = 0 }
