package gui

import "github.com/san-kum/pushoff/internal/physics"

// ImpactFrames is how long an impact ring stays on screen.
const ImpactFrames = 20

type ring struct {
	x, y   float64
	radius float64
	age    int
}

// alpha fades linearly from 1 to 0 over the ring's life.
func (r ring) alpha() float32 {
	return 1 - float32(r.age)/ImpactFrames
}

// grow expands the ring to its full radius over the first half of its life.
func (r ring) size() float64 {
	t := float64(r.age) / (ImpactFrames / 2)
	if t > 1 {
		t = 1
	}
	return r.radius * (0.5 + 0.5*t)
}

type effects struct {
	rings []ring
}

func (e *effects) add(hit physics.Impact) {
	e.rings = append(e.rings, ring{x: hit.X, y: hit.Y, radius: hit.Radius})
}

func (e *effects) step() {
	live := e.rings[:0]
	for _, r := range e.rings {
		r.age++
		if r.age < ImpactFrames {
			live = append(live, r)
		}
	}
	e.rings = live
}

func (e *effects) clear() { e.rings = e.rings[:0] }
