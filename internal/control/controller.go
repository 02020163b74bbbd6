package control

import "github.com/san-kum/pushoff/internal/physics"

type Controller interface {
	Compute(self, opp physics.Player, tick int) physics.Input
}

// Pair asks both controllers for this tick's input, each seeing its own
// player first.
func Pair(c [2]Controller, p [2]physics.Player, tick int) [2]physics.Input {
	return [2]physics.Input{
		c[0].Compute(p[0], p[1], tick),
		c[1].Compute(p[1], p[0], tick),
	}
}

type None struct{}

func NewNone() *None { return &None{} }

func (n *None) Compute(self, opp physics.Player, tick int) physics.Input {
	return physics.Input{}
}
