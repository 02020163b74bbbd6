package control

import "github.com/san-kum/pushoff/internal/physics"

// Keys passes the most recent keyboard snapshot through to the player.
type Keys struct {
	in physics.Input
}

func NewKeys() *Keys {
	return &Keys{}
}

// Set replaces the held-key snapshot used from the next tick on.
func (k *Keys) Set(in physics.Input) {
	k.in = in
}

func (k *Keys) Compute(self, opp physics.Player, tick int) physics.Input {
	return k.in
}

// Script replays a fixed input sequence; tick 1 reads the first entry and
// the last entry repeats once the sequence runs out.
type Script struct {
	Inputs []physics.Input
}

func NewScript(inputs ...physics.Input) *Script {
	return &Script{Inputs: inputs}
}

func (s *Script) Compute(self, opp physics.Player, tick int) physics.Input {
	if len(s.Inputs) == 0 {
		return physics.Input{}
	}
	i := tick - 1
	if i < 0 {
		i = 0
	}
	if i >= len(s.Inputs) {
		i = len(s.Inputs) - 1
	}
	return s.Inputs[i]
}
