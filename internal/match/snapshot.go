package match

import (
	"github.com/san-kum/pushoff/internal/arena"
	"github.com/san-kum/pushoff/internal/physics"
)

// Snapshot is a copy of everything a sink needs to draw or record one frame.
// Mutating it never affects the match.
type Snapshot struct {
	Tick      int
	State     State
	Winner    Winner
	Wins      [2]int
	Features  Features
	Bounds    arena.Bounds
	Platform  *physics.Platform
	Players   [2]physics.Player
	Obstacles []arena.Obstacle
	Impacts   []physics.Impact // collisions resolved during this tick
}

func (s Snapshot) Separation() float64 {
	return s.Players[0].Dist(s.Players[1])
}

type Observer interface {
	OnTick(s Snapshot)
}

type ObserverFunc func(s Snapshot)

func (f ObserverFunc) OnTick(s Snapshot) { f(s) }
