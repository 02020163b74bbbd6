package sim

import (
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/physics"
)

const TickRate = 60

type Config struct {
	MaxTicks int  // a round still running after this many ticks is a draw
	Record   bool // keep one Frame per tick in the result
}

func DefaultConfig() Config {
	return Config{
		MaxTicks: 2 * 60 * TickRate,
		Record:   true,
	}
}

type Frame struct {
	Tick      int
	Players   [2]physics.Player
	Obstacles int
	Impact    float64 // strength of a collision resolved this tick, 0 if none
}

type Result struct {
	Seed    int64
	Winner  match.Winner
	Ticks   int
	Frames  []Frame
	Metrics map[string]float64
}

// Draw reports whether the round hit the tick limit without a winner.
func (r *Result) Draw() bool { return r.Winner == match.None }
