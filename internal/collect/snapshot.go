package collect

import (
	"github.com/san-kum/pushoff/internal/arena"
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/physics"
)

type Snapshot struct {
	Tick    int
	State   match.State
	Score   int
	Best    int
	Record  bool // the finished run set a new best
	Bounds  arena.Bounds
	Player  physics.Player
	Coins   []Coin
	Hazards []Hazard
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		State:   g.state,
		Score:   g.score,
		Best:    g.best,
		Record:  g.record,
		Bounds:  g.opts.Bounds,
		Player:  g.player,
		Coins:   append([]Coin(nil), g.coins...),
		Hazards: append([]Hazard(nil), g.hazards...),
	}
}
