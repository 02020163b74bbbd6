// Package collect is the single-player collect-and-dodge game. It reuses the
// push-off integrator and state machine with plain circle-distance checks.
package collect

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/san-kum/pushoff/internal/arena"
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/physics"
)

const (
	CoinRadius     = 10.0
	HazardRadius   = 15.0
	CoinInterval   = 45
	MaxCoins       = 5
	HazardInterval = 120
	MaxHazards     = 4
	HazardSpeed    = 3.5
	SpawnMargin    = 40.0
	SafeRadius     = 120.0 // hazards never spawn this close to the player
	spawnAttempts  = 8
)

type Coin struct {
	X, Y float64
}

type Hazard struct {
	X, Y   float64
	VX, VY float64
}

// BestScoreSink persists the best score between sessions. BestScore is read
// once when a game is created; SaveBestScore is called on each new record.
type BestScoreSink interface {
	BestScore() int
	SaveBestScore(score int) error
}

type Options struct {
	Tuning physics.Tuning
	Bounds arena.Bounds
	Seed   int64
}

func DefaultOptions() Options {
	return Options{
		Tuning: physics.DefaultTuning(),
		Bounds: arena.DefaultBounds(),
	}
}

type Game struct {
	opts    Options
	sink    BestScoreSink
	rng     *rand.Rand
	state   match.State
	tick    int
	player  physics.Player
	coins   []Coin
	hazards []Hazard
	score   int
	best    int
	record  bool
}

func New(opts Options, sink BestScoreSink) *Game {
	g := &Game{
		opts:  opts,
		sink:  sink,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		state: match.Start,
	}
	if sink != nil {
		g.best = sink.BestScore()
	}
	g.reset()
	return g
}

func (g *Game) State() match.State     { return g.state }
func (g *Game) Score() int             { return g.score }
func (g *Game) Best() int              { return g.best }
func (g *Game) Player() physics.Player { return g.player }
func (g *Game) Options() Options       { return g.opts }

func (g *Game) Start() bool {
	if g.state == match.Playing {
		return false
	}
	g.reset()
	g.state = match.Playing
	return true
}

func (g *Game) reset() {
	cx, cy := g.opts.Bounds.Center()
	g.player = physics.NewPlayer(cx, cy, 1)
	g.coins = g.coins[:0]
	g.hazards = g.hazards[:0]
	g.score = 0
	g.tick = 0
	g.record = false
}

// Tick advances the game by one frame and reports whether it ended the run.
func (g *Game) Tick(in physics.Input) bool {
	if g.state != match.Playing {
		return false
	}
	g.tick++

	physics.Integrate(&g.player, in, g.opts.Tuning, physics.Env{})
	g.clampPlayer()

	g.moveHazards()
	g.spawn()

	r := g.opts.Tuning.Radius()
	kept := g.coins[:0]
	for _, c := range g.coins {
		if touching(g.player.X, g.player.Y, r, c.X, c.Y, CoinRadius) {
			g.score++
			continue
		}
		kept = append(kept, c)
	}
	g.coins = kept

	for _, h := range g.hazards {
		if touching(g.player.X, g.player.Y, r, h.X, h.Y, HazardRadius) {
			g.end()
			return true
		}
	}
	return false
}

func (g *Game) end() {
	g.state = match.GameOver
	if g.score <= g.best {
		return
	}
	g.best = g.score
	g.record = true
	if g.sink == nil {
		return
	}
	if err := g.sink.SaveBestScore(g.score); err != nil {
		log.Warn("could not save best score", "score", g.score, "err", err)
	}
}

func (g *Game) clampPlayer() {
	r := g.opts.Tuning.Radius()
	b := g.opts.Bounds
	if g.player.X < r {
		g.player.X, g.player.VX = r, 0
	} else if g.player.X > b.Width-r {
		g.player.X, g.player.VX = b.Width-r, 0
	}
	if g.player.Y < r {
		g.player.Y, g.player.VY = r, 0
	} else if g.player.Y > b.Height-r {
		g.player.Y, g.player.VY = b.Height-r, 0
	}
}

func (g *Game) moveHazards() {
	b := g.opts.Bounds
	for i := range g.hazards {
		h := &g.hazards[i]
		h.X += h.VX
		h.Y += h.VY
		if h.X < HazardRadius || h.X > b.Width-HazardRadius {
			h.VX = -h.VX
			h.X = clamp(h.X, HazardRadius, b.Width-HazardRadius)
		}
		if h.Y < HazardRadius || h.Y > b.Height-HazardRadius {
			h.VY = -h.VY
			h.Y = clamp(h.Y, HazardRadius, b.Height-HazardRadius)
		}
	}
}

func (g *Game) spawn() {
	if g.tick%CoinInterval == 0 && len(g.coins) < MaxCoins {
		x, y := g.randomPoint()
		g.coins = append(g.coins, Coin{X: x, Y: y})
	}
	if g.tick%HazardInterval == 0 && len(g.hazards) < MaxHazards {
		for i := 0; i < spawnAttempts; i++ {
			x, y := g.randomPoint()
			if math.Hypot(x-g.player.X, y-g.player.Y) < SafeRadius {
				continue
			}
			angle := g.rng.Float64() * 2 * math.Pi
			g.hazards = append(g.hazards, Hazard{
				X: x, Y: y,
				VX: math.Cos(angle) * HazardSpeed,
				VY: math.Sin(angle) * HazardSpeed,
			})
			break
		}
	}
}

func (g *Game) randomPoint() (float64, float64) {
	b := g.opts.Bounds
	x := SpawnMargin + g.rng.Float64()*(b.Width-2*SpawnMargin)
	y := SpawnMargin + g.rng.Float64()*(b.Height-2*SpawnMargin)
	return x, y
}

func touching(x1, y1, r1, x2, y2, r2 float64) bool {
	return math.Hypot(x2-x1, y2-y1) < r1+r2
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
