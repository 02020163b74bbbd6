package match

import (
	"github.com/charmbracelet/log"
	"github.com/san-kum/pushoff/internal/arena"
	"github.com/san-kum/pushoff/internal/physics"
)

const (
	SpawnOffset    = 100.0 // horizontal distance of each spawn from the centre
	PlatformWidth  = 400.0
	PlatformHeight = 30.0
)

type Features struct {
	Charge    bool `yaml:"charge"`
	Obstacles bool `yaml:"obstacles"`
	Platform  bool `yaml:"platform"`
}

type Options struct {
	Features    Features
	Tuning      physics.Tuning
	Bounds      arena.Bounds
	Obstacles   arena.Options
	Platform    physics.Platform // only W and H are read; it is centred in Bounds
	SpawnOffset float64
	Seed        int64
}

func DefaultOptions(f Features) Options {
	return Options{
		Features:    f,
		Tuning:      physics.DefaultTuning(),
		Bounds:      arena.DefaultBounds(),
		Obstacles:   arena.DefaultOptions(),
		Platform:    physics.Platform{W: PlatformWidth, H: PlatformHeight},
		SpawnOffset: SpawnOffset,
	}
}

type Match struct {
	opts      Options
	state     State
	winner    Winner
	wins      [2]int
	tick      int
	players   [2]physics.Player
	collider  *physics.Collider
	obstacles *arena.Manager
	platform  *physics.Platform
	impacts   []physics.Impact
	observers []Observer
}

func New(opts Options) *Match {
	m := &Match{
		opts:      opts,
		state:     Start,
		collider:  physics.NewCollider(opts.Tuning.CollisionCooldown),
		obstacles: arena.NewManager(opts.Obstacles, opts.Bounds, opts.Seed),
		observers: make([]Observer, 0),
	}
	if opts.Features.Platform {
		pl := opts.Bounds.Platform(opts.Platform.W, opts.Platform.H)
		m.platform = &pl
	}
	m.reset()
	return m
}

func (m *Match) AddObserver(o Observer) { m.observers = append(m.observers, o) }

func (m *Match) State() State       { return m.state }
func (m *Match) Winner() Winner     { return m.winner }
func (m *Match) Wins() [2]int       { return m.wins }
func (m *Match) Features() Features { return m.opts.Features }
func (m *Match) Options() Options   { return m.opts }
func (m *Match) CurrentTick() int   { return m.tick }

func (m *Match) Players() [2]physics.Player { return m.players }

// Start begins a new round from Start or GameOver. It is ignored while a
// round is already being played.
func (m *Match) Start() bool {
	if m.state == Playing {
		return false
	}
	m.reset()
	m.state = Playing
	log.Debug("match started", "wins", m.wins)
	m.notify()
	return true
}

func (m *Match) reset() {
	cx, cy := m.opts.Bounds.Center()
	m.players[0] = physics.NewPlayer(cx-m.opts.SpawnOffset, cy, 1)
	m.players[1] = physics.NewPlayer(cx+m.opts.SpawnOffset, cy, -1)
	m.winner = None
	m.tick = 0
	m.impacts = m.impacts[:0]
	m.collider.Reset()
	m.obstacles.Reset()
}

// Tick advances a round by one frame and reports whether it ended the round.
// Outside Playing it does nothing.
func (m *Match) Tick(in [2]physics.Input) bool {
	if m.state != Playing {
		return false
	}
	m.tick++
	m.impacts = m.impacts[:0]

	t := m.opts.Tuning
	env := physics.Env{Charge: m.opts.Features.Charge, Platform: m.platform}
	if m.opts.Features.Obstacles {
		env.Solids = m.obstacles.Solids()
	}

	for i := range m.players {
		physics.Integrate(&m.players[i], in[i], t, env)
	}

	if hit, ok := m.collider.Resolve(&m.players[0], &m.players[1], t, m.opts.Features.Charge); ok {
		m.impacts = append(m.impacts, hit)
	}

	if m.opts.Features.Obstacles {
		m.obstacles.Update()
	}

	ended := m.checkBounds()
	m.notify()
	return ended
}

// checkBounds ends the round when a player has left the arena. Player one is
// checked first, so if both leave on the same tick player two wins.
func (m *Match) checkBounds() bool {
	b := m.opts.Bounds
	switch {
	case b.Outside(m.players[0].X, m.players[0].Y):
		m.end(P2)
	case b.Outside(m.players[1].X, m.players[1].Y):
		m.end(P1)
	default:
		return false
	}
	return true
}

func (m *Match) end(w Winner) {
	m.state = GameOver
	m.winner = w
	m.wins[w.Index()]++
	log.Debug("match over", "winner", w, "tick", m.tick, "wins", m.wins)
}

func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     m.tick,
		State:    m.state,
		Winner:   m.winner,
		Wins:     m.wins,
		Features: m.opts.Features,
		Bounds:   m.opts.Bounds,
		Players:  m.players,
	}
	if m.platform != nil {
		pl := *m.platform
		s.Platform = &pl
	}
	if len(m.impacts) > 0 {
		s.Impacts = append([]physics.Impact(nil), m.impacts...)
	}
	if active := m.obstacles.Active(); len(active) > 0 {
		s.Obstacles = make([]arena.Obstacle, len(active))
		for i, o := range active {
			s.Obstacles[i] = *o
		}
	}
	return s
}

func (m *Match) notify() {
	if len(m.observers) == 0 {
		return
	}
	s := m.Snapshot()
	for _, o := range m.observers {
		o.OnTick(s)
	}
}
