package arena

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/san-kum/pushoff/internal/physics"
)

const (
	SpawnInterval = 90  // ticks between spawns
	Lifetime      = 240 // ticks an obstacle stays up
	MaxObstacles  = 6
	ObstacleSize  = 40.0
	SpawnMargin   = 80.0
)

type Obstacle struct {
	ID     int
	X, Y   float64
	Size   float64
	Life   int // ticks left
	Born   int
	Active bool
}

func (o *Obstacle) Box() physics.Box {
	return physics.Box{X: o.X, Y: o.Y, Size: o.Size}
}

type Options struct {
	Interval int     `yaml:"interval"`
	Lifetime int     `yaml:"lifetime"`
	Max      int     `yaml:"max"`
	Size     float64 `yaml:"size"`
	Margin   float64 `yaml:"margin"`
}

func DefaultOptions() Options {
	return Options{
		Interval: SpawnInterval,
		Lifetime: Lifetime,
		Max:      MaxObstacles,
		Size:     ObstacleSize,
		Margin:   SpawnMargin,
	}
}

// Manager owns the transient obstacles of one arena and their spawn clock.
type Manager struct {
	opts   Options
	bounds Bounds
	rng    *rand.Rand
	tick   int
	nextID int
	items  []*Obstacle
}

func NewManager(opts Options, bounds Bounds, seed int64) *Manager {
	return &Manager{
		opts:   opts,
		bounds: bounds,
		rng:    rand.New(rand.NewSource(seed)),
		items:  make([]*Obstacle, 0, opts.Max),
	}
}

func (m *Manager) Tick() int { return m.tick }
func (m *Manager) Len() int  { return len(m.items) }

// Active returns the live obstacles. The slice is owned by the manager and
// valid until the next Update or Reset.
func (m *Manager) Active() []*Obstacle { return m.items }

func (m *Manager) Solids() []physics.Box {
	boxes := make([]physics.Box, 0, len(m.items))
	for _, o := range m.items {
		if o.Active {
			boxes = append(boxes, o.Box())
		}
	}
	return boxes
}

// Reset clears every obstacle and rewinds the spawn clock. The random
// stream keeps going so consecutive matches get different layouts.
func (m *Manager) Reset() {
	m.tick = 0
	m.items = m.items[:0]
}

// Update advances the clock, ages and removes expired obstacles, then spawns
// a new one on interval ticks while under the cap.
func (m *Manager) Update() {
	m.tick++

	kept := m.items[:0]
	for _, o := range m.items {
		if !o.Active {
			continue
		}
		o.Life--
		if o.Life <= 0 {
			o.Active = false
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(m.items); i++ {
		m.items[i] = nil
	}
	m.items = kept

	if m.opts.Interval > 0 && m.tick%m.opts.Interval == 0 {
		m.spawn()
	}
}

func (m *Manager) spawn() {
	if len(m.items) >= m.opts.Max {
		return
	}
	o := &Obstacle{
		ID:     m.nextID,
		X:      m.uniform(m.opts.Margin, m.bounds.Width-m.opts.Margin),
		Y:      m.uniform(m.opts.Margin, m.bounds.Height-m.opts.Margin),
		Size:   m.opts.Size,
		Life:   m.opts.Lifetime,
		Born:   m.tick,
		Active: true,
	}
	m.nextID++
	m.items = append(m.items, o)
	log.Debug("obstacle spawned", "id", o.ID, "x", o.X, "y", o.Y, "tick", m.tick)
}

func (m *Manager) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + m.rng.Float64()*(hi-lo)
}
