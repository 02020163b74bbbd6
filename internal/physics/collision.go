package physics

import "math"

// Impact describes a resolved collision for sinks that want to show or play
// it. It carries no simulation state.
type Impact struct {
	X, Y     float64
	Radius   float64
	Strength float64 // relative speed at contact
	Tick     int
}

// Collider resolves the pairwise player collision and gates repeat hits with
// a cooldown measured in its own ticks. A hit is allowed once at least
// Cooldown ticks have passed since the last one, and the first hit of a
// round is never blocked.
type Collider struct {
	Cooldown int

	tick    int
	last    int
	hasLast bool
}

func NewCollider(cooldown int) *Collider {
	return &Collider{Cooldown: cooldown}
}

func (c *Collider) Tick() int { return c.tick }

// LastHit returns the tick of the most recent collision.
func (c *Collider) LastHit() (int, bool) { return c.last, c.hasLast }

func (c *Collider) Reset() {
	c.tick, c.last, c.hasLast = 0, 0, false
}

func (c *Collider) ready() bool {
	return !c.hasLast || c.tick-c.last >= c.Cooldown
}

// Resolve advances the collider by one tick and, if a and b overlap and the
// cooldown has elapsed, separates them and applies recoil to both.
func (c *Collider) Resolve(a, b *Player, t Tuning, charge bool) (Impact, bool) {
	c.tick++

	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Hypot(dx, dy)
	minDist := t.PlayerSize

	if dist >= minDist || !c.ready() {
		return Impact{}, false
	}

	angle := math.Atan2(dy, dx)
	ux, uy := math.Cos(angle), math.Sin(angle)
	overlap := minDist - dist
	pushX := ux * overlap * 0.5
	pushY := uy * overlap * 0.5

	a.X -= pushX
	a.Y -= pushY
	b.X += pushX
	b.Y += pushY

	rel := math.Hypot(b.VX-a.VX, b.VY-a.VY)
	speedA := a.Speed()
	speedB := b.Speed()

	recoilA := t.RecoilForce * (speedB + rel*0.5) * t.RecoilDamping
	recoilB := t.RecoilForce * (speedA + rel*0.5) * t.RecoilDamping

	// the hitter's charge amplifies what the other one receives
	if charge {
		recoilA *= 1 + b.Charge*t.ChargeBoost
		recoilB *= 1 + a.Charge*t.ChargeBoost
	}

	a.RecoilX, a.RecoilY = -ux*recoilA, -uy*recoilA
	b.RecoilX, b.RecoilY = ux*recoilB, uy*recoilB
	a.InRecoil, b.InRecoil = true, true

	a.VX, a.VY = -ux*recoilA*0.5, -uy*recoilA*0.5
	b.VX, b.VY = ux*recoilB*0.5, uy*recoilB*0.5

	if charge {
		a.Charge, b.Charge = 0, 0
	}

	c.last, c.hasLast = c.tick, true

	return Impact{
		X:        (a.X + b.X) / 2,
		Y:        (a.Y + b.Y) / 2,
		Radius:   impactRadius(rel),
		Strength: rel,
		Tick:     c.tick,
	}, true
}

// impactRadius maps relative speed 0..10 linearly onto 40..100, unclamped.
func impactRadius(rel float64) float64 {
	return 40 + rel*6
}
