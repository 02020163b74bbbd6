package physics

import (
	"math"
	"testing"
)

func TestHeadOnCollision(t *testing.T) {
	tun := DefaultTuning()
	c := NewCollider(tun.CollisionCooldown)

	a := Player{X: 400, Y: 300, VX: -5}
	b := Player{X: 400, Y: 300, VX: 5}

	hit, ok := c.Resolve(&a, &b, tun, true)
	if !ok {
		t.Fatal("expected a collision")
	}

	if !a.InRecoil || !b.InRecoil {
		t.Error("both players should be in recoil")
	}
	if d := a.Dist(b); math.Abs(d-tun.PlayerSize) > 1e-9 {
		t.Errorf("separation = %f, want %f", d, tun.PlayerSize)
	}

	// recoil vectors point away from the other player
	if (a.RecoilX*(a.X-b.X) + a.RecoilY*(a.Y-b.Y)) <= 0 {
		t.Errorf("a recoil (%f, %f) does not point away from b", a.RecoilX, a.RecoilY)
	}
	if (b.RecoilX*(b.X-a.X) + b.RecoilY*(b.Y-a.Y)) <= 0 {
		t.Errorf("b recoil (%f, %f) does not point away from a", b.RecoilX, b.RecoilY)
	}

	// 1.2 * (5 + 10*0.5) * 0.5
	if math.Abs(a.RecoilX+6) > 1e-9 || math.Abs(b.RecoilX-6) > 1e-9 {
		t.Errorf("recoil x = (%f, %f), want (-6, 6)", a.RecoilX, b.RecoilX)
	}
	if math.Abs(a.VX+3) > 1e-9 || math.Abs(b.VX-3) > 1e-9 {
		t.Errorf("velocity x = (%f, %f), want (-3, 3)", a.VX, b.VX)
	}

	if hit.Strength != 10 {
		t.Errorf("strength = %f, want 10", hit.Strength)
	}
	if hit.Radius != 100 {
		t.Errorf("radius = %f, want 100", hit.Radius)
	}
	if hit.X != 400 || hit.Y != 300 {
		t.Errorf("impact at (%f, %f), want midpoint (400, 300)", hit.X, hit.Y)
	}
}

func TestNoCollisionWhenApart(t *testing.T) {
	tun := DefaultTuning()
	c := NewCollider(tun.CollisionCooldown)
	a := Player{X: 0, Y: 0, VX: 1}
	b := Player{X: tun.PlayerSize, Y: 0}

	if _, ok := c.Resolve(&a, &b, tun, false); ok {
		t.Error("players exactly one diameter apart should not collide")
	}
	if a.VX != 1 || a.InRecoil {
		t.Error("players were mutated without a collision")
	}
	if c.Tick() != 1 {
		t.Errorf("collider tick = %d, want 1", c.Tick())
	}
}

func TestCollisionCooldown(t *testing.T) {
	tun := DefaultTuning()
	c := NewCollider(tun.CollisionCooldown)

	var hits []int
	for i := 0; i < 100; i++ {
		a := Player{X: 100, Y: 100, VX: 1}
		b := Player{X: 110, Y: 100, VX: -1}
		if h, ok := c.Resolve(&a, &b, tun, false); ok {
			hits = append(hits, h.Tick)
		}
	}

	if len(hits) != 10 {
		t.Fatalf("got %d hits in 100 overlapping ticks, want 10", len(hits))
	}
	for i := 1; i < len(hits); i++ {
		if gap := hits[i] - hits[i-1]; gap < tun.CollisionCooldown {
			t.Errorf("hits %d and %d only %d ticks apart", hits[i-1], hits[i], gap)
		}
	}
	if hits[0] != 1 {
		t.Errorf("first hit at tick %d, want 1", hits[0])
	}
	if gap := hits[1] - hits[0]; gap != tun.CollisionCooldown {
		t.Errorf("second hit %d ticks after the first, want exactly %d", gap, tun.CollisionCooldown)
	}
	if last, ok := c.LastHit(); !ok || last != hits[len(hits)-1] {
		t.Errorf("LastHit = %d, %v", last, ok)
	}
}

func TestChargeBoostsForceReceivedByOpponent(t *testing.T) {
	tun := DefaultTuning()

	plain := func() (Player, Player) {
		return Player{X: 100, Y: 100, VX: 2}, Player{X: 130, Y: 100, VX: -2}
	}

	a0, b0 := plain()
	NewCollider(0).Resolve(&a0, &b0, tun, true)

	a1, b1 := plain()
	a1.Charge = 1
	NewCollider(0).Resolve(&a1, &b1, tun, true)

	boost := 1 + tun.ChargeBoost
	if math.Abs(b1.RecoilX-b0.RecoilX*boost) > 1e-9 {
		t.Errorf("charged hit gave b recoil %f, want %f", b1.RecoilX, b0.RecoilX*boost)
	}
	if math.Abs(a1.RecoilX-a0.RecoilX) > 1e-9 {
		t.Errorf("a's own charge changed a's recoil: %f vs %f", a1.RecoilX, a0.RecoilX)
	}
	if a1.Charge != 0 || b1.Charge != 0 {
		t.Error("charge should be consumed by the hit")
	}
}

func TestChargeKeptWithoutMechanic(t *testing.T) {
	tun := DefaultTuning()
	a := Player{X: 100, Y: 100, Charge: 0.7}
	b := Player{X: 120, Y: 100}

	if _, ok := NewCollider(0).Resolve(&a, &b, tun, false); !ok {
		t.Fatal("expected a collision")
	}
	if a.Charge != 0.7 {
		t.Errorf("charge = %f, want untouched 0.7", a.Charge)
	}
}

func TestColliderReset(t *testing.T) {
	tun := DefaultTuning()
	c := NewCollider(tun.CollisionCooldown)
	a, b := Player{X: 0}, Player{X: 1}
	c.Resolve(&a, &b, tun, false)

	c.Reset()
	if c.Tick() != 0 {
		t.Errorf("tick = %d after reset", c.Tick())
	}
	if _, ok := c.LastHit(); ok {
		t.Error("last hit survived reset")
	}
}
