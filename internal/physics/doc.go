// Package physics implements the per-tick motion model shared by the push-off
// games.
//
// A tick is one call of [Integrate] per player followed by one call of
// [Collider.Resolve] for the pair:
//
//   - [Integrate]: recoil decay, movement input, charge, friction, position
//   - [Collider]: pairwise circle collision with recoil and a cooldown gate
//   - [ResolveBox]: minimum-axis push-out of a player from a solid box
//
// Every constant lives in [Tuning]; [DefaultTuning] returns the values the
// games ship with. All timing is expressed in ticks.
//
// # Example
//
//	t := physics.DefaultTuning()
//	var c physics.Collider
//	c.Cooldown = t.CollisionCooldown
//	physics.Integrate(&p1, in1, t, physics.Env{Charge: true})
//	physics.Integrate(&p2, in2, t, physics.Env{Charge: true})
//	if hit, ok := c.Resolve(&p1, &p2, t, true); ok {
//	    fmt.Println(hit.Strength)
//	}
//
// Nothing in this package blocks or allocates per tick, and nothing is safe
// for concurrent use: a player belongs to exactly one match.
package physics
