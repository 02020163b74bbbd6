package physics

import "math"

type Player struct {
	X, Y             float64
	VX, VY           float64
	RecoilX, RecoilY float64
	InRecoil         bool
	Facing           int // 1 = right, -1 = left
	Charge           float64
}

func NewPlayer(x, y float64, facing int) Player {
	return Player{X: x, Y: y, Facing: facing}
}

func (p Player) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

func (p Player) Dist(o Player) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Input is one tick's control snapshot for a single player.
type Input struct {
	Left, Right, Up, Down bool
	Charge                bool
}

func (in Input) Moving() bool {
	return in.Left || in.Right || in.Up || in.Down
}

// Direction returns the movement delta for the input, scaled so that
// diagonals have unit length.
func (in Input) Direction() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if dx != 0 && dy != 0 {
		dx *= math.Sqrt2 / 2
		dy *= math.Sqrt2 / 2
	}
	return dx, dy
}

// Env is what a player collides with during one integration step.
type Env struct {
	Charge   bool
	Solids   []Box
	Platform *Platform
}

// Integrate advances p by one tick.
func Integrate(p *Player, in Input, t Tuning, env Env) {
	p.RecoilX *= t.RecoilDecay
	p.RecoilY *= t.RecoilDecay

	dx, dy := in.Direction()
	if in.Left {
		p.Facing = -1
	}
	if in.Right {
		p.Facing = 1
	}

	if env.Charge {
		updateCharge(p, in, t)
	}

	mult := 1.0
	if p.InRecoil {
		mult = t.RecoilControl
	}
	p.VX += dx * t.PlayerSpeed * t.MoveScale * mult
	p.VY += dy * t.PlayerSpeed * t.MoveScale * mult

	p.VX += p.RecoilX
	p.VY += p.RecoilY

	p.VX *= t.Friction
	p.VY *= t.Friction

	onPlatform := env.Platform != nil && env.Platform.Holds(*p, t.PlayerSize)

	p.X += p.VX
	p.Y += p.VY

	if math.Abs(p.RecoilX) < t.RecoilEpsilon && math.Abs(p.RecoilY) < t.RecoilEpsilon {
		p.InRecoil = false
	}

	for _, b := range env.Solids {
		ResolveBox(p, b, t.PlayerSize)
	}
	if onPlatform {
		env.Platform.Clamp(p, t.PlayerSize)
	}
}

// updateCharge builds charge while the player holds the charge key standing
// still and out of recoil; otherwise the charge bleeds away.
func updateCharge(p *Player, in Input, t Tuning) {
	charging := in.Charge && !in.Moving() && p.Speed() < t.ChargeSpeedThreshold && !p.InRecoil
	if charging {
		p.Charge = math.Min(t.MaxCharge, p.Charge+t.ChargeRate)
	} else {
		p.Charge = math.Max(0, p.Charge-t.ChargeDecay)
	}
	p.Charge = clamp(p.Charge, 0, t.MaxCharge)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
