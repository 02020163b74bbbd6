package physics

import "math"

// Box is an axis-aligned square solid centred on X, Y.
type Box struct {
	X, Y float64
	Size float64
}

func (b Box) Overlaps(p Player, size float64) bool {
	half, r := b.Size/2, size/2
	return p.X+r > b.X-half &&
		p.X-r < b.X+half &&
		p.Y+r > b.Y-half &&
		p.Y-r < b.Y+half
}

// ResolveBox pushes p out of b along the axis of least overlap and clamps the
// velocity component that points back into the box. Ties resolve in the
// order right, left, down, up.
func ResolveBox(p *Player, b Box, size float64) {
	if !b.Overlaps(*p, size) {
		return
	}
	half, r := b.Size/2, size/2

	pushRight := (b.X + half) - (p.X - r)
	pushLeft := (p.X + r) - (b.X - half)
	pushDown := (b.Y + half) - (p.Y - r)
	pushUp := (p.Y + r) - (b.Y - half)
	least := math.Min(math.Min(pushRight, pushLeft), math.Min(pushDown, pushUp))

	switch least {
	case pushRight:
		p.X += pushRight
		p.VX = math.Max(p.VX, 0)
	case pushLeft:
		p.X -= pushLeft
		p.VX = math.Min(p.VX, 0)
	case pushDown:
		p.Y += pushDown
		p.VY = math.Max(p.VY, 0)
	default:
		p.Y -= pushUp
		p.VY = math.Min(p.VY, 0)
	}
}

// Platform is a rectangle players stand on, centred on X, Y.
type Platform struct {
	X, Y float64 `yaml:"-"`
	W    float64 `yaml:"width"`
	H    float64 `yaml:"height"`
}

// Spans reports whether x lies strictly within the platform's horizontal extent.
func (pl Platform) Spans(x float64) bool {
	return x > pl.X-pl.W/2 && x < pl.X+pl.W/2
}

// Holds reports whether p is standing on the platform: within its span and
// inside the band.
func (pl Platform) Holds(p Player, size float64) bool {
	top, bottom := pl.Band(size)
	return pl.Spans(p.X) && p.Y >= top && p.Y <= bottom
}

// Band returns the range of Y a player of the given size may occupy while
// standing on the platform.
func (pl Platform) Band(size float64) (top, bottom float64) {
	return pl.Y - pl.H/2 - size/2, pl.Y + pl.H/2 + size/2
}

// Clamp keeps p within the platform band vertically. X is left free so a
// player can still be pushed off either end.
func (pl Platform) Clamp(p *Player, size float64) {
	top, bottom := pl.Band(size)
	if p.Y < top {
		p.Y = top
		p.VY = math.Max(p.VY, 0)
	} else if p.Y > bottom {
		p.Y = bottom
		p.VY = math.Min(p.VY, 0)
	}
}
