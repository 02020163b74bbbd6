package arena

import "github.com/san-kum/pushoff/internal/physics"

const (
	Width  = 800.0
	Height = 600.0
	Margin = 100.0 // how far past an edge a player may drift before losing
)

type Bounds struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

func DefaultBounds() Bounds {
	return Bounds{Width: Width, Height: Height, Margin: Margin}
}

func (b Bounds) Center() (x, y float64) {
	return b.Width / 2, b.Height / 2
}

// Outside reports whether a point has left the arena by more than the margin
// on any side.
func (b Bounds) Outside(x, y float64) bool {
	return x < -b.Margin || x > b.Width+b.Margin ||
		y < -b.Margin || y > b.Height+b.Margin
}

// Platform returns a platform of the given size centred in the arena.
func (b Bounds) Platform(w, h float64) physics.Platform {
	cx, cy := b.Center()
	return physics.Platform{X: cx, Y: cy, W: w, H: h}
}
