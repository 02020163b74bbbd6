package physics

import "testing"

func TestResolveBox(t *testing.T) {
	box := Box{X: 200, Y: 200, Size: 40}

	tests := []struct {
		name         string
		player       Player
		wantX, wantY float64
		wantVX       float64
		wantVY       float64
	}{
		{"from left", Player{X: 165, Y: 200, VX: 3, VY: 1}, 160, 200, 0, 1},
		{"from right", Player{X: 235, Y: 200, VX: -3, VY: 1}, 240, 200, 0, 1},
		{"from above", Player{X: 200, Y: 165, VX: 1, VY: 3}, 200, 160, 1, 0},
		{"from below", Player{X: 200, Y: 235, VX: 1, VY: -3}, 200, 240, 1, 0},
		{"moving away keeps velocity", Player{X: 165, Y: 200, VX: -2}, 160, 200, -2, 0},
		{"no overlap", Player{X: 100, Y: 100, VX: 5}, 100, 100, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.player
			ResolveBox(&p, box, PlayerSize)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("position = (%f, %f), want (%f, %f)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if p.VX != tt.wantVX || p.VY != tt.wantVY {
				t.Errorf("velocity = (%f, %f), want (%f, %f)", p.VX, p.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestResolveBoxCompoundsAcrossBoxes(t *testing.T) {
	p := Player{X: 200, Y: 165}
	boxes := []Box{{X: 200, Y: 200, Size: 40}, {X: 200, Y: 140, Size: 40}}

	for _, b := range boxes {
		ResolveBox(&p, b, PlayerSize)
	}
	// pushed up by the first box, then down by the second
	if p.Y != 180 {
		t.Errorf("y = %f, want 180", p.Y)
	}
}

func TestPlatformClamp(t *testing.T) {
	pl := Platform{X: 400, Y: 300, W: 400, H: 30}
	top, bottom := pl.Band(PlayerSize)
	if top != 265 || bottom != 335 {
		t.Fatalf("band = [%f, %f], want [265, 335]", top, bottom)
	}

	tun := DefaultTuning()
	p := Player{X: 400, Y: 330, VY: 10}
	Integrate(&p, Input{}, tun, Env{Platform: &pl})
	if p.Y != bottom || p.VY != 0 {
		t.Errorf("on platform: y=%f vy=%f, want y=%f vy=0", p.Y, p.VY, bottom)
	}

	off := Player{X: 700, Y: 330, VY: 10}
	Integrate(&off, Input{}, tun, Env{Platform: &pl})
	if off.Y <= bottom {
		t.Errorf("player off the platform was clamped: y=%f", off.Y)
	}

	above := Player{X: 400, Y: 100}
	Integrate(&above, Input{}, tun, Env{Platform: &pl})
	if above.Y != 100 {
		t.Errorf("player above the band was pulled onto the platform: y=%f", above.Y)
	}
	if pl.Holds(above, PlayerSize) || !pl.Holds(Player{X: 400, Y: top}, PlayerSize) {
		t.Error("Holds should need both the span and the band")
	}

	if !pl.Spans(599) || pl.Spans(600) || pl.Spans(200) {
		t.Error("Spans should be strict on both ends")
	}
}
