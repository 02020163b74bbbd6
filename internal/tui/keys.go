package tui

import "github.com/san-kum/pushoff/internal/physics"

// HoldFrames is how long a key counts as held after its last press event.
// Terminals report presses and auto-repeats but never releases, so a held key
// is one that keeps repeating within this window.
const HoldFrames = 30

type binding struct {
	player int
	set    func(*physics.Input)
}

var bindings = map[string]binding{
	"left":  {0, func(in *physics.Input) { in.Left = true }},
	"right": {0, func(in *physics.Input) { in.Right = true }},
	"up":    {0, func(in *physics.Input) { in.Up = true }},
	"down":  {0, func(in *physics.Input) { in.Down = true }},
	".":     {0, func(in *physics.Input) { in.Charge = true }},
	"a":     {1, func(in *physics.Input) { in.Left = true }},
	"d":     {1, func(in *physics.Input) { in.Right = true }},
	"w":     {1, func(in *physics.Input) { in.Up = true }},
	"s":     {1, func(in *physics.Input) { in.Down = true }},
	"tab":   {1, func(in *physics.Input) { in.Charge = true }},
}

// opposite keys cancel each other so a direction change is immediate
var opposite = map[string]string{
	"left": "right", "right": "left", "up": "down", "down": "up",
	"a": "d", "d": "a", "w": "s", "s": "w",
}

type heldKeys struct {
	until map[string]int
}

func newHeldKeys() *heldKeys {
	return &heldKeys{until: make(map[string]int)}
}

// press records a key event at frame and reports whether the key is bound.
func (h *heldKeys) press(key string, frame int) bool {
	if _, ok := bindings[key]; !ok {
		return false
	}
	h.until[key] = frame + HoldFrames
	if o, ok := opposite[key]; ok {
		delete(h.until, o)
	}
	return true
}

func (h *heldKeys) inputs(frame int) [2]physics.Input {
	var in [2]physics.Input
	for key, until := range h.until {
		if frame >= until {
			delete(h.until, key)
			continue
		}
		b := bindings[key]
		b.set(&in[b.player])
	}
	return in
}

func (h *heldKeys) reset() {
	clear(h.until)
}
