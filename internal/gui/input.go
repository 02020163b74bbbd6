package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/pushoff/internal/physics"
)

// keyMap lists the raylib keys of one player's controls.
type keyMap struct {
	Left, Right, Up, Down int32
	Charge                []int32
}

var playerKeys = [2]keyMap{
	{Left: rl.KeyLeft, Right: rl.KeyRight, Up: rl.KeyUp, Down: rl.KeyDown, Charge: []int32{rl.KeyLeftShift, rl.KeyRightShift}},
	{Left: rl.KeyA, Right: rl.KeyD, Up: rl.KeyW, Down: rl.KeyS, Charge: []int32{rl.KeyTab}},
}

// poll builds an input snapshot from a key state function so it can run
// without a window.
func (k keyMap) poll(down func(int32) bool) physics.Input {
	in := physics.Input{
		Left:  down(k.Left),
		Right: down(k.Right),
		Up:    down(k.Up),
		Down:  down(k.Down),
	}
	for _, c := range k.Charge {
		in.Charge = in.Charge || down(c)
	}
	return in
}

func pollPlayers(down func(int32) bool) [2]physics.Input {
	return [2]physics.Input{playerKeys[0].poll(down), playerKeys[1].poll(down)}
}
