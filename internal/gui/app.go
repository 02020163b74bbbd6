// Package gui is the windowed frontend: raylib draws the arena and polls the
// keyboard once per frame.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/pushoff/internal/collect"
	"github.com/san-kum/pushoff/internal/control"
	"github.com/san-kum/pushoff/internal/match"
)

var (
	ColBg       = rl.NewColor(18, 24, 20, 255)
	ColArena    = rl.NewColor(36, 52, 40, 255)
	ColEdge     = rl.NewColor(90, 110, 95, 255)
	ColPlatform = rl.NewColor(160, 130, 80, 255)
	ColGrass    = rl.NewColor(70, 160, 80, 255)
	ColP1       = rl.NewColor(80, 200, 230, 255)
	ColP2       = rl.NewColor(230, 110, 200, 255)
	ColImpact   = rl.NewColor(255, 170, 60, 255)
	ColCoin     = rl.NewColor(250, 210, 60, 255)
	ColHazard   = rl.NewColor(230, 60, 60, 255)
	ColText     = rl.NewColor(220, 220, 220, 255)
	ColTextDim  = rl.NewColor(120, 130, 120, 255)
)

// Options mirrors the terminal frontend: exactly one of Match and Collect is
// set and a nil controller slot reads the keyboard.
type Options struct {
	Title       string
	FPS         int
	Match       *match.Match
	Controllers [2]control.Controller
	Collect     *collect.Game
	OnCollect   func(collect.Snapshot)
}

type App struct {
	opts    Options
	keys    [2]*control.Keys
	effects effects
	paused  bool
}

func NewApp(opts Options) *App {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	a := &App{opts: opts}
	for i := range a.keys {
		a.keys[i] = control.NewKeys()
		if a.opts.Controllers[i] == nil {
			a.opts.Controllers[i] = a.keys[i]
		}
	}
	return a
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if (opts.Match == nil) == (opts.Collect == nil) {
		return fmt.Errorf("gui: exactly one of match or collect game is required")
	}
	app := NewApp(opts)

	w, h := app.size()
	rl.InitWindow(w, h, "pushoff "+opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(app.opts.FPS))
	rl.SetExitKey(rl.KeyEscape)

	app.RunLoop()
	return nil
}

func (a *App) size() (int32, int32) {
	if a.opts.Collect != nil {
		b := a.opts.Collect.Options().Bounds
		return int32(b.Width), int32(b.Height)
	}
	b := a.opts.Match.Options().Bounds
	return int32(b.Width), int32(b.Height)
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.start()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.paused = !a.paused
	}
	if a.paused {
		return
	}
	a.step(pollPlayers(rl.IsKeyDown))
}

func (a *App) start() {
	a.paused = false
	a.effects.clear()
	if g := a.opts.Collect; g != nil {
		g.Start()
		a.notifyCollect()
		return
	}
	if a.opts.Match.Start() {
		for _, c := range a.opts.Controllers {
			if rs, ok := c.(interface{ Reset() }); ok {
				rs.Reset()
			}
		}
	}
}
