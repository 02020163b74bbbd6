package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/pushoff/internal/collect"
	"github.com/san-kum/pushoff/internal/match"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.opts.Collect != nil {
		a.drawCollect(a.opts.Collect.Snapshot())
	} else {
		a.drawMatch(a.opts.Match.Snapshot())
	}
	if a.paused {
		a.drawCentered("PAUSED", 40, 20, ColText)
	}

	rl.EndDrawing()
}

func (a *App) drawMatch(s match.Snapshot) {
	rl.DrawRectangle(0, 0, int32(s.Bounds.Width), int32(s.Bounds.Height), ColArena)

	if pl := s.Platform; pl != nil {
		rl.DrawRectangle(int32(pl.X-pl.W/2), int32(pl.Y-pl.H/2), int32(pl.W), int32(pl.H), ColPlatform)
	}
	for _, o := range s.Obstacles {
		col := ColGrass
		if o.Life < 60 && o.Life/6%2 == 0 {
			col = rl.Fade(col, 0.4)
		}
		rl.DrawRectangle(int32(o.X-o.Size/2), int32(o.Y-o.Size/2), int32(o.Size), int32(o.Size), col)
	}

	r := float32(a.opts.Match.Options().Tuning.Radius())
	for i, p := range s.Players {
		col := ColP1
		if i == 1 {
			col = ColP2
		}
		if p.Charge > 0 {
			rl.DrawCircle(int32(p.X), int32(p.Y), r*(1+float32(p.Charge)*0.6), rl.Fade(col, 0.25))
		}
		rl.DrawCircle(int32(p.X), int32(p.Y), r, col)
		// facing marker
		rl.DrawCircle(int32(p.X)+int32(p.Facing)*int32(r/2), int32(p.Y)-int32(r/4), r/5, ColBg)
	}
	for _, ring := range a.effects.rings {
		rl.DrawCircleLines(int32(ring.x), int32(ring.y), float32(ring.size()), rl.Fade(ColImpact, ring.alpha()))
	}

	rl.DrawText(fmt.Sprintf("P1  %d", s.Wins[0]), 20, 16, 24, ColP1)
	p2 := fmt.Sprintf("%d  P2", s.Wins[1])
	rl.DrawText(p2, int32(s.Bounds.Width)-20-rl.MeasureText(p2, 24), 16, 24, ColP2)
	if s.Features.Charge {
		drawChargeBar(20, 46, s.Players[0].Charge, ColP1)
		drawChargeBar(int32(s.Bounds.Width)-140, 46, s.Players[1].Charge, ColP2)
	}

	switch s.State {
	case match.Start:
		a.drawCentered("PUSH OFF", 60, -40, ColText)
		a.drawCentered("P1 arrows + shift   P2 wasd + tab", 20, 20, ColTextDim)
		a.drawCentered("press space to start", 20, 50, ColTextDim)
	case match.GameOver:
		a.drawCentered(strings.ToUpper(s.Winner.String())+" WINS", 60, -30, ColText)
		a.drawCentered("press space to play again", 20, 30, ColTextDim)
	}
}

func (a *App) drawCollect(s collect.Snapshot) {
	rl.DrawRectangle(0, 0, int32(s.Bounds.Width), int32(s.Bounds.Height), ColArena)
	for _, c := range s.Coins {
		rl.DrawCircle(int32(c.X), int32(c.Y), collect.CoinRadius, ColCoin)
	}
	for _, h := range s.Hazards {
		rl.DrawCircle(int32(h.X), int32(h.Y), collect.HazardRadius, ColHazard)
	}
	r := float32(a.opts.Collect.Options().Tuning.Radius())
	rl.DrawCircle(int32(s.Player.X), int32(s.Player.Y), r, ColP1)

	rl.DrawText(fmt.Sprintf("score %d", s.Score), 20, 16, 24, ColText)
	best := fmt.Sprintf("best %d", s.Best)
	rl.DrawText(best, int32(s.Bounds.Width)-20-rl.MeasureText(best, 24), 16, 24, ColCoin)

	switch s.State {
	case match.Start:
		a.drawCentered("COLLECT", 60, -40, ColText)
		a.drawCentered("press space to start", 20, 30, ColTextDim)
	case match.GameOver:
		title := "GAME OVER"
		if s.Record {
			title = "NEW BEST!"
		}
		a.drawCentered(title, 60, -30, ColText)
		a.drawCentered(fmt.Sprintf("score %d   space to retry", s.Score), 20, 30, ColTextDim)
	}
}

func drawChargeBar(x, y int32, charge float64, col rl.Color) {
	const w, h = 120, 8
	rl.DrawRectangleLines(x, y, w, h, ColEdge)
	rl.DrawRectangle(x, y, int32(charge*w), h, col)
}

// drawCentered draws text centred horizontally, offset vertically from the
// middle of the window.
func (a *App) drawCentered(text string, size, dy int32, col rl.Color) {
	w, h := a.size()
	tw := rl.MeasureText(text, size)
	rl.DrawText(text, (w-tw)/2, h/2+dy, size, col)
}
