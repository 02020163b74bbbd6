package gui

import (
	"github.com/san-kum/pushoff/internal/control"
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/physics"
)

// step advances the game by one frame with the polled keys. Keyboard slots
// see the keys through control.Keys; other controllers ignore them.
func (a *App) step(keys [2]physics.Input) {
	a.effects.step()

	if g := a.opts.Collect; g != nil {
		if g.State() != match.Playing {
			return
		}
		in := keys[0]
		if !in.Moving() {
			in = keys[1]
		}
		g.Tick(in)
		a.notifyCollect()
		return
	}

	m := a.opts.Match
	if m.State() != match.Playing {
		return
	}
	for i, k := range a.keys {
		k.Set(keys[i])
	}
	m.Tick(control.Pair(a.opts.Controllers, m.Players(), m.CurrentTick()+1))
	for _, hit := range m.Snapshot().Impacts {
		a.effects.add(hit)
	}
}

func (a *App) notifyCollect() {
	if a.opts.OnCollect != nil {
		a.opts.OnCollect(a.opts.Collect.Snapshot())
	}
}
