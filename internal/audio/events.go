package audio

import (
	"github.com/san-kum/pushoff/internal/collect"
	"github.com/san-kum/pushoff/internal/match"
)

// Sounds is a match observer that turns collisions, new obstacles and round
// ends into synth voices.
type Sounds struct {
	synth     *Synth
	state     match.State
	obstacles int
}

func NewSounds(s *Synth) *Sounds {
	return &Sounds{synth: s}
}

func (o *Sounds) OnTick(s match.Snapshot) {
	for _, hit := range s.Impacts {
		o.synth.Thump(hit.Strength)
	}
	if len(s.Obstacles) > o.obstacles {
		o.synth.Blip(660)
	}
	if s.State == match.GameOver && o.state == match.Playing {
		o.synth.Fanfare()
	}
	o.obstacles = len(s.Obstacles)
	o.state = s.State
}

// CollectSounds plays the same cues for a collect run.
type CollectSounds struct {
	synth *Synth
	score int
	state match.State
}

func NewCollectSounds(s *Synth) *CollectSounds {
	return &CollectSounds{synth: s}
}

func (o *CollectSounds) Observe(s collect.Snapshot) {
	if s.Score > o.score {
		o.synth.Blip(880)
	}
	if s.State == match.GameOver && o.state == match.Playing {
		o.synth.Fanfare()
	}
	o.score = s.Score
	o.state = s.State
}
