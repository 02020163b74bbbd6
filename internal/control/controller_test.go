package control

import (
	"testing"

	"github.com/san-kum/pushoff/internal/physics"
)

func TestNone(t *testing.T) {
	in := NewNone().Compute(physics.Player{}, physics.Player{X: 10}, 1)
	if in != (physics.Input{}) {
		t.Errorf("expected no keys, got %+v", in)
	}
}

func TestKeys(t *testing.T) {
	k := NewKeys()
	k.Set(physics.Input{Left: true, Charge: true})

	in := k.Compute(physics.Player{}, physics.Player{}, 3)
	if !in.Left || !in.Charge || in.Right {
		t.Errorf("unexpected input %+v", in)
	}
}

func TestScript(t *testing.T) {
	s := NewScript(physics.Input{Left: true}, physics.Input{Right: true})

	tests := []struct {
		tick  int
		right bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{50, true},
	}
	for _, tt := range tests {
		if got := s.Compute(physics.Player{}, physics.Player{}, tt.tick).Right; got != tt.right {
			t.Errorf("tick %d: right = %v, want %v", tt.tick, got, tt.right)
		}
	}

	if NewScript().Compute(physics.Player{}, physics.Player{}, 1) != (physics.Input{}) {
		t.Error("empty script should press nothing")
	}
}

func TestPID(t *testing.T) {
	pid := NewPID(10, 0.1, 5, 0)
	if u := pid.Compute(1, 1); u >= 0 {
		t.Error("PID should output negative control for positive error")
	}

	pid = NewPID(10, 0, 0, 0.5)
	if u := pid.Compute(-100, 1); u != 0.5 {
		t.Errorf("saturated output = %f, want 0.5", u)
	}
}

func TestPIDReset(t *testing.T) {
	pid := NewPID(1, 1, 1, 0)
	pid.Compute(5, 1)
	pid.Compute(4, 2)
	pid.Reset()

	if u := pid.Compute(2, 3); u != -2 {
		t.Errorf("first output after reset = %f, want proportional -2", u)
	}
}

func TestBotSteersTowardOpponent(t *testing.T) {
	bot := NewBot(false)
	self := physics.Player{X: 100, Y: 300}
	opp := physics.Player{X: 500, Y: 300}

	in := bot.Compute(self, opp, 1)
	if !in.Right || in.Left {
		t.Errorf("bot should head right, got %+v", in)
	}
	if in.Up || in.Down {
		t.Errorf("bot should not move vertically on a level line, got %+v", in)
	}
}

func TestBotChargesWhenFar(t *testing.T) {
	bot := NewBot(true)
	self := physics.Player{X: 100, Y: 300}
	opp := physics.Player{X: 600, Y: 300}

	in := bot.Compute(self, opp, 1)
	if !in.Charge || in.Moving() {
		t.Fatalf("bot should stand still and charge, got %+v", in)
	}

	self.Charge = BotChargeTarget
	in = bot.Compute(self, opp, 2)
	if in.Charge || !in.Right {
		t.Errorf("charged bot should attack, got %+v", in)
	}
}

func TestBotSkipsChargeUpClose(t *testing.T) {
	bot := NewBot(true)
	in := bot.Compute(physics.Player{X: 300, Y: 300}, physics.Player{X: 380, Y: 300}, 1)
	if in.Charge {
		t.Error("bot charged with the opponent right next to it")
	}
}

func TestPair(t *testing.T) {
	players := [2]physics.Player{{X: 100}, {X: 500}}
	in := Pair([2]Controller{NewBot(false), NewBot(false)}, players, 1)

	if !in[0].Right {
		t.Error("first bot should head right toward the second")
	}
	if !in[1].Left {
		t.Error("second bot should head left toward the first")
	}
}

func TestBotSetGains(t *testing.T) {
	bot := NewBot(false)
	bot.SetGains(0, 0)
	in := bot.Compute(physics.Player{X: 100, Y: 300}, physics.Player{X: 500, Y: 300}, 1)
	if in.Moving() {
		t.Errorf("zero gains should leave the bot idle, got %+v", in)
	}
}
