package control

import "github.com/san-kum/pushoff/internal/physics"

const (
	BotDeadzone     = 0.25
	BotChargeRange  = 160.0 // only stops to charge when at least this far away
	BotChargeTarget = 0.8
	BotOvershoot    = 30.0 // aims past the opponent so it pushes through
)

// Bot steers toward the opponent and, when the charge mechanic is on, stops
// to build charge whenever it has room.
type Bot struct {
	UseCharge    bool
	Deadzone     float64
	ChargeRange  float64
	ChargeTarget float64

	x, y     *PID
	charging bool
}

func NewBot(useCharge bool) *Bot {
	return &Bot{
		UseCharge:    useCharge,
		Deadzone:     BotDeadzone,
		ChargeRange:  BotChargeRange,
		ChargeTarget: BotChargeTarget,
		x:            NewPID(0.05, 0, 0.4, 1),
		y:            NewPID(0.05, 0, 0.4, 1),
	}
}

// SetGains replaces the steering gains on both axes.
func (b *Bot) SetGains(kp, kd float64) {
	b.x = NewPID(kp, 0, kd, 1)
	b.y = NewPID(kp, 0, kd, 1)
}

func (b *Bot) Reset() {
	b.x.Reset()
	b.y.Reset()
	b.charging = false
}

func (b *Bot) Compute(self, opp physics.Player, tick int) physics.Input {
	dist := self.Dist(opp)

	if b.UseCharge {
		if b.charging && (self.Charge >= b.ChargeTarget || dist < b.ChargeRange/2 || self.InRecoil) {
			b.charging = false
		}
		if !b.charging && dist > b.ChargeRange && self.Charge == 0 && self.Speed() < physics.ChargeSpeedThreshold && !self.InRecoil {
			b.charging = true
		}
		if b.charging {
			return physics.Input{Charge: true}
		}
	}

	tx, ty := opp.X, opp.Y
	if dist > 0 {
		tx += (opp.X - self.X) / dist * BotOvershoot
		ty += (opp.Y - self.Y) / dist * BotOvershoot
	}
	b.x.Target, b.y.Target = tx, ty
	ux := b.x.Compute(self.X, tick)
	uy := b.y.Compute(self.Y, tick)

	return physics.Input{
		Left:  ux < -b.Deadzone,
		Right: ux > b.Deadzone,
		Up:    uy < -b.Deadzone,
		Down:  uy > b.Deadzone,
	}
}
