package control

import "math"

// PID tracks Target on one axis. Time is measured in ticks.
type PID struct {
	Kp, Ki, Kd float64
	Target     float64
	Limit      float64 // output saturation, 0 = unbounded

	integral float64
	prevErr  float64
	prevT    int
	primed   bool
}

func NewPID(kp, ki, kd, limit float64) *PID {
	return &PID{Kp: kp, Ki: ki, Kd: kd, Limit: limit}
}

// Compute returns the control output for the value measured at tick t.
func (p *PID) Compute(measured float64, t int) float64 {
	err := p.Target - measured

	if !p.primed || t <= p.prevT {
		p.prevErr, p.prevT, p.primed = err, t, true
		return p.saturate(p.Kp * err)
	}

	dt := float64(t - p.prevT)
	p.integral += err * dt
	derivative := (err - p.prevErr) / dt
	p.prevErr, p.prevT = err, t

	return p.saturate(p.Kp*err + p.Ki*p.integral + p.Kd*derivative)
}

func (p *PID) saturate(u float64) float64 {
	if p.Limit <= 0 {
		return u
	}
	return math.Max(-p.Limit, math.Min(p.Limit, u))
}

// Reset clears integral and derivative state.
func (p *PID) Reset() {
	p.integral, p.prevErr, p.prevT, p.primed = 0, 0, 0, false
}
