package core

import "time"

// Pacer spaces simulation ticks to a steady ticks-per-second rate. A zero
// rate disables pacing.
type Pacer struct {
	step time.Duration
	last time.Time
}

// NewPacer constructs a Pacer targeting the given TPS.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate. Values <= 0 disable pacing.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		p.step = 0
		return
	}
	p.step = time.Second / time.Duration(tps)
}

// TPS reports the configured rate, 0 when unthrottled.
func (p *Pacer) TPS() int {
	if p.step <= 0 {
		return 0
	}
	return int(time.Second / p.step)
}

// Delay returns how long to wait before the next tick may start. Time spent
// idle since the last tick counts towards the step, so a long pause never
// produces a burst of catch-up ticks.
func (p *Pacer) Delay(now time.Time) time.Duration {
	if p.step <= 0 || p.last.IsZero() {
		return 0
	}
	if d := p.step - now.Sub(p.last); d > 0 {
		return d
	}
	return 0
}

// Mark records that a tick started at now.
func (p *Pacer) Mark(now time.Time) { p.last = now }
