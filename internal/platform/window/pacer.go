package window

import "time"

// pacer turns ebiten's fixed-rate Update calls into simulation ticks: the
// first tick after startDelay, then one every interval.
type pacer struct {
	frame    time.Duration
	interval time.Duration
	now      time.Duration
	next     time.Duration
}

func newPacer(tps int, interval, startDelay time.Duration) *pacer {
	return &pacer{
		frame:    time.Second / time.Duration(tps),
		interval: interval,
		next:     startDelay,
	}
}

// Advance moves one update forward and returns how many ticks fell due.
func (p *pacer) Advance() int {
	p.now += p.frame
	n := 0
	for p.now >= p.next {
		n++
		p.next += p.interval
	}
	return n
}
