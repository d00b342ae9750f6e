package invaders

import (
	"sort"
	"time"
)

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

// Scheduler is the simulation clock plus a queue of one-shot callbacks.
// Time only moves when Advance is called, so every delay is measured in
// simulation time and replays identically.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []timer // ordered by due, then seq
}

// Now returns the elapsed simulation time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once the clock has advanced by d.
// Callbacks due at the same instant run in scheduling order.
func (s *Scheduler) After(d time.Duration, fn func()) {
	t := timer{due: s.now + d, seq: s.seq, fn: fn}
	s.seq++

	i := sort.Search(len(s.timers), func(i int) bool {
		return s.timers[i].due > t.due
	})
	s.timers = append(s.timers, timer{})
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = t
}

// Advance moves the clock forward by d and runs every callback that has
// become due, including ones scheduled by callbacks run here.
func (s *Scheduler) Advance(d time.Duration) {
	s.now += d
	for len(s.timers) > 0 && s.timers[0].due <= s.now {
		t := s.timers[0]
		s.timers = s.timers[1:]
		t.fn()
	}
}

// Pending returns the number of callbacks not yet run.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}
