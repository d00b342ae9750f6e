package invaders

import (
	"strings"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// zeroRand always answers 0: no bombs are ever dropped.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// topRand always answers the largest value: every drop fills the free slots.
type topRand struct{}

func (topRand) Intn(n int) int { return n - 1 }

type recordingSound struct {
	names []string
}

func (r *recordingSound) Play(name string) {
	r.names = append(r.names, name)
}

func (r *recordingSound) withPrefix(prefix string) []string {
	var out []string
	for _, n := range r.names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}

type panickingSound struct{}

func (panickingSound) Play(string) { panic("device unplugged") }

func newQuietSim() (*Sim, *recordingSound) {
	snd := &recordingSound{}
	return NewSim(DefaultSettings(), zeroRand{}, snd), snd
}

// ticksFor returns how many ticks cover d.
func ticksFor(s *Sim, d time.Duration) int {
	return int((d + s.w.set.Tick - 1) / s.w.set.Tick)
}

// dropBombOnDefender puts a live bomb right on top of the defender.
func dropBombOnDefender(s *Sim) *Bomb {
	b := newBomb(s.w, s.fleet, s.fleet.Alien(4, 0))
	d := s.defender.box
	b.box = core.NewBox(d.CenterX(), d.Top-10, s.w.set.BombWidth, s.w.set.BombHeight)
	s.fleet.bombs = append(s.fleet.bombs, b)
	return b
}

func countEvents(events []core.Event, t core.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}
