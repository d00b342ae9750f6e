package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Input is the control state held at the moment a tick runs.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// Sim is the fixed-tick simulation: one defender against one fleet.
// It is single-threaded; every mutation happens inside Tick.
type Sim struct {
	w        *world
	clock    *Scheduler
	defender *Defender
	fleet    *Fleet

	ticks    uint64
	wave     int
	gameOver bool
	// suspended is set while the defender's explosion holds the tick that
	// detected the hit.
	suspended bool

	events []core.Event
}

// NewSim builds a fresh game: a full fleet and a defender with all lives.
func NewSim(set *Settings, rng Rand, sound core.SoundPlayer) *Sim {
	clock := &Scheduler{}
	w := &world{set: set, clock: clock, sound: sound, rng: rng}
	return &Sim{
		w:        w,
		clock:    clock,
		defender: newDefender(w),
		fleet:    newFleet(w),
		wave:     1,
	}
}

// Defender returns the player's ship.
func (s *Sim) Defender() *Defender { return s.defender }

// Fleet returns the current alien fleet.
func (s *Sim) Fleet() *Fleet { return s.fleet }

// Settings returns the constants the simulation runs with.
func (s *Sim) Settings() *Settings { return s.w.set }

// Now returns the simulation clock.
func (s *Sim) Now() time.Duration { return s.clock.Now() }

// Ticks returns the number of ticks run.
func (s *Sim) Ticks() uint64 { return s.ticks }

// Wave returns the 1-based number of the current fleet.
func (s *Sim) Wave() int { return s.wave }

// GameOver reports whether the simulation has ended.
func (s *Sim) GameOver() bool { return s.gameOver }

// Suspended reports whether a defender explosion is holding the game.
func (s *Sim) Suspended() bool { return s.suspended }

// SetSoundPlayer replaces the sound sink.
func (s *Sim) SetSoundPlayer(p core.SoundPlayer) { s.w.sound = p }

// Tick advances the simulation by one period and returns what happened.
// Once the game is over Tick does nothing.
func (s *Sim) Tick(in Input) []core.Event {
	if s.gameOver {
		return nil
	}
	s.events = nil
	s.ticks++
	s.clock.Advance(s.w.set.Tick)

	if s.suspended {
		if s.defender.exploding {
			return s.events
		}
		s.suspended = false
		if !s.defender.alive {
			s.emit(core.EventDefenderDestroyed, s.defender.score)
		}
		s.clearAfterHit()
	} else if s.moveBombs() {
		return s.events
	}

	if a := s.fleet.ManageTouchedAliensBy(s.defender); a != nil {
		s.emit(core.EventAlienKilled, a.Worth())
	}

	s.fleet.Advance(s.clock.Now())

	if b := s.defender.bullet; b != nil {
		b.Move()
	}

	s.applyInput(in)
	s.checkStatus()
	return s.events
}

// moveBombs advances every bomb. On the first bomb touching the defender
// it starts the defender's explosion and reports true; the tick then waits
// for the explosion to finish.
func (s *Sim) moveBombs() bool {
	for _, b := range append([]*Bomb(nil), s.fleet.bombs...) {
		if s.defender.TouchedBy(b) {
			b.Kill()
			s.defender.Explode()
			s.suspended = true
			s.emit(core.EventDefenderHit, s.defender.lives)
			return true
		}
		b.Move()
		b.Animate()
	}
	return false
}

// clearAfterHit finishes the tick a bomb hit interrupted: the bullet in
// flight and every other bomb go up with the defender.
func (s *Sim) clearAfterHit() {
	if b := s.defender.bullet; b != nil {
		b.Explode()
	}
	s.fleet.explodeBombs()
}

func (s *Sim) applyInput(in Input) {
	d := s.defender
	switch {
	case in.Left && !in.Right:
		d.Move(-s.w.set.DefenderStep)
	case in.Right && !in.Left:
		d.Move(s.w.set.DefenderStep)
	}
	if in.Fire && d.Fire() {
		s.emit(core.EventBulletFired, 0)
	}
}

func (s *Sim) checkStatus() {
	over := s.defender.lives == 0
	if box, ok := s.fleet.Box(); ok && box.Bottom >= s.defender.box.Top {
		over = true
	}
	if over {
		s.gameOver = true
		s.emit(core.EventGameOver, s.defender.score)
		return
	}

	if s.fleet.Cleared() {
		s.emit(core.EventWaveCleared, s.wave)
		s.wave++
		s.fleet = newFleet(s.w)
	}
}

func (s *Sim) emit(t core.EventType, value int) {
	s.events = append(s.events, core.Event{Type: t, Value: value})
}
