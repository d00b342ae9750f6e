package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Rand is the randomness the simulation consumes.
// *rand.Rand satisfies it; tests plug in scripted sources.
type Rand interface {
	Intn(n int) int
}

// Sound names emitted by the simulation.
const (
	SoundDefenderShoot  = "defender_shoot"
	SoundDefenderKilled = "defender_killed"
	SoundAlienKilled    = "alien_killed"
)

// AlienMoveSounds are played round-robin on every fleet animation step.
var AlienMoveSounds = [...]string{"alien_move_1", "alien_move_2", "alien_move_3", "alien_move_4"}

// world is what every entity needs from its surroundings.
type world struct {
	set   *Settings
	clock *Scheduler
	sound core.SoundPlayer
	rng   Rand
}

func (w *world) now() time.Duration {
	return w.clock.Now()
}

// play hands a sound to the player and swallows anything it throws.
func (w *world) play(name string) {
	if w.sound == nil {
		return
	}
	defer func() { _ = recover() }()
	w.sound.Play(name)
}

// lifecycle is the alive/exploding pair every actor carries.
// An actor is live only while alive and not exploding; once alive is
// false it never comes back.
type lifecycle struct {
	alive     bool
	exploding bool
}

func newLifecycle() lifecycle {
	return lifecycle{alive: true}
}

// IsAlive reports whether the actor can still move, hit or be hit.
func (l *lifecycle) IsAlive() bool {
	return l.alive && !l.exploding
}

// Alive reports whether the actor is still in play, exploding or not.
func (l *lifecycle) Alive() bool {
	return l.alive
}

// Exploding reports whether the actor is showing its explosion.
func (l *lifecycle) Exploding() bool {
	return l.exploding
}
