package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Defender is the player's ship at the bottom of the playfield.
type Defender struct {
	lifecycle
	w *world

	box    core.Box
	lives  int
	score  int
	bullet *Bullet

	sprite Sprite
	frame  int
}

func newDefender(w *world) *Defender {
	s := w.set
	return &Defender{
		lifecycle: newLifecycle(),
		w:         w,
		box:       core.NewBox(s.Width/2-s.DefenderWidth/2, s.Height-s.DefenderHeight, s.DefenderWidth, s.DefenderHeight),
		lives:     s.Lives,
		sprite:    SpriteDefender,
	}
}

// Box returns the defender's bounding box.
func (d *Defender) Box() core.Box { return d.box }

// Lives returns the remaining lives.
func (d *Defender) Lives() int { return d.lives }

// Score returns the points collected so far.
func (d *Defender) Score() int { return d.score }

// Bullet returns the bullet in flight, or nil.
func (d *Defender) Bullet() *Bullet { return d.bullet }

// Move shifts the ship horizontally. A move that would leave the playfield
// is shortened so the ship stops flush with the edge.
func (d *Defender) Move(dx int) {
	if !d.IsAlive() {
		return
	}
	if d.box.Left+dx < 0 {
		dx = -d.box.Left
	} else if d.box.Right+dx > d.w.set.Width {
		dx = d.w.set.Width - d.box.Right
	}
	d.box = d.box.Translate(dx, 0)
}

// Fire launches a bullet unless one is already in flight.
// It reports whether a bullet was created.
func (d *Defender) Fire() bool {
	if !d.IsAlive() || d.bullet != nil {
		return false
	}
	d.bullet = newBullet(d.w, d)
	d.w.play(SoundDefenderShoot)
	return true
}

// TouchedBy reports whether a live bomb hits the live defender.
func (d *Defender) TouchedBy(b *Bomb) bool {
	return d.IsAlive() && b.IsAlive() && d.box.Overlaps(b.box)
}

// Explode costs a life and starts the flicker sequence. While it runs the
// defender is neither live nor killable by bombs; the simulation waits for
// it to finish before the rest of the tick proceeds.
func (d *Defender) Explode() {
	if !d.IsAlive() {
		return
	}
	d.exploding = true
	d.lives--
	d.w.play(SoundDefenderKilled)

	d.sprite = SpriteDefenderExplosion
	d.frame = 0
	steps := 2 * d.w.set.FlickerCycles
	for i := 1; i < steps; i++ {
		frame := i % 2
		d.w.clock.After(time.Duration(i)*d.w.set.FlickerFrame, func() {
			if d.exploding {
				d.frame = frame
			}
		})
	}
	d.w.clock.After(d.w.set.FlickerDuration(), d.finishExplosion)
}

func (d *Defender) finishExplosion() {
	if !d.exploding {
		return
	}
	if d.lives > 0 {
		d.exploding = false
		d.sprite = SpriteDefender
		d.frame = 0
		return
	}
	d.Kill()
}

// Kill removes the defender from play for good.
func (d *Defender) Kill() {
	if !d.alive {
		return
	}
	d.alive = false
	d.exploding = false
	d.lives = 0
}
