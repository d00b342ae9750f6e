package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Bomb is a projectile dropped by the lowest alien of a column.
type Bomb struct {
	lifecycle
	w      *world
	fleet  *Fleet
	source *Alien

	variant Sprite
	box     core.Box
	frame   int
}

// newBomb places a bomb centered under its source alien.
func newBomb(w *world, fleet *Fleet, source *Alien) *Bomb {
	s := w.set
	variant := BombVariants[w.rng.Intn(len(BombVariants))]
	cx := source.box.Left + source.box.Width()/2
	return &Bomb{
		lifecycle: newLifecycle(),
		w:         w,
		fleet:     fleet,
		source:    source,
		variant:   variant,
		box:       core.NewBox(cx-s.BombWidth/2, source.box.Bottom, s.BombWidth, s.BombHeight),
	}
}

// Box returns the bomb's bounding box.
func (b *Bomb) Box() core.Box { return b.box }

// Source returns the alien that dropped the bomb.
func (b *Bomb) Source() *Alien { return b.source }

// Move drops the bomb, exploding it when it cannot clear the bottom edge.
func (b *Bomb) Move() {
	if !b.IsAlive() {
		return
	}
	if b.box.Bottom+b.w.set.BombStep < b.w.set.Height {
		b.box = b.box.Translate(0, b.w.set.BombStep)
		return
	}
	b.Explode()
}

// Animate cycles the bomb's frames; it is called every tick it moves.
func (b *Bomb) Animate() {
	if !b.IsAlive() {
		return
	}
	b.frame = (b.frame + 1) % b.variant.Frames()
}

// Explode shows the burst and removes the bomb after the explosion delay.
func (b *Bomb) Explode() {
	if !b.IsAlive() {
		return
	}
	b.exploding = true
	b.w.clock.After(b.w.set.Explosion, b.Kill)
}

// Kill deregisters the bomb from its fleet.
func (b *Bomb) Kill() {
	if !b.alive {
		return
	}
	b.alive = false
	b.fleet.removeBomb(b)
}

func (b *Bomb) sprite() Sprite {
	if b.exploding {
		return SpriteBombExplosion
	}
	return b.variant
}
