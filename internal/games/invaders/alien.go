package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Alien is one member of the fleet grid. A dead alien keeps its slot and
// its last coordinates but takes no further part in the game.
type Alien struct {
	lifecycle
	w *world

	kind     AlienKind
	row, col int
	box      core.Box
	frame    int
}

func newAlien(w *world, row, col int) *Alien {
	s := w.set
	kind := s.RowKinds[row]
	cx := col*(s.CellWidth+s.Gap) + s.CellWidth/2
	cy := row*(s.CellHeight+s.Gap) + s.CellHeight/2
	return &Alien{
		lifecycle: newLifecycle(),
		w:         w,
		kind:      kind,
		row:       row,
		col:       col,
		box:       core.CenteredBox(cx, cy, kind.Width, kind.Height),
	}
}

// Box returns the alien's bounding box.
func (a *Alien) Box() core.Box { return a.box }

// Row returns the alien's grid row.
func (a *Alien) Row() int { return a.row }

// Column returns the alien's grid column.
func (a *Alien) Column() int { return a.col }

// Worth returns the points awarded for shooting this alien.
func (a *Alien) Worth() int { return a.kind.Points }

// Frame returns the current animation frame.
func (a *Alien) Frame() int { return a.frame }

// Animate flips to the next frame.
func (a *Alien) Animate() {
	if !a.IsAlive() {
		return
	}
	a.frame = (a.frame + 1) % a.kind.Sprite.Frames()
}

// Move translates the alien. Exploding aliens keep moving with the fleet.
func (a *Alien) Move(dx, dy int) {
	if !a.alive {
		return
	}
	a.box = a.box.Translate(dx, dy)
}

// TouchedBy reports whether a live bullet hits this live alien.
func (a *Alien) TouchedBy(b *Bullet) bool {
	return a.IsAlive() && b.IsAlive() && a.box.Overlaps(b.box)
}

// Explode shows the burst; the alien dies after the explosion delay.
func (a *Alien) Explode() {
	if !a.IsAlive() {
		return
	}
	a.exploding = true
	a.w.clock.After(a.w.set.Explosion, a.Kill)
}

// Kill hides the alien and leaves its grid slot inert.
func (a *Alien) Kill() {
	if !a.alive {
		return
	}
	a.alive = false
	a.exploding = false
	a.frame = 0
}

func (a *Alien) sprite() Sprite {
	if a.exploding {
		return SpriteAlienExplosion
	}
	return a.kind.Sprite
}
