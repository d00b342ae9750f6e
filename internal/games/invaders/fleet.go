package invaders

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Fleet is the alien grid plus the bombs it has dropped. The grid is a
// fixed row-major array: aliens never leave it, they only die in place.
type Fleet struct {
	w *world

	aliens []*Alien
	bombs  []*Bomb

	dx            int
	lastAnimation time.Duration
	lastDrop      time.Duration
	moveSound     int
}

func newFleet(w *world) *Fleet {
	s := w.set
	f := &Fleet{
		w:      w,
		aliens: make([]*Alien, 0, s.Rows*s.Columns),
		dx:     s.FleetStep,
		// Both cadences are due on the very first tick.
		lastAnimation: w.now() - s.AnimationDelay,
		lastDrop:      w.now() - s.BombDelay,
	}
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Columns; col++ {
			f.aliens = append(f.aliens, newAlien(w, row, col))
		}
	}
	return f
}

// Alien returns the alien at the given grid position.
func (f *Fleet) Alien(row, col int) *Alien {
	s := f.w.set
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Columns {
		panic(fmt.Sprintf("invaders: fleet position (%d, %d) outside %dx%d grid", row, col, s.Rows, s.Columns))
	}
	return f.aliens[row*s.Columns+col]
}

// Aliens returns the grid in row-major order.
func (f *Fleet) Aliens() []*Alien { return f.aliens }

// Bombs returns the active bombs in drop order.
func (f *Fleet) Bombs() []*Bomb { return f.bombs }

// Direction returns the current horizontal step, negative when moving left.
func (f *Fleet) Direction() int { return f.dx }

// Box returns the collective bounding box of the aliens still in play.
// It reports false once every alien is dead.
func (f *Fleet) Box() (core.Box, bool) {
	boxes := make([]core.Box, 0, len(f.aliens))
	for _, a := range f.aliens {
		if a.alive {
			boxes = append(boxes, a.box)
		}
	}
	return core.BoundingBox(boxes...)
}

// Cleared reports whether every alien is dead and every bomb is gone.
func (f *Fleet) Cleared() bool {
	if len(f.bombs) > 0 {
		return false
	}
	for _, a := range f.aliens {
		if a.alive {
			return false
		}
	}
	return true
}

// LowestAliveInColumn returns the live alien closest to the defender in
// col, or nil when the column has none.
func (f *Fleet) LowestAliveInColumn(col int) *Alien {
	for row := f.w.set.Rows - 1; row >= 0; row-- {
		if a := f.Alien(row, col); a.IsAlive() {
			return a
		}
	}
	return nil
}

// Advance runs one tick of fleet behavior: the sweep or drop, the
// animation cadence and the bomb-drop policy.
func (f *Fleet) Advance(now time.Duration) {
	s := f.w.set
	animate := now-f.lastAnimation >= s.AnimationDelay

	if box, ok := f.Box(); ok {
		flip := box.Left+f.dx <= 0 || box.Right+f.dx >= s.Width
		for _, a := range f.aliens {
			if flip {
				a.Move(0, s.FleetDrop)
			} else {
				a.Move(f.dx, 0)
			}
			if animate {
				a.Animate()
			}
		}
		if flip {
			f.dx = -f.dx
		}
		f.dropBombs(now)
	}

	if animate {
		f.lastAnimation = now
		f.w.play(AlienMoveSounds[f.moveSound])
		f.moveSound = (f.moveSound + 1) % len(AlienMoveSounds)
	}
}

// dropBombs spawns up to the free bomb slots from the lowest live alien of
// randomly chosen columns.
func (f *Fleet) dropBombs(now time.Duration) {
	s := f.w.set
	if len(f.bombs) >= s.MaxBombs || now-f.lastDrop < s.BombDelay {
		return
	}

	lowest := make([]*Alien, 0, s.Columns)
	for col := 0; col < s.Columns; col++ {
		if a := f.LowestAliveInColumn(col); a != nil {
			lowest = append(lowest, a)
		}
	}
	if len(lowest) == 0 {
		return
	}

	count := f.w.rng.Intn(min(len(lowest), s.MaxBombs-len(f.bombs)) + 1)
	for _, a := range sample(f.w.rng, lowest, count) {
		f.bombs = append(f.bombs, newBomb(f.w, f, a))
	}
	f.lastDrop = now
}

// sample picks n distinct elements uniformly with a partial Fisher-Yates
// shuffle over a copy of items.
func sample(rng Rand, items []*Alien, n int) []*Alien {
	pool := append([]*Alien(nil), items...)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// ManageTouchedAliensBy resolves at most one hit of the defender's bullet
// against the grid, scanning in row-major order. The hit alien explodes,
// the bullet is removed and its worth is credited to the defender.
// It returns the alien hit, or nil.
func (f *Fleet) ManageTouchedAliensBy(d *Defender) *Alien {
	b := d.bullet
	if b == nil {
		return nil
	}
	for _, a := range f.aliens {
		if !a.TouchedBy(b) {
			continue
		}
		f.w.play(SoundAlienKilled)
		a.Explode()
		b.Kill()
		d.score += a.Worth()
		return a
	}
	return nil
}

// explodeBombs explodes every active bomb.
func (f *Fleet) explodeBombs() {
	for _, b := range append([]*Bomb(nil), f.bombs...) {
		b.Explode()
	}
}

func (f *Fleet) removeBomb(b *Bomb) {
	for i, other := range f.bombs {
		if other == b {
			f.bombs = append(f.bombs[:i], f.bombs[i+1:]...)
			return
		}
	}
	panic("invaders: removing a bomb the fleet does not own")
}
