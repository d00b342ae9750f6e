package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Bullet is the defender's single projectile.
type Bullet struct {
	lifecycle
	w     *world
	owner *Defender

	box    core.Box
	sprite Sprite
}

// newBullet places a bullet centered on the owner, just above its top edge.
func newBullet(w *world, owner *Defender) *Bullet {
	s := w.set
	cx := owner.box.CenterX()
	return &Bullet{
		lifecycle: newLifecycle(),
		w:         w,
		owner:     owner,
		box:       core.NewBox(cx-s.BulletWidth/2, owner.box.Top-s.BulletHeight, s.BulletWidth, s.BulletHeight),
		sprite:    SpriteBullet,
	}
}

// Box returns the bullet's bounding box.
func (b *Bullet) Box() core.Box { return b.box }

// Move advances the bullet upwards, exploding it at the top boundary.
func (b *Bullet) Move() {
	if !b.IsAlive() {
		return
	}
	if b.box.Top > b.w.set.BulletStep {
		b.box = b.box.Translate(0, -b.w.set.BulletStep)
		return
	}
	b.Explode()
}

// Explode shows the burst and removes the bullet after the explosion delay.
func (b *Bullet) Explode() {
	if !b.IsAlive() {
		return
	}
	b.exploding = true
	b.sprite = SpriteBulletExplosion
	b.w.clock.After(b.w.set.Explosion, b.Kill)
}

// Kill removes the bullet and frees the owner's slot.
func (b *Bullet) Kill() {
	if !b.alive {
		return
	}
	b.alive = false
	if b.owner.bullet == b {
		b.owner.bullet = nil
	}
}
