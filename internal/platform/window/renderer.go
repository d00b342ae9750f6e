package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

type spriteKey struct {
	sprite invaders.Sprite
	frame  int
}

// spriteRenderer draws entities onto an ebiten image, stretching each
// bitmap over the entity's box.
type spriteRenderer struct {
	images  map[spriteKey]*ebiten.Image
	screen  *ebiten.Image
	offsetY float64
}

func newSpriteRenderer() *spriteRenderer {
	return &spriteRenderer{images: make(map[spriteKey]*ebiten.Image)}
}

func (r *spriteRenderer) image(s invaders.Sprite, frame int) *ebiten.Image {
	key := spriteKey{s, frame % max(s.Frames(), 1)}
	if img, ok := r.images[key]; ok {
		return img
	}
	src := bitmap(s, key.frame)
	if src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	r.images[key] = img
	return img
}

// DrawSprite implements invaders.Renderer.
func (r *spriteRenderer) DrawSprite(s invaders.Sprite, frame int, box core.Box) {
	img := r.image(s, frame)
	if img == nil || box.Width() <= 0 || box.Height() <= 0 {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(box.Width())/float64(w), float64(box.Height())/float64(h))
	op.GeoM.Translate(float64(box.Left), float64(box.Top)+r.offsetY)
	r.screen.DrawImage(img, op)
}
