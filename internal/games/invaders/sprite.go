package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Sprite identifies the visual an entity currently shows.
type Sprite int

const (
	SpriteDefender Sprite = iota
	SpriteDefenderExplosion
	SpriteBullet
	SpriteBulletExplosion
	SpriteSquid
	SpriteCrab
	SpriteOctopus
	SpriteAlienExplosion
	SpriteBombA
	SpriteBombB
	SpriteBombC
	SpriteBombExplosion
)

// BombVariants lists the cosmetic bomb looks chosen at random on spawn.
var BombVariants = [...]Sprite{SpriteBombA, SpriteBombB, SpriteBombC}

// Frames returns how many animation frames a sprite has.
func (s Sprite) Frames() int {
	switch s {
	case SpriteSquid, SpriteCrab, SpriteOctopus, SpriteDefenderExplosion:
		return 2
	case SpriteBombA, SpriteBombB, SpriteBombC:
		return 4
	default:
		return 1
	}
}

func (s Sprite) String() string {
	switch s {
	case SpriteDefender:
		return "defender"
	case SpriteDefenderExplosion:
		return "defender_explosion"
	case SpriteBullet:
		return "bullet"
	case SpriteBulletExplosion:
		return "bullet_explosion"
	case SpriteSquid:
		return "squid"
	case SpriteCrab:
		return "crab"
	case SpriteOctopus:
		return "octopus"
	case SpriteAlienExplosion:
		return "alien_explosion"
	case SpriteBombA:
		return "bomb_a"
	case SpriteBombB:
		return "bomb_b"
	case SpriteBombC:
		return "bomb_c"
	case SpriteBombExplosion:
		return "bomb_explosion"
	default:
		return "unknown"
	}
}

// Renderer draws entity visuals. The simulation owns all geometry; a
// renderer only receives the sprite, its frame and the box to fill.
type Renderer interface {
	DrawSprite(s Sprite, frame int, box core.Box)
}
