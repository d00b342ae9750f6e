package invaders

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// AlienKind is the look and worth shared by one band of fleet rows.
type AlienKind struct {
	Sprite Sprite
	Width  int
	Height int
	Points int
}

// Settings is the immutable, pre-scaled form of config.InvadersConfig.
// All sizes and steps are playfield pixels; all delays are simulation time.
// It is built once and shared by pointer with every entity.
type Settings struct {
	Width, Height int

	Tick           time.Duration
	StartDelay     time.Duration
	Explosion      time.Duration
	FlickerFrame   time.Duration
	FlickerCycles  int
	AnimationDelay time.Duration
	BombDelay      time.Duration

	DefenderWidth, DefenderHeight int
	DefenderStep                  int
	Lives                         int

	BulletWidth, BulletHeight, BulletStep int
	BombWidth, BombHeight, BombStep       int

	Rows, Columns int
	Gap           int
	FleetStep     int
	FleetDrop     int
	MaxBombs      int
	RowKinds      []AlienKind

	// CellWidth and CellHeight are the largest alien sprite, which sets the
	// grid pitch together with Gap.
	CellWidth, CellHeight int
}

var kindSprites = map[string]Sprite{
	config.KindSquid:   SpriteSquid,
	config.KindCrab:    SpriteCrab,
	config.KindOctopus: SpriteOctopus,
}

// NewSettings validates cfg and scales it into playfield units.
func NewSettings(cfg config.InvadersConfig) (*Settings, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	img := cfg.Scale.Image
	speed := cfg.Scale.Speed
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	// Steps never round down to a standstill.
	fast := func(step int) int { return max(1, int(math.Round(float64(step)*speed))) }
	often := func(v int) time.Duration { return time.Duration(float64(ms(v)) / speed) }

	s := &Settings{
		Tick:           ms(cfg.Timing.TickMs),
		StartDelay:     ms(cfg.Timing.StartDelayMs),
		Explosion:      ms(cfg.Timing.ExplosionMs),
		FlickerFrame:   ms(cfg.Timing.FlickerFrameMs),
		FlickerCycles:  cfg.Timing.FlickerCycles,
		AnimationDelay: often(cfg.Timing.AnimationDelayMs),
		BombDelay:      often(cfg.Timing.BombDelayMs),

		DefenderWidth:  cfg.Defender.Width * img,
		DefenderHeight: cfg.Defender.Height * img,
		DefenderStep:   fast(cfg.Defender.Step),
		Lives:          cfg.Defender.Lives,

		BulletWidth:  cfg.Bullet.Width * img,
		BulletHeight: cfg.Bullet.Height * img,
		BulletStep:   fast(cfg.Bullet.Step),
		BombWidth:    cfg.Bomb.Width * img,
		BombHeight:   cfg.Bomb.Height * img,
		BombStep:     fast(cfg.Bomb.Step),

		Rows:      cfg.Fleet.Rows,
		Columns:   cfg.Fleet.Columns,
		Gap:       cfg.Fleet.InnerGap * img,
		FleetStep: fast(cfg.Fleet.StepX),
		FleetDrop: fast(cfg.Fleet.DropY),
		MaxBombs:  cfg.Fleet.MaxBombs,
	}

	for _, name := range cfg.Fleet.RowKinds {
		k, _ := cfg.Aliens.Kind(name)
		kind := AlienKind{
			Sprite: kindSprites[name],
			Width:  k.Width * img,
			Height: k.Height * img,
			Points: k.Points,
		}
		s.RowKinds = append(s.RowKinds, kind)
		s.CellWidth = max(s.CellWidth, kind.Width)
		s.CellHeight = max(s.CellHeight, kind.Height)
	}

	s.Width, s.Height = cfg.Playfield.Width, cfg.Playfield.Height
	if s.Width == 0 {
		s.Width = s.FleetWidth() * 3 / 2
	}
	if s.Height == 0 {
		s.Height = s.FleetHeight() * 5 / 2
	}
	if s.Width < s.FleetWidth() || s.Height < s.FleetHeight()+s.DefenderHeight {
		return nil, fmt.Errorf("%w: playfield %dx%d cannot hold the fleet and defender",
			config.ErrInvalid, s.Width, s.Height)
	}
	return s, nil
}

// DefaultSettings returns the scaled arcade constants.
func DefaultSettings() *Settings {
	s, err := NewSettings(config.DefaultInvadersConfig())
	if err != nil {
		panic(fmt.Sprintf("invaders: default settings are invalid: %v", err))
	}
	return s
}

// FleetWidth is the width of a fresh fleet formation.
func (s *Settings) FleetWidth() int {
	return s.Columns*(s.CellWidth+s.Gap) - s.Gap
}

// FleetHeight is the height of a fresh fleet formation.
func (s *Settings) FleetHeight() int {
	return s.Rows*(s.CellHeight+s.Gap) - s.Gap
}

// FlickerDuration is how long a defender explosion suspends the simulation:
// the full flicker sequence minus one explosion delay.
func (s *Settings) FlickerDuration() time.Duration {
	d := s.FlickerFrame*time.Duration(2*s.FlickerCycles) - s.Explosion
	if d < s.Tick {
		return s.Tick
	}
	return d
}
