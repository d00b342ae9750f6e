// Package config provides file-based game configuration for the invaders
// simulation: YAML (and TOML) loading with embedded defaults and validation.
package config

import (
	"errors"
	"fmt"
	"math"
)

// InvadersConfig contains every tunable constant of the simulation.
// Sizes are in unscaled sprite pixels; Scale.Image multiplies them into
// playfield pixels, Scale.Speed multiplies steps and divides cadences.
type InvadersConfig struct {
	Scale     ScaleConfig      `yaml:"scale" toml:"scale"`
	Playfield PlayfieldConfig  `yaml:"playfield" toml:"playfield"`
	Timing    TimingConfig     `yaml:"timing" toml:"timing"`
	Defender  DefenderConfig   `yaml:"defender" toml:"defender"`
	Bullet    ProjectileConfig `yaml:"bullet" toml:"bullet"`
	Bomb      ProjectileConfig `yaml:"bomb" toml:"bomb"`
	Fleet     FleetConfig      `yaml:"fleet" toml:"fleet"`
	Aliens    AliensConfig     `yaml:"aliens" toml:"aliens"`
}

// ScaleConfig defines the global size and speed multipliers.
// Speed may be fractional (1.5 runs the game half again as fast).
type ScaleConfig struct {
	Image int     `yaml:"image" toml:"image"`
	Speed float64 `yaml:"speed" toml:"speed"`
}

// PlayfieldConfig fixes the playfield size in playfield pixels.
// Zero values derive it from the fleet: 1.5x its width, 2.5x its height.
type PlayfieldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// TimingConfig holds every delay, in milliseconds.
type TimingConfig struct {
	TickMs           int `yaml:"tick_ms" toml:"tick_ms"`
	StartDelayMs     int `yaml:"start_delay_ms" toml:"start_delay_ms"`
	ExplosionMs      int `yaml:"explosion_ms" toml:"explosion_ms"`
	FlickerFrameMs   int `yaml:"flicker_frame_ms" toml:"flicker_frame_ms"`
	FlickerCycles    int `yaml:"flicker_cycles" toml:"flicker_cycles"`
	AnimationDelayMs int `yaml:"animation_delay_ms" toml:"animation_delay_ms"`
	BombDelayMs      int `yaml:"bomb_delay_ms" toml:"bomb_delay_ms"`
}

// DefenderConfig defines the player ship.
type DefenderConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	Step   int `yaml:"step" toml:"step"`
	Lives  int `yaml:"lives" toml:"lives"`
}

// ProjectileConfig defines a bullet or bomb.
type ProjectileConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	Step   int `yaml:"step" toml:"step"`
}

// FleetConfig defines the alien grid and its pacing.
type FleetConfig struct {
	Rows     int      `yaml:"rows" toml:"rows"`
	Columns  int      `yaml:"columns" toml:"columns"`
	InnerGap int      `yaml:"inner_gap" toml:"inner_gap"`
	StepX    int      `yaml:"step_x" toml:"step_x"`
	DropY    int      `yaml:"drop_y" toml:"drop_y"`
	MaxBombs int      `yaml:"max_bombs" toml:"max_bombs"`
	RowKinds []string `yaml:"row_kinds" toml:"row_kinds"`
}

// AliensConfig defines the three alien kinds.
type AliensConfig struct {
	Squid   AlienKindConfig `yaml:"squid" toml:"squid"`
	Crab    AlienKindConfig `yaml:"crab" toml:"crab"`
	Octopus AlienKindConfig `yaml:"octopus" toml:"octopus"`
}

// AlienKindConfig defines the sprite size and worth of one alien kind.
type AlienKindConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	Points int `yaml:"points" toml:"points"`
}

// Alien kind names accepted in fleet.row_kinds.
const (
	KindSquid   = "squid"
	KindCrab    = "crab"
	KindOctopus = "octopus"
)

// Kind returns the configuration of a named alien kind.
func (a AliensConfig) Kind(name string) (AlienKindConfig, bool) {
	switch name {
	case KindSquid:
		return a.Squid, true
	case KindCrab:
		return a.Crab, true
	case KindOctopus:
		return a.Octopus, true
	}
	return AlienKindConfig{}, false
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid invaders configuration")

// Validate checks that the configuration can drive a simulation.
func (c InvadersConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"scale.image", c.Scale.Image},
		{"timing.tick_ms", c.Timing.TickMs},
		{"timing.explosion_ms", c.Timing.ExplosionMs},
		{"timing.flicker_frame_ms", c.Timing.FlickerFrameMs},
		{"timing.flicker_cycles", c.Timing.FlickerCycles},
		{"timing.animation_delay_ms", c.Timing.AnimationDelayMs},
		{"timing.bomb_delay_ms", c.Timing.BombDelayMs},
		{"defender.width", c.Defender.Width},
		{"defender.height", c.Defender.Height},
		{"defender.step", c.Defender.Step},
		{"defender.lives", c.Defender.Lives},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
		{"bullet.step", c.Bullet.Step},
		{"bomb.width", c.Bomb.Width},
		{"bomb.height", c.Bomb.Height},
		{"bomb.step", c.Bomb.Step},
		{"fleet.rows", c.Fleet.Rows},
		{"fleet.columns", c.Fleet.Columns},
		{"fleet.step_x", c.Fleet.StepX},
		{"fleet.drop_y", c.Fleet.DropY},
		{"fleet.max_bombs", c.Fleet.MaxBombs},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.value)
		}
	}

	if !(c.Scale.Speed > 0) || math.IsInf(c.Scale.Speed, 0) {
		return fmt.Errorf("%w: scale.speed must be positive, got %v", ErrInvalid, c.Scale.Speed)
	}
	if c.Timing.StartDelayMs < 0 {
		return fmt.Errorf("%w: timing.start_delay_ms must not be negative", ErrInvalid)
	}
	if c.Fleet.InnerGap < 0 {
		return fmt.Errorf("%w: fleet.inner_gap must not be negative", ErrInvalid)
	}
	if c.Playfield.Width < 0 || c.Playfield.Height < 0 {
		return fmt.Errorf("%w: playfield size must not be negative", ErrInvalid)
	}
	if len(c.Fleet.RowKinds) != c.Fleet.Rows {
		return fmt.Errorf("%w: fleet.row_kinds has %d entries for %d rows",
			ErrInvalid, len(c.Fleet.RowKinds), c.Fleet.Rows)
	}
	for i, name := range c.Fleet.RowKinds {
		kind, ok := c.Aliens.Kind(name)
		if !ok {
			return fmt.Errorf("%w: fleet.row_kinds[%d] is unknown kind %q", ErrInvalid, i, name)
		}
		if kind.Width <= 0 || kind.Height <= 0 || kind.Points < 0 {
			return fmt.Errorf("%w: aliens.%s has invalid size or points", ErrInvalid, name)
		}
	}
	return nil
}
