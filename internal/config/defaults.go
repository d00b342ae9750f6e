package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hardcoded arcade constants.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Scale: ScaleConfig{
			Image: 5,
			Speed: 1,
		},
		Timing: TimingConfig{
			TickMs:           30,
			StartDelayMs:     10,
			ExplosionMs:      60,
			FlickerFrameMs:   120,
			FlickerCycles:    5,
			AnimationDelayMs: 800,
			BombDelayMs:      400,
		},
		Defender: DefenderConfig{
			Width:  13,
			Height: 8,
			Step:   20,
			Lives:  3,
		},
		Bullet: ProjectileConfig{
			Width:  1,
			Height: 4,
			Step:   18,
		},
		Bomb: ProjectileConfig{
			Width:  3,
			Height: 7,
			Step:   8,
		},
		Fleet: FleetConfig{
			Rows:     5,
			Columns:  11,
			InnerGap: 4,
			StepX:    3,
			DropY:    15,
			MaxBombs: 3,
			RowKinds: []string{KindSquid, KindCrab, KindCrab, KindOctopus, KindOctopus},
		},
		Aliens: AliensConfig{
			Squid:   AlienKindConfig{Width: 8, Height: 8, Points: 30},
			Crab:    AlienKindConfig{Width: 11, Height: 8, Points: 20},
			Octopus: AlienKindConfig{Width: 12, Height: 8, Points: 10},
		},
	}
}
