package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default gameplay configuration,
// mirroring the embedded YAML.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Physics: PhysicsConfig{
			BaseSpeed:     600,
			SpriteScale:   0.5,
			DespawnMargin: 200,
		},
		Player: PlayerConfig{
			Width:       144,
			Height:      75,
			LaserWidth:  9,
			LaserHeight: 54,
			MaxLasers:   10,
			LaserXInset: 5,
			LaserYRise:  15,
			MoveSpeed:   1,
		},
		Enemy: EnemyConfig{
			Width:         144,
			Height:        75,
			LaserWidth:    17,
			LaserHeight:   55,
			SpawnInterval: 1.0,
			FireInterval:  1.0,
			SpawnMargin:   100,
			Drift:         0.05,
			LaserXInset:   25,
		},
		Explosion: ExplosionConfig{
			Frames:    16,
			FrameTime: 0.05,
		},
		Progression: ProgressionConfig{
			InitialEnemyCap: 3,
			RaisedEnemyCap:  10,
			CapScore:        5,
			UpgradeScore:    50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
