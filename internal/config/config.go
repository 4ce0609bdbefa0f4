// Package config provides YAML-based gameplay configuration loading for the
// invaders simulation.
package config

// InvadersConfig contains all gameplay tuning for the shooter.
type InvadersConfig struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Explosion   ExplosionConfig   `yaml:"explosion"`
	Progression ProgressionConfig `yaml:"progression"`
}

// PhysicsConfig defines shared movement parameters.
type PhysicsConfig struct {
	// BaseSpeed multiplies every entity velocity, which is expressed in
	// units per second before scaling.
	BaseSpeed float64 `yaml:"base_speed"`
	// SpriteScale is applied to every entity's base sprite size.
	SpriteScale float64 `yaml:"sprite_scale"`
	// DespawnMargin extends the play area on all sides; auto-despawn
	// entities are culled once they leave the extended area.
	DespawnMargin float64 `yaml:"despawn_margin"`
}

// PlayerConfig defines the player ship and its lasers.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`        // Base sprite width in world units
	Height      float64 `yaml:"height"`       // Base sprite height in world units
	LaserWidth  float64 `yaml:"laser_width"`  // Laser base sprite width
	LaserHeight float64 `yaml:"laser_height"` // Laser base sprite height
	MaxLasers   int     `yaml:"max_lasers"`   // Cap on simultaneously live player lasers
	LaserXInset float64 `yaml:"laser_x_inset"`
	LaserYRise  float64 `yaml:"laser_y_rise"` // Vertical offset of the muzzle above the ship center
	MoveSpeed   float64 `yaml:"move_speed"`   // Horizontal velocity magnitude (pre base-speed)
}

// EnemyConfig defines enemies and their lasers.
type EnemyConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	LaserWidth    float64 `yaml:"laser_width"`
	LaserHeight   float64 `yaml:"laser_height"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawn attempts
	FireInterval  float64 `yaml:"fire_interval"`  // Seconds between volleys
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Border kept clear when picking spawn positions
	Drift         float64 `yaml:"drift"`          // Per-frame random velocity perturbation magnitude
	LaserXInset   float64 `yaml:"laser_x_inset"`
}

// ExplosionConfig defines the explosion animation.
type ExplosionConfig struct {
	Frames    int     `yaml:"frames"`     // Animation length in frames
	FrameTime float64 `yaml:"frame_time"` // Seconds per frame
}

// ProgressionConfig defines the score-driven session progression.
type ProgressionConfig struct {
	InitialEnemyCap int `yaml:"initial_enemy_cap"`
	RaisedEnemyCap  int `yaml:"raised_enemy_cap"`
	CapScore        int `yaml:"cap_score"`     // Score at which the enemy cap is raised
	UpgradeScore    int `yaml:"upgrade_score"` // Score at which the laser upgrade unlocks
}
