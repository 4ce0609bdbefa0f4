package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML InvadersConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultInvadersConfig() {
		t.Errorf("embedded YAML and hardcoded defaults diverge:\n%+v\nvs\n%+v",
			fromYAML, DefaultInvadersConfig())
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	custom := `
physics:
  base_speed: 300
  sprite_scale: 1.0
  despawn_margin: 50
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg.Physics.BaseSpeed != 300 {
		t.Errorf("BaseSpeed = %v, expected 300 from custom file", cfg.Physics.BaseSpeed)
	}
	if cfg.Physics.SpriteScale != 1.0 {
		t.Errorf("SpriteScale = %v, expected 1.0 from custom file", cfg.Physics.SpriteScale)
	}
}

func TestLoadInvadersMissingCustomPath(t *testing.T) {
	if _, err := LoadInvaders(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing custom config path")
	}
}

func TestLoadInvadersDefaults(t *testing.T) {
	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}

	// Key defaults the simulation relies on
	if cfg.Physics.BaseSpeed != 600 {
		t.Errorf("BaseSpeed = %v, expected 600", cfg.Physics.BaseSpeed)
	}
	if cfg.Player.MaxLasers != 10 {
		t.Errorf("MaxLasers = %d, expected 10", cfg.Player.MaxLasers)
	}
	if cfg.Progression.InitialEnemyCap != 3 || cfg.Progression.RaisedEnemyCap != 10 {
		t.Errorf("enemy caps = %d/%d, expected 3/10",
			cfg.Progression.InitialEnemyCap, cfg.Progression.RaisedEnemyCap)
	}
	if cfg.Explosion.Frames != 16 {
		t.Errorf("explosion frames = %d, expected 16", cfg.Explosion.Frames)
	}
}
