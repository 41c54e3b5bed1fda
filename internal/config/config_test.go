package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BreakerConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("Embedded YAML failed to parse: %v", err)
	}

	hardcoded := DefaultBreakerConfig()
	if fromYAML != hardcoded {
		t.Errorf("Embedded defaults diverged from hardcoded fallback:\nyaml: %+v\ncode: %+v", fromYAML, hardcoded)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := `
physics:
  ball_speed: 500
gameplay:
  lives: 9
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.BallSpeed != 500 {
		t.Errorf("BallSpeed = %v, expected 500 from custom file", cfg.Physics.BallSpeed)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("Lives = %d, expected 9 from custom file", cfg.Gameplay.Lives)
	}
}

func TestLoadMissingCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadInvalidYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: ["), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultBreakerConfig()

	easy := DefaultBreakerConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives <= base.Gameplay.Lives {
		t.Errorf("Easy lives = %d, expected more than %d", easy.Gameplay.Lives, base.Gameplay.Lives)
	}
	if easy.Paddle.Width <= base.Paddle.Width {
		t.Errorf("Easy paddle width = %v, expected wider than %v", easy.Paddle.Width, base.Paddle.Width)
	}
	if easy.Physics.BallSpeed >= base.Physics.BallSpeed {
		t.Errorf("Easy ball speed = %v, expected slower than %v", easy.Physics.BallSpeed, base.Physics.BallSpeed)
	}

	hard := DefaultBreakerConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives >= base.Gameplay.Lives {
		t.Errorf("Hard lives = %d, expected fewer than %d", hard.Gameplay.Lives, base.Gameplay.Lives)
	}
	if hard.Physics.BallSpeed <= base.Physics.BallSpeed {
		t.Errorf("Hard ball speed = %v, expected faster than %v", hard.Physics.BallSpeed, base.Physics.BallSpeed)
	}

	// Normal (and unknown presets) leave the config untouched
	normal := DefaultBreakerConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("Normal preset should not change the config")
	}
}
