package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsSane(t *testing.T) {
	cfg := Default()

	if cfg.Physics.Gravity <= 0 {
		t.Errorf("Gravity = %v, want > 0", cfg.Physics.Gravity)
	}
	if cfg.Physics.MaxSteps <= 0 {
		t.Errorf("MaxSteps = %d, want > 0", cfg.Physics.MaxSteps)
	}
	if cfg.Tanks.MinAngle >= cfg.Tanks.MaxAngle {
		t.Errorf("angle range [%v, %v] is empty", cfg.Tanks.MinAngle, cfg.Tanks.MaxAngle)
	}
	if cfg.Tanks.MinPower >= cfg.Tanks.MaxPower {
		t.Errorf("power range [%v, %v] is empty", cfg.Tanks.MinPower, cfg.Tanks.MaxPower)
	}
	if cfg.Tanks.DefaultAngle < cfg.Tanks.MinAngle || cfg.Tanks.DefaultAngle > cfg.Tanks.MaxAngle {
		t.Errorf("DefaultAngle %v outside [%v, %v]", cfg.Tanks.DefaultAngle, cfg.Tanks.MinAngle, cfg.Tanks.MaxAngle)
	}
	if cfg.Tanks.StartHealth <= 0 {
		t.Errorf("StartHealth = %d, want > 0", cfg.Tanks.StartHealth)
	}
	if cfg.Terrain.BaselineFrac >= cfg.Terrain.MaxFrac {
		t.Errorf("terrain baseline %v >= max %v", cfg.Terrain.BaselineFrac, cfg.Terrain.MaxFrac)
	}
	if cfg.AI.Budget <= 0 {
		t.Errorf("AI.Budget = %d, want > 0", cfg.AI.Budget)
	}
}

func TestLoadEmbeddedMatchesDefault(t *testing.T) {
	// With no custom path and no user/local configs present in the test
	// environment, Load falls through to the embedded YAML, which must
	// mirror the hardcoded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	def := Default()
	if cfg.Physics != def.Physics {
		t.Errorf("embedded physics %+v != default %+v", cfg.Physics, def.Physics)
	}
	if cfg.Tanks != def.Tanks {
		t.Errorf("embedded tanks %+v != default %+v", cfg.Tanks, def.Tanks)
	}
	if cfg.AI != def.AI {
		t.Errorf("embedded ai %+v != default %+v", cfg.AI, def.AI)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte(`
physics:
  gravity: 0.05
  wind_max: 0.01
  shell_speed: 2.0
  dt: 0.5
  max_steps: 1000
tanks:
  start_health: 200
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}

	if cfg.Physics.Gravity != 0.05 {
		t.Errorf("Gravity = %v, want 0.05", cfg.Physics.Gravity)
	}
	if cfg.Physics.MaxSteps != 1000 {
		t.Errorf("MaxSteps = %d, want 1000", cfg.Physics.MaxSteps)
	}
	if cfg.Tanks.StartHealth != 200 {
		t.Errorf("StartHealth = %d, want 200", cfg.Tanks.StartHealth)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load with missing custom path should return an error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		wantBudget int
		wantJitter float64
	}{
		{DifficultyEasy, 4, 6},
		{DifficultyNormal, 10, 2},
		{DifficultyHard, 24, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tt.preset)
			if cfg.AI.Budget != tt.wantBudget {
				t.Errorf("Budget = %d, want %d", cfg.AI.Budget, tt.wantBudget)
			}
			if cfg.AI.AimJitter != tt.wantJitter {
				t.Errorf("AimJitter = %v, want %v", cfg.AI.AimJitter, tt.wantJitter)
			}
		})
	}
}

func TestApplyPresetUnknownLeavesConfig(t *testing.T) {
	cfg := Default()
	before := cfg.AI
	ApplyPreset(&cfg, "nightmare")
	if cfg.AI != before {
		t.Errorf("unknown preset changed AI config: %+v != %+v", cfg.AI, before)
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = false, want true", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("ValidPreset(\"nightmare\") = true, want false")
	}
}
