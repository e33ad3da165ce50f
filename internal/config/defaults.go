package config

import (
	_ "embed"
)

//go:embed defaults/barrage.yaml
var defaultYAML []byte

// Default returns the built-in tuning, used when no YAML can be loaded.
// Values are calibrated for an 80x24 terminal at 60 ticks per second.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:    0.03,
			WindMax:    0.008,
			ShellSpeed: 1.0,
			Dt:         1.0,
			MaxSteps:   4000,
		},
		Terrain: TerrainConfig{
			BaselineFrac: 0.35,
			MaxFrac:      0.75,
			Roughness:    1.0,
			JitterFrac:   0.012,
			Floor:        0,
		},
		Tanks: TanksConfig{
			StartHealth:  100,
			DirectDamage: 35,
			SplashDamage: 25,
			BlastRadius:  5,
			BodyWidth:    5,
			BodyHeight:   2,
			BarrelLength: 3.5,
			MinAngle:     5,
			MaxAngle:     85,
			AngleStep:    1,
			DefaultAngle: 45,
			MinPower:     0.5,
			MaxPower:     1.7,
			PowerStep:    0.04,
			DefaultPower: 1.1,
			EdgeMargin:   0.12,
		},
		AI: AIConfig{
			Budget:     10,
			MinAngle:   30,
			MaxAngle:   80,
			AimJitter:  2,
			ThinkTicks: 30,
		},
	}
}
