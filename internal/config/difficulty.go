package config

// ApplyPreset adjusts the AI search parameters for a named difficulty.
// An unknown or empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.Budget = 4
		cfg.AI.AimJitter = 6
		cfg.AI.ThinkTicks = 60
	case DifficultyNormal:
		cfg.AI.Budget = 10
		cfg.AI.AimJitter = 2
		cfg.AI.ThinkTicks = 30
	case DifficultyHard:
		cfg.AI.Budget = 24
		cfg.AI.AimJitter = 0
		cfg.AI.ThinkTicks = 15
	}
}

// ValidPreset reports whether the preset string names a difficulty.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
