// Package config provides YAML-based game tuning and AI difficulty
// management.
package config

// Config contains all tuning for the artillery duel.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Terrain TerrainConfig `yaml:"terrain"`
	Tanks   TanksConfig   `yaml:"tanks"`
	AI      AIConfig      `yaml:"ai"`
}

// PhysicsConfig defines shell flight parameters.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`     // Downward acceleration per tick
	WindMax    float64 `yaml:"wind_max"`    // Wind magnitude bound, rerolled each turn
	ShellSpeed float64 `yaml:"shell_speed"` // Power-to-velocity scale
	Dt         float64 `yaml:"dt"`          // Integration step
	MaxSteps   int     `yaml:"max_steps"`   // Hard bound on flight length
}

// TerrainConfig defines surface generation parameters.
// Fractions are relative to field height.
type TerrainConfig struct {
	BaselineFrac float64 `yaml:"baseline_frac"`
	MaxFrac      float64 `yaml:"max_frac"`
	Roughness    float64 `yaml:"roughness"`
	JitterFrac   float64 `yaml:"jitter_frac"`
	Floor        float64 `yaml:"floor"`
}

// TanksConfig defines tank hulls, aim ranges and the damage model.
type TanksConfig struct {
	StartHealth  int     `yaml:"start_health"`
	DirectDamage int     `yaml:"direct_damage"` // Damage for a shell entering the hull
	SplashDamage int     `yaml:"splash_damage"` // Max damage at the blast center
	BlastRadius  int     `yaml:"blast_radius"`  // Crater radius in columns
	BodyWidth    int     `yaml:"body_width"`
	BodyHeight   int     `yaml:"body_height"`
	BarrelLength float64 `yaml:"barrel_length"`
	MinAngle     float64 `yaml:"min_angle"`
	MaxAngle     float64 `yaml:"max_angle"`
	AngleStep    float64 `yaml:"angle_step"` // Per-keypress adjustment, degrees
	DefaultAngle float64 `yaml:"default_angle"`
	MinPower     float64 `yaml:"min_power"`
	MaxPower     float64 `yaml:"max_power"`
	PowerStep    float64 `yaml:"power_step"`
	DefaultPower float64 `yaml:"default_power"`
	EdgeMargin   float64 `yaml:"edge_margin"` // Tank placement, fraction of field width
}

// AIConfig bounds the CPU opponent's aim search.
type AIConfig struct {
	Budget     int     `yaml:"budget"`      // Candidate aims evaluated per turn
	MinAngle   float64 `yaml:"min_angle"`   // Candidate angle range
	MaxAngle   float64 `yaml:"max_angle"`
	AimJitter  float64 `yaml:"aim_jitter"`  // Columns of deliberate inaccuracy
	ThinkTicks int     `yaml:"think_ticks"` // Ticks before the CPU fires
}

// DifficultyPreset names an AI skill level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
