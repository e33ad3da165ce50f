// Package ai implements the CPU opponent: a bounded sampling search
// over candidate aims, each scored by simulating the shot against the
// live terrain and wind.
package ai

import (
	"math"
	"math/rand"

	"github.com/nbyadav/barrage/internal/config"
	"github.com/nbyadav/barrage/internal/match"
	"github.com/nbyadav/barrage/internal/physics"
	"github.com/nbyadav/barrage/internal/terrain"
)

// Aim is a chosen angle/power pair, always within legal ranges.
type Aim struct {
	Angle float64
	Power float64
}

// Choose picks an aim for the shooter against the target. It samples
// up to cfg.AI.Budget candidate aims, simulates each, and keeps the
// one whose impact lands closest to the target column. When nothing
// improves on the fallback (45 degrees, mid power) within budget, the
// fallback is returned. Never stalls the turn: the work is strictly
// bounded by the budget and the physics step limit.
func Choose(shooter, target *match.Tank, terr *terrain.Terrain, wind float64, p physics.Params, cfg config.Config, rng *rand.Rand) Aim {
	tanks := cfg.Tanks
	best := Aim{
		Angle: clampF(45, tanks.MinAngle, tanks.MaxAngle),
		Power: (tanks.MinPower + tanks.MaxPower) / 2,
	}
	bestDist := math.Inf(1)

	// Deliberate inaccuracy: lower difficulties aim at a jittered
	// column rather than the true target.
	targetX := target.CenterX()
	if cfg.AI.AimJitter > 0 {
		targetX += (rng.Float64()*2 - 1) * cfg.AI.AimJitter
	}

	for i := 0; i < cfg.AI.Budget; i++ {
		angle := cfg.AI.MinAngle + rng.Float64()*(cfg.AI.MaxAngle-cfg.AI.MinAngle)
		angle = clampF(angle, tanks.MinAngle, tanks.MaxAngle)
		power := tanks.MinPower + rng.Float64()*(tanks.MaxPower-tanks.MinPower)

		start := muzzle(shooter, angle, tanks)
		vel := physics.AimVelocity(angle, power, cfg.Physics.ShellSpeed, shooter.Facing)
		_, impact := physics.Simulate(start, vel, wind, p, terr, nil)

		if impact.Kind != physics.ImpactTerrain {
			continue
		}
		d := math.Abs(impact.Point.X - targetX)
		if d < bestDist {
			bestDist = d
			best = Aim{Angle: angle, Power: power}
		}
	}

	return best
}

// muzzle mirrors the match's shell spawn point so probe shots fly the
// same path a real one would.
func muzzle(t *match.Tank, angle float64, tanks config.TanksConfig) physics.Vec2 {
	rad := angle * math.Pi / 180
	return physics.Vec2{
		X: t.CenterX() + math.Cos(rad)*tanks.BarrelLength*float64(t.Facing),
		Y: t.Elevation + float64(tanks.BodyHeight) + math.Sin(rad)*tanks.BarrelLength,
	}
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
