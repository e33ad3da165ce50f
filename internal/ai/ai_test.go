package ai

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nbyadav/barrage/internal/config"
	"github.com/nbyadav/barrage/internal/match"
	"github.com/nbyadav/barrage/internal/physics"
	"github.com/nbyadav/barrage/internal/terrain"
)

func testTanks(elev float64) (shooter, target *match.Tank) {
	shooter = &match.Tank{Player: 2, Column: 70, Elevation: elev, Facing: -1, Angle: 45, Power: 1.1}
	target = &match.Tank{Player: 1, Column: 10, Elevation: elev, Facing: 1, Angle: 45, Power: 1.1}
	return shooter, target
}

func params(cfg config.Config) physics.Params {
	return physics.Params{
		Gravity:   cfg.Physics.Gravity,
		WindScale: 1.0,
		Dt:        cfg.Physics.Dt,
		MaxSteps:  cfg.Physics.MaxSteps,
	}
}

func TestChooseWithinLegalRanges(t *testing.T) {
	cfg := config.Default()
	terr := terrain.NewFlat(80, 20, 5)
	shooter, target := testTanks(5)

	for _, wind := range []float64{-cfg.Physics.WindMax, 0, cfg.Physics.WindMax} {
		for seed := int64(0); seed < 10; seed++ {
			rng := rand.New(rand.NewSource(seed))
			aim := Choose(shooter, target, terr, wind, params(cfg), cfg, rng)

			if aim.Angle < cfg.Tanks.MinAngle || aim.Angle > cfg.Tanks.MaxAngle {
				t.Errorf("seed %d wind %v: angle %v out of range", seed, wind, aim.Angle)
			}
			if aim.Power < cfg.Tanks.MinPower || aim.Power > cfg.Tanks.MaxPower {
				t.Errorf("seed %d wind %v: power %v out of range", seed, wind, aim.Power)
			}
		}
	}
}

func TestChooseLandsNearTarget(t *testing.T) {
	cfg := config.Default()
	cfg.AI.Budget = 200
	cfg.AI.AimJitter = 0
	terr := terrain.NewFlat(80, 20, 5)
	shooter, target := testTanks(5)

	rng := rand.New(rand.NewSource(7))
	aim := Choose(shooter, target, terr, 0, params(cfg), cfg, rng)

	// Replay the chosen aim and measure the landing error.
	rad := aim.Angle * math.Pi / 180
	start := physics.Vec2{
		X: shooter.CenterX() + math.Cos(rad)*cfg.Tanks.BarrelLength*float64(shooter.Facing),
		Y: shooter.Elevation + float64(cfg.Tanks.BodyHeight) + math.Sin(rad)*cfg.Tanks.BarrelLength,
	}
	vel := physics.AimVelocity(aim.Angle, aim.Power, cfg.Physics.ShellSpeed, shooter.Facing)
	_, impact := physics.Simulate(start, vel, 0, params(cfg), terr, nil)

	if impact.Kind != physics.ImpactTerrain {
		t.Fatalf("chosen aim impact = %v, want Terrain", impact.Kind)
	}
	if d := math.Abs(impact.Point.X - target.CenterX()); d > 10 {
		t.Errorf("chosen aim lands %v columns from target, want <= 10", d)
	}
}

func TestChooseDeterministicForSameRNG(t *testing.T) {
	cfg := config.Default()
	terr := terrain.New(80, 20, terrain.DefaultOptions(), 42)
	shooter, target := testTanks(terr.HeightAtClamped(70))

	aim1 := Choose(shooter, target, terr, 0.003, params(cfg), cfg, rand.New(rand.NewSource(9)))
	aim2 := Choose(shooter, target, terr, 0.003, params(cfg), cfg, rand.New(rand.NewSource(9)))

	if aim1 != aim2 {
		t.Errorf("aims differ for identical RNG seeds: %+v vs %+v", aim1, aim2)
	}
}

func TestChooseFallbackWithZeroBudget(t *testing.T) {
	cfg := config.Default()
	cfg.AI.Budget = 0
	terr := terrain.NewFlat(80, 20, 5)
	shooter, target := testTanks(5)

	aim := Choose(shooter, target, terr, 0, params(cfg), cfg, rand.New(rand.NewSource(1)))

	wantPower := (cfg.Tanks.MinPower + cfg.Tanks.MaxPower) / 2
	if aim.Angle != 45 || aim.Power != wantPower {
		t.Errorf("fallback aim = %+v, want 45 degrees at %v power", aim, wantPower)
	}
}
