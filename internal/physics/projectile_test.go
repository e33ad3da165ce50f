package physics

import (
	"math"
	"testing"

	"github.com/nbyadav/barrage/internal/terrain"
)

func TestAnalyticRange(t *testing.T) {
	// Flat ground, 45 degrees, power 50, no wind, gravity 9.8.
	// Expected range: v^2 * sin(2*theta) / g = 2500 / 9.8 ~= 255.1.
	terr := terrain.NewFlat(400, 400, 0)
	p := Params{
		Gravity:   9.8,
		WindScale: 1.0,
		Dt:        0.001,
		MaxSteps:  20000,
	}

	start := Vec2{X: 10, Y: 0}
	vel := AimVelocity(45, 50, 1.0, 1)

	traj, impact := Simulate(start, vel, 0, p, terr, nil)

	if impact.Kind != ImpactTerrain {
		t.Fatalf("impact kind = %v, want Terrain", impact.Kind)
	}
	if len(traj) == 0 {
		t.Fatal("trajectory is empty")
	}

	wantX := 10 + 2500.0/9.8
	if math.Abs(impact.Point.X-wantX) > 1.0 {
		t.Errorf("impact at x=%v, want %v +- 1.0", impact.Point.X, wantX)
	}
}

func TestDeterminism(t *testing.T) {
	terr := terrain.New(120, 60, terrain.DefaultOptions(), 99)
	p := DefaultParams()
	start := Vec2{X: 15, Y: 40}
	vel := AimVelocity(60, 1.4, 1.0, 1)

	traj1, imp1 := Simulate(start, vel, 0.004, p, terr, nil)
	traj2, imp2 := Simulate(start, vel, 0.004, p, terr, nil)

	if imp1 != imp2 {
		t.Fatalf("impacts differ: %+v vs %+v", imp1, imp2)
	}
	if len(traj1) != len(traj2) {
		t.Fatalf("trajectory lengths differ: %d vs %d", len(traj1), len(traj2))
	}
	for i := range traj1 {
		if traj1[i] != traj2[i] {
			t.Fatalf("step %d differs: %+v vs %+v", i, traj1[i], traj2[i])
		}
	}
}

func TestAllAimsTerminate(t *testing.T) {
	terr := terrain.New(80, 40, terrain.DefaultOptions(), 5)
	p := DefaultParams()

	start := Vec2{X: 10, Y: terr.HeightAtClamped(10) + 4}
	for angle := 5.0; angle <= 85; angle += 10 {
		for power := 0.5; power <= 1.7; power += 0.3 {
			vel := AimVelocity(angle, power, 1.0, 1)
			traj, impact := Simulate(start, vel, 0.006, p, terr, nil)

			if len(traj) == 0 {
				t.Errorf("angle %v power %v: empty trajectory", angle, power)
			}
			if len(traj) > p.MaxSteps {
				t.Errorf("angle %v power %v: %d steps exceeds MaxSteps", angle, power, len(traj))
			}
			if impact.Kind == ImpactNone {
				t.Errorf("angle %v power %v: flight did not terminate", angle, power)
			}
		}
	}
}

func TestTankHit(t *testing.T) {
	terr := terrain.NewFlat(100, 60, 10)
	p := DefaultParams()

	// A box sitting on the ground downrange.
	target := Box{X: 47.5, Y: 10, W: 5, H: 2}

	// Search for an aim that lands a direct hit; one must exist for a
	// target this close on flat ground.
	hit := false
	for angle := 20.0; angle <= 80; angle += 2 {
		start := Vec2{X: 10, Y: 12}
		vel := AimVelocity(angle, 1.2, 1.0, 1)
		_, impact := Simulate(start, vel, 0, p, terr, []Box{target})
		if impact.Kind == ImpactTank {
			if impact.Target != 0 {
				t.Fatalf("Target index = %d, want 0", impact.Target)
			}
			hit = true
			break
		}
	}
	if !hit {
		t.Error("no direct hit found across the angle sweep")
	}
}

func TestOutOfBoundsIsMiss(t *testing.T) {
	terr := terrain.NewFlat(50, 60, 5)
	p := DefaultParams()

	// Nearly flat shot flying off the right edge before dropping.
	start := Vec2{X: 45, Y: 30}
	vel := AimVelocity(10, 1.7, 1.0, 1)

	_, impact := Simulate(start, vel, 0, p, terr, nil)
	if impact.Kind != ImpactMiss {
		t.Errorf("impact kind = %v, want Miss", impact.Kind)
	}
}

func TestWindShiftsImpact(t *testing.T) {
	terr := terrain.NewFlat(300, 200, 0)
	p := DefaultParams()
	start := Vec2{X: 50, Y: 1}
	vel := AimVelocity(45, 1.4, 1.0, 1)

	_, still := Simulate(start, vel, 0, p, terr, nil)
	_, tail := Simulate(start, vel, 0.005, p, terr, nil)
	_, head := Simulate(start, vel, -0.005, p, terr, nil)

	if tail.Point.X <= still.Point.X {
		t.Errorf("tailwind impact %v not beyond calm impact %v", tail.Point.X, still.Point.X)
	}
	if head.Point.X >= still.Point.X {
		t.Errorf("headwind impact %v not short of calm impact %v", head.Point.X, still.Point.X)
	}
}

func TestFlightStepMatchesSimulate(t *testing.T) {
	terr := terrain.New(100, 50, terrain.DefaultOptions(), 3)
	p := DefaultParams()
	start := Vec2{X: 20, Y: 45}
	vel := AimVelocity(50, 1.1, 1.0, 1)

	traj, impact := Simulate(start, vel, 0.002, p, terr, nil)

	f := NewFlight(start, vel, 0.002, p, terr, nil)
	for i := 0; ; i++ {
		pt, done := f.Step()
		if pt != traj[i] {
			t.Fatalf("step %d: flight %+v, simulate %+v", i, pt, traj[i])
		}
		if done {
			if i != len(traj)-1 {
				t.Fatalf("flight finished at step %d, simulate at %d", i, len(traj)-1)
			}
			break
		}
	}
	if f.Impact() != impact {
		t.Errorf("flight impact %+v, simulate impact %+v", f.Impact(), impact)
	}

	// Stepping past the end stays put.
	pt, done := f.Step()
	if !done || pt != f.Pos() {
		t.Error("stepping a finished flight should be a no-op")
	}
}
