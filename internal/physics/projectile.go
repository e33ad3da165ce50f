// Package physics implements the ballistic shell integrator. Motion is
// integrated in fixed time steps with gravity and a horizontal wind
// force. Simulation is pure: impacts are classified and returned, and
// the caller applies carving and damage.
package physics

import (
	"math"

	"github.com/nbyadav/barrage/internal/terrain"
)

// Vec2 is a position or velocity in field coordinates.
// X grows rightward, Y is elevation and grows upward.
type Vec2 struct {
	X, Y float64
}

// Params holds the tuning constants for shell flight.
type Params struct {
	Gravity   float64 // Downward acceleration per unit time
	WindScale float64 // Multiplier applied to the match wind value
	Dt        float64 // Fixed integration time step
	MaxSteps  int     // Hard bound on flight length
}

// DefaultParams returns flight constants tuned for an 80-column field
// at 60 ticks per second.
func DefaultParams() Params {
	return Params{
		Gravity:   0.03,
		WindScale: 1.0,
		Dt:        1.0,
		MaxSteps:  4000,
	}
}

// Box is an axis-aligned bounding region in field coordinates,
// anchored at its bottom-left corner. Used for tank hulls.
type Box struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// ImpactKind classifies how a flight ended.
type ImpactKind int

const (
	ImpactNone    ImpactKind = iota // Flight still in progress
	ImpactTerrain                   // Shell hit the ground
	ImpactTank                      // Shell entered a tank's bounding region
	ImpactMiss                      // Shell left the field or exhausted MaxSteps
)

// String returns a human-readable name for the impact kind.
func (k ImpactKind) String() string {
	switch k {
	case ImpactNone:
		return "None"
	case ImpactTerrain:
		return "Terrain"
	case ImpactTank:
		return "Tank"
	case ImpactMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Impact describes the end of a flight.
type Impact struct {
	Kind   ImpactKind
	Point  Vec2
	Target int // Index into the targets slice for ImpactTank, else -1
}

// AimVelocity converts an aim (angle in degrees from horizontal, shot
// power, facing direction) into an initial velocity vector.
func AimVelocity(angleDeg, power, speedScale float64, facing int) Vec2 {
	rad := angleDeg * math.Pi / 180
	speed := power * speedScale
	return Vec2{
		X: math.Cos(rad) * speed * float64(facing),
		Y: math.Sin(rad) * speed,
	}
}

// Flight integrates a single shell one step at a time. The platform
// drives it once per tick so trajectories unfold at frame rate; given
// identical inputs a flight is fully deterministic.
type Flight struct {
	pos     Vec2
	vel     Vec2
	wind    float64
	params  Params
	terr    *terrain.Terrain
	targets []Box
	steps   int
	impact  Impact
	done    bool
}

// NewFlight starts a shell at pos with the given velocity.
func NewFlight(pos, vel Vec2, wind float64, p Params, terr *terrain.Terrain, targets []Box) *Flight {
	return &Flight{
		pos:     pos,
		vel:     vel,
		wind:    wind,
		params:  p,
		terr:    terr,
		targets: targets,
		impact:  Impact{Kind: ImpactNone, Target: -1},
	}
}

// Pos returns the shell's current position.
func (f *Flight) Pos() Vec2 {
	return f.pos
}

// Done reports whether the flight has terminated.
func (f *Flight) Done() bool {
	return f.done
}

// Impact returns the impact classification. Kind is ImpactNone until
// the flight is done.
func (f *Flight) Impact() Impact {
	return f.impact
}

// Step advances the shell by one fixed time step and returns the new
// position and whether the flight has terminated. Stepping a finished
// flight is a no-op.
func (f *Flight) Step() (Vec2, bool) {
	if f.done {
		return f.pos, true
	}

	dt := f.params.Dt
	f.vel.X += f.wind * f.params.WindScale * dt
	f.vel.Y -= f.params.Gravity * dt
	f.pos.X += f.vel.X * dt
	f.pos.Y += f.vel.Y * dt
	f.steps++

	// Direct hit beats terrain: tank hulls sit on the surface.
	for i, box := range f.targets {
		if box.Contains(f.pos) {
			f.finish(Impact{Kind: ImpactTank, Point: f.pos, Target: i})
			return f.pos, true
		}
	}

	col := int(math.Floor(f.pos.X))
	ground, err := f.terr.HeightAt(col)
	if err != nil {
		// Left the field horizontally.
		f.finish(Impact{Kind: ImpactMiss, Point: f.pos, Target: -1})
		return f.pos, true
	}
	if f.pos.Y <= ground {
		f.finish(Impact{Kind: ImpactTerrain, Point: f.pos, Target: -1})
		return f.pos, true
	}

	if f.steps >= f.params.MaxSteps {
		f.finish(Impact{Kind: ImpactMiss, Point: f.pos, Target: -1})
		return f.pos, true
	}

	return f.pos, false
}

func (f *Flight) finish(impact Impact) {
	f.impact = impact
	f.done = true
}

// Simulate runs a complete flight and returns the trajectory (every
// intermediate position, in order) and the impact. Deterministic for
// identical inputs; the trajectory is always non-empty and finite.
func Simulate(pos, vel Vec2, wind float64, p Params, terr *terrain.Terrain, targets []Box) ([]Vec2, Impact) {
	f := NewFlight(pos, vel, wind, p, terr, targets)
	traj := make([]Vec2, 0, 64)
	for {
		pt, done := f.Step()
		traj = append(traj, pt)
		if done {
			return traj, f.Impact()
		}
	}
}
