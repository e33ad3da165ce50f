// Package terrain implements the destructible heightmap the tanks stand
// on and shells collide with. Heights are elevations measured up from
// the field floor, one value per column.
package terrain

import (
	"errors"
	"math"
	"math/rand"
)

// ErrOutOfBounds is returned when a column outside the field is queried.
var ErrOutOfBounds = errors.New("terrain: column out of bounds")

// Options controls procedural surface generation.
// Fractions are relative to the field height so the same shape works
// for any terminal size.
type Options struct {
	BaselineFrac float64 // Mean surface elevation as a fraction of field height
	MaxFrac      float64 // Highest allowed elevation as a fraction of field height
	Roughness    float64 // Scales the layered-wave amplitudes (1.0 = default hills)
	JitterFrac   float64 // Per-column random jitter as a fraction of field height
	Floor        float64 // Lowest elevation craters may reach
}

// DefaultOptions returns generation options tuned for rolling hills.
func DefaultOptions() Options {
	return Options{
		BaselineFrac: 0.35,
		MaxFrac:      0.75,
		Roughness:    1.0,
		JitterFrac:   0.012,
		Floor:        0,
	}
}

// Terrain is an owned mutable heightmap. It is mutated only through
// CarveCrater and Regenerate; callers render from copies.
type Terrain struct {
	width       int
	fieldHeight int
	opts        Options
	heights     []float64
}

// New creates a terrain of the given width and field height and
// generates an initial surface from the seed.
func New(width, fieldHeight int, opts Options, seed int64) *Terrain {
	t := &Terrain{
		width:       width,
		fieldHeight: fieldHeight,
		opts:        opts,
		heights:     make([]float64, width),
	}
	t.Regenerate(seed)
	return t
}

// NewFlat creates a terrain with a uniform elevation. Used by tests and
// by the AI when probing hypothetical shots is not needed.
func NewFlat(width, fieldHeight int, elevation float64) *Terrain {
	t := &Terrain{
		width:       width,
		fieldHeight: fieldHeight,
		opts:        DefaultOptions(),
		heights:     make([]float64, width),
	}
	for i := range t.heights {
		t.heights[i] = elevation
	}
	return t
}

// Width returns the field width in columns.
func (t *Terrain) Width() int {
	return t.width
}

// FieldHeight returns the vertical extent of the play field.
func (t *Terrain) FieldHeight() int {
	return t.fieldHeight
}

// Floor returns the elevation craters bottom out at.
func (t *Terrain) Floor() float64 {
	return t.opts.Floor
}

// HeightAt returns the surface elevation at the given column.
// Columns outside the field return ErrOutOfBounds.
func (t *Terrain) HeightAt(col int) (float64, error) {
	if col < 0 || col >= t.width {
		return 0, ErrOutOfBounds
	}
	return t.heights[col], nil
}

// HeightAtClamped returns the surface elevation at the column nearest
// to col. Never fails; used where out-of-range lookups should clamp.
func (t *Terrain) HeightAtClamped(col int) float64 {
	if col < 0 {
		col = 0
	}
	if col >= t.width {
		col = t.width - 1
	}
	return t.heights[col]
}

// Regenerate replaces the surface with a new procedurally generated one.
// Layered sine waves give the large shapes; seeded jitter roughs up the
// columns. Tank resting elevations must be recomputed by the caller.
func (t *Terrain) Regenerate(seed int64) {
	rng := rand.New(rand.NewSource(seed))

	h := float64(t.fieldHeight)
	baseline := h * t.opts.BaselineFrac
	maxElev := h * t.opts.MaxFrac
	jitter := h * t.opts.JitterFrac

	// Amplitudes are fractions of field height so the profile scales
	// with the terminal.
	a1 := h * 0.055 * t.opts.Roughness
	a2 := h * 0.037 * t.opts.Roughness
	a3 := h * 0.083 * t.opts.Roughness

	for x := 0; x < t.width; x++ {
		fx := float64(x)
		wave := a1*math.Sin(fx*0.08) +
			a2*math.Sin(fx*0.22+1.3) +
			a3*math.Sin(fx*0.045+2.0)
		elev := baseline + wave + (rng.Float64()*2-1)*jitter
		t.heights[x] = clampF(elev, t.opts.Floor, maxElev)
	}
}

// CarveCrater lowers the surface around col with a parabolic falloff
// profile. Depth is greatest at the center and tapers to zero at
// radius. Columns past the field edges are clipped; elevations never
// drop below the floor.
func (t *Terrain) CarveCrater(col, radius int) {
	if radius <= 0 {
		return
	}
	for x := col - radius; x <= col+radius; x++ {
		if x < 0 || x >= t.width {
			continue
		}
		d := float64(x - col)
		r := float64(radius)
		depth := r * (1 - (d*d)/(r*r))
		if depth <= 0 {
			continue
		}
		t.heights[x] = clampF(t.heights[x]-depth, t.opts.Floor, t.heights[x])
	}
}

// Heights returns a copy of the height buffer for rendering.
// The renderer never aliases the simulation's buffer.
func (t *Terrain) Heights() []float64 {
	out := make([]float64, len(t.heights))
	copy(out, t.heights)
	return out
}

// Clone returns a deep copy, used by the AI to probe shots without
// mutating the live terrain.
func (t *Terrain) Clone() *Terrain {
	c := &Terrain{
		width:       t.width,
		fieldHeight: t.fieldHeight,
		opts:        t.opts,
		heights:     make([]float64, len(t.heights)),
	}
	copy(c.heights, t.heights)
	return c
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
