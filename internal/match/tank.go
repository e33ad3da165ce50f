package match

import (
	"github.com/nbyadav/barrage/internal/physics"
)

// Tank is one player's vehicle. Its elevation is always derived from
// the terrain at its column; craters under a tank lower it.
type Tank struct {
	Player    int     // 1 or 2
	Column    int     // Horizontal position, fixed for a match
	Elevation float64 // Bottom of the hull, recomputed after every carve
	Facing    int     // +1 fires rightward, -1 leftward

	Angle float64 // Degrees from horizontal toward Facing
	Power float64

	Health int
	Alive  bool

	Score       int // Cumulative match wins, preserved across new matches
	DamageDealt int // Damage dealt to the opponent in the current match
}

// CenterX returns the horizontal center of the hull.
func (t *Tank) CenterX() float64 {
	return float64(t.Column)
}

// box returns the hull's bounding region for shell collision.
func (t *Tank) box(bodyWidth, bodyHeight int) physics.Box {
	return physics.Box{
		X: float64(t.Column) - float64(bodyWidth)/2,
		Y: t.Elevation,
		W: float64(bodyWidth),
		H: float64(bodyHeight),
	}
}
