package game

// TankSnapshot captures one tank's state.
type TankSnapshot struct {
	Column    int
	Elevation float64
	Angle     float64
	Power     float64
	Health    int
	Alive     bool
	Score     int
}

// Snapshot captures the complete game state for determinism testing
// and replay.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Active    int
	Turn      int
	Wind      float64
	Winner    int
	AIEnabled bool
	Paused    bool
	P1        TankSnapshot
	P2        TankSnapshot
	ShellX    float64
	ShellY    float64
	InFlight  bool
}

// Snapshot returns the current game snapshot for determinism
// verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Phase:     g.m.Phase().String(),
		Active:    g.m.ActivePlayer(),
		Turn:      g.m.Turn(),
		Wind:      g.m.Wind(),
		Winner:    g.m.Winner(),
		AIEnabled: g.aiEnabled,
		Paused:    g.paused,
		P1:        tankSnapshot(g, 1),
		P2:        tankSnapshot(g, 2),
	}
	if pos, ok := g.m.ShellPos(); ok {
		snap.ShellX = pos.X
		snap.ShellY = pos.Y
		snap.InFlight = true
	}
	return snap
}

func tankSnapshot(g *Game, player int) TankSnapshot {
	t := g.m.Tank(player)
	return TankSnapshot{
		Column:    t.Column,
		Elevation: t.Elevation,
		Angle:     t.Angle,
		Power:     t.Power,
		Health:    t.Health,
		Alive:     t.Alive,
		Score:     t.Score,
	}
}
