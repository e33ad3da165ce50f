// Package match implements the turn-based duel state machine: two
// tanks on destructible terrain alternating aim-and-fire turns until
// one is destroyed. The match owns the authoritative game state; the
// platform drives it one tick at a time and reads back snapshots.
package match

import (
	"math"
	"math/rand"

	"github.com/nbyadav/barrage/internal/config"
	"github.com/nbyadav/barrage/internal/physics"
	"github.com/nbyadav/barrage/internal/terrain"
)

// Phase is the match state machine's current state.
type Phase int

const (
	PhaseAwaitingAim Phase = iota // Active player adjusts angle/power
	PhaseFiring                   // Shell in flight, one step per tick
	PhaseResolving                // Impact applied: carving, damage, death check
	PhaseTurnEnd                  // Deferred commands, wind reroll, player toggle
	PhaseMatchOver                // A tank was destroyed; awaiting new match
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAim:
		return "AwaitingAim"
	case PhaseFiring:
		return "Firing"
	case PhaseResolving:
		return "ResolvingImpact"
	case PhaseTurnEnd:
		return "TurnEnd"
	case PhaseMatchOver:
		return "MatchOver"
	default:
		return "Unknown"
	}
}

// Match holds the full duel state: terrain, tanks, wind, phase and
// turn bookkeeping. It is explicitly owned and passed, never global.
type Match struct {
	cfg         config.Config
	width       int
	fieldHeight int

	terr   *terrain.Terrain
	tanks  [2]*Tank
	active int // Index of the aiming player (0 or 1)
	wind   float64
	turn   int
	phase  Phase
	winner int // 1 or 2 once MatchOver, else 0

	rng    *rand.Rand
	flight *physics.Flight
	trail  []physics.Vec2
	impact physics.Impact

	pendingNewMatch bool
	pendingRegen    bool
}

// New creates a match on freshly generated terrain. The seed drives
// terrain shape, wind rolls and nothing else; identical seeds produce
// identical matches for identical command sequences.
func New(width, fieldHeight int, cfg config.Config, seed int64) *Match {
	m := &Match{
		cfg:         cfg,
		width:       width,
		fieldHeight: fieldHeight,
		rng:         rand.New(rand.NewSource(seed)),
	}

	margin := int(float64(width) * cfg.Tanks.EdgeMargin)
	m.tanks[0] = &Tank{Player: 1, Column: margin, Facing: 1}
	m.tanks[1] = &Tank{Player: 2, Column: width - 1 - margin, Facing: -1}

	m.terr = terrain.New(width, fieldHeight, terrainOptions(cfg.Terrain), m.rng.Int63())
	m.resetMatch(false)
	return m
}

func terrainOptions(tc config.TerrainConfig) terrain.Options {
	return terrain.Options{
		BaselineFrac: tc.BaselineFrac,
		MaxFrac:      tc.MaxFrac,
		Roughness:    tc.Roughness,
		JitterFrac:   tc.JitterFrac,
		Floor:        tc.Floor,
	}
}

// resetMatch restores tanks, wind and turn state for a fresh match.
// Scores survive; terrain is regenerated when regen is true.
func (m *Match) resetMatch(regen bool) {
	if regen {
		m.terr.Regenerate(m.rng.Int63())
	}
	for _, t := range m.tanks {
		t.Angle = m.cfg.Tanks.DefaultAngle
		t.Power = m.cfg.Tanks.DefaultPower
		t.Health = m.cfg.Tanks.StartHealth
		t.Alive = true
		t.DamageDealt = 0
	}
	m.reseatTanks()
	m.wind = m.rollWind()
	m.turn = 0
	m.active = 0
	m.winner = 0
	m.phase = PhaseAwaitingAim
	m.flight = nil
	m.trail = nil
	m.impact = physics.Impact{Kind: physics.ImpactNone, Target: -1}
	m.pendingNewMatch = false
	m.pendingRegen = false
}

// reseatTanks recomputes hull elevations from the terrain.
func (m *Match) reseatTanks() {
	for _, t := range m.tanks {
		t.Elevation = m.terr.HeightAtClamped(t.Column)
	}
}

func (m *Match) rollWind() float64 {
	return (m.rng.Float64()*2 - 1) * m.cfg.Physics.WindMax
}

// AdjustAngle nudges the active player's barrel. Values clamp to the
// configured range; invalid aim is never an error. Ignored outside
// the aiming phase.
func (m *Match) AdjustAngle(delta float64) {
	if m.phase != PhaseAwaitingAim {
		return
	}
	t := m.tanks[m.active]
	t.Angle = clampF(t.Angle+delta, m.cfg.Tanks.MinAngle, m.cfg.Tanks.MaxAngle)
}

// AdjustPower nudges the active player's shot power, clamped.
func (m *Match) AdjustPower(delta float64) {
	if m.phase != PhaseAwaitingAim {
		return
	}
	t := m.tanks[m.active]
	t.Power = clampF(t.Power+delta, m.cfg.Tanks.MinPower, m.cfg.Tanks.MaxPower)
}

// SetAim sets the active player's aim directly (used by the AI),
// clamped to legal ranges.
func (m *Match) SetAim(angle, power float64) {
	if m.phase != PhaseAwaitingAim {
		return
	}
	t := m.tanks[m.active]
	t.Angle = clampF(angle, m.cfg.Tanks.MinAngle, m.cfg.Tanks.MaxAngle)
	t.Power = clampF(power, m.cfg.Tanks.MinPower, m.cfg.Tanks.MaxPower)
}

// Fire launches a shell with the active player's current aim and
// moves the machine to Firing. Returns false outside the aiming phase.
func (m *Match) Fire() bool {
	if m.phase != PhaseAwaitingAim {
		return false
	}

	t := m.tanks[m.active]
	start := m.muzzle(t)
	vel := physics.AimVelocity(t.Angle, t.Power, m.cfg.Physics.ShellSpeed, t.Facing)

	targets := make([]physics.Box, len(m.tanks))
	for i, tank := range m.tanks {
		targets[i] = tank.box(m.cfg.Tanks.BodyWidth, m.cfg.Tanks.BodyHeight)
	}

	m.flight = physics.NewFlight(start, vel, m.wind, m.physicsParams(), m.terr, targets)
	m.trail = []physics.Vec2{start}
	m.phase = PhaseFiring
	return true
}

func (m *Match) physicsParams() physics.Params {
	return physics.Params{
		Gravity:   m.cfg.Physics.Gravity,
		WindScale: 1.0,
		Dt:        m.cfg.Physics.Dt,
		MaxSteps:  m.cfg.Physics.MaxSteps,
	}
}

// muzzle returns the shell spawn point at the barrel tip, outside the
// hull so a shot cannot collide with its own tank on launch.
func (m *Match) muzzle(t *Tank) physics.Vec2 {
	rad := t.Angle * math.Pi / 180
	l := m.cfg.Tanks.BarrelLength
	return physics.Vec2{
		X: float64(t.Column) + math.Cos(rad)*l*float64(t.Facing),
		Y: t.Elevation + float64(m.cfg.Tanks.BodyHeight) + math.Sin(rad)*l,
	}
}

// Tick advances the state machine by one simulation tick. Aiming and
// match-over phases idle; command handling happens through the
// explicit methods.
func (m *Match) Tick() {
	switch m.phase {
	case PhaseFiring:
		pos, done := m.flight.Step()
		m.trail = append(m.trail, pos)
		if done {
			m.impact = m.flight.Impact()
			m.phase = PhaseResolving
		}
	case PhaseResolving:
		m.resolveImpact()
		m.phase = PhaseTurnEnd
	case PhaseTurnEnd:
		m.endTurn()
	}
}

// resolveImpact applies the flight's outcome: crater carving, direct
// and splash damage, and the death check.
func (m *Match) resolveImpact() {
	imp := m.impact
	shooter := m.tanks[m.active]

	switch imp.Kind {
	case physics.ImpactTerrain, physics.ImpactTank:
		col := int(math.Floor(imp.Point.X))
		m.terr.CarveCrater(col, m.cfg.Tanks.BlastRadius)

		if imp.Kind == physics.ImpactTank && imp.Target >= 0 {
			m.applyDamage(m.tanks[imp.Target], shooter, m.cfg.Tanks.DirectDamage)
		}
		m.applySplash(imp, shooter)
		m.reseatTanks()
	case physics.ImpactMiss:
		// Nothing to apply; the turn is simply spent.
	}

	for _, t := range m.tanks {
		if t.Health <= 0 {
			t.Alive = false
		}
	}
}

// applySplash damages tanks near the blast, scaled down with distance.
// The directly hit tank (if any) already took full damage and is
// excluded.
func (m *Match) applySplash(imp physics.Impact, shooter *Tank) {
	reach := float64(m.cfg.Tanks.BlastRadius) + 1
	for i, t := range m.tanks {
		if !t.Alive || i == imp.Target {
			continue
		}
		cx := t.CenterX()
		cy := t.Elevation + float64(m.cfg.Tanks.BodyHeight)/2
		d := math.Hypot(cx-imp.Point.X, cy-imp.Point.Y)
		if d >= reach {
			continue
		}
		dmg := int(float64(m.cfg.Tanks.SplashDamage) * (1 - d/reach))
		if dmg > 0 {
			m.applyDamage(t, shooter, dmg)
		}
	}
}

func (m *Match) applyDamage(victim, shooter *Tank, dmg int) {
	victim.Health -= dmg
	if victim.Health < 0 {
		victim.Health = 0
	}
	if victim != shooter {
		shooter.DamageDealt += dmg
	}
}

// endTurn finishes the turn: score a destroyed tank, then apply any
// deferred commands, then hand the aim to the other player with fresh
// wind.
func (m *Match) endTurn() {
	m.flight = nil
	m.turn++

	if dead := m.deadTank(); dead != nil {
		if other := m.otherTank(dead); other.Alive {
			other.Score++
			m.winner = other.Player
		}
		m.phase = PhaseMatchOver
		if m.pendingNewMatch {
			m.resetMatch(true)
		}
		return
	}

	if m.pendingNewMatch {
		m.resetMatch(true)
		return
	}
	if m.pendingRegen {
		m.pendingRegen = false
		m.terr.Regenerate(m.rng.Int63())
		m.reseatTanks()
	}

	m.active = 1 - m.active
	m.wind = m.rollWind()
	m.phase = PhaseAwaitingAim
}

func (m *Match) deadTank() *Tank {
	for _, t := range m.tanks {
		if !t.Alive {
			return t
		}
	}
	return nil
}

func (m *Match) otherTank(t *Tank) *Tank {
	if t == m.tanks[0] {
		return m.tanks[1]
	}
	return m.tanks[0]
}

// RequestNewMatch resets the duel to a fresh match with regenerated
// terrain, preserving cumulative scores. Mid-shot it is deferred to
// the end of the turn.
func (m *Match) RequestNewMatch() {
	switch m.phase {
	case PhaseAwaitingAim, PhaseMatchOver:
		m.resetMatch(true)
	default:
		m.pendingNewMatch = true
	}
}

// RequestRegen regenerates the terrain in place and reseats the tanks.
// Mid-shot it is deferred to the end of the turn.
func (m *Match) RequestRegen() {
	switch m.phase {
	case PhaseAwaitingAim, PhaseMatchOver:
		m.terr.Regenerate(m.rng.Int63())
		m.reseatTanks()
	default:
		m.pendingRegen = true
	}
}

// Phase returns the current state machine phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// ActivePlayer returns 1 or 2.
func (m *Match) ActivePlayer() int {
	return m.active + 1
}

// ActiveTank returns the tank currently aiming.
func (m *Match) ActiveTank() *Tank {
	return m.tanks[m.active]
}

// Tank returns the tank for player 1 or 2.
func (m *Match) Tank(player int) *Tank {
	return m.tanks[player-1]
}

// Wind returns the current turn's wind value.
func (m *Match) Wind() float64 {
	return m.wind
}

// Turn returns the number of completed turns in the current match.
func (m *Match) Turn() int {
	return m.turn
}

// Winner returns the winning player once the match is over, else 0.
func (m *Match) Winner() int {
	return m.winner
}

// Terrain exposes the heightmap for rendering and the AI.
func (m *Match) Terrain() *terrain.Terrain {
	return m.terr
}

// ShellPos returns the in-flight shell position, if any.
func (m *Match) ShellPos() (physics.Vec2, bool) {
	if m.phase != PhaseFiring || m.flight == nil {
		return physics.Vec2{}, false
	}
	return m.flight.Pos(), true
}

// Trail returns the shot trajectory so far, for rendering.
func (m *Match) Trail() []physics.Vec2 {
	return m.trail
}

// LastImpact returns the most recent impact classification.
func (m *Match) LastImpact() physics.Impact {
	return m.impact
}

// Params returns the physics parameters in use, for the AI's probes.
func (m *Match) Params() physics.Params {
	return m.physicsParams()
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
