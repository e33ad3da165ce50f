// Package game implements the barrage artillery duel as a
// platform-driven game object: one Step per tick, pure simulation,
// rendering into a screen buffer.
package game

import (
	"math/rand"

	"github.com/nbyadav/barrage/internal/ai"
	"github.com/nbyadav/barrage/internal/config"
	"github.com/nbyadav/barrage/internal/core"
	"github.com/nbyadav/barrage/internal/match"
)

// Rows reserved at the top of the screen for the HUD.
const hudRows = 4

// Game is the artillery duel. It owns the match context and drives it
// from the platform's input frames; all state is explicit, nothing is
// process-global.
type Game struct {
	tuning config.Config
	config core.RuntimeConfig

	m         *match.Match
	aiEnabled bool
	aiTicks   int // Ticks spent "thinking" on a CPU turn
	aiRNG     *rand.Rand
	paused    bool
	tick      uint64
}

// New creates a game with the given tuning. Reset must be called
// before stepping.
func New(tuning config.Config) *Game {
	return &Game{tuning: tuning}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "barrage"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Barrage"
}

// SetAIEnabled turns CPU control of player 2 on or off. Survives
// Reset so the --ai flag holds across matches and resizes.
func (g *Game) SetAIEnabled(enabled bool) {
	g.aiEnabled = enabled
}

// AIEnabled reports whether player 2 is CPU controlled.
func (g *Game) AIEnabled() bool {
	return g.aiEnabled
}

// Reset initializes or restarts the game for the given screen size
// and seed. Scores do not survive a Reset; use the in-game new-match
// command to keep them.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg

	fieldW := cfg.ScreenW
	fieldH := core.Max(cfg.ScreenH-hudRows, 8)

	g.m = match.New(fieldW, fieldH, g.tuning, cfg.Seed)
	g.aiRNG = rand.New(rand.NewSource(cfg.Seed + 1))
	g.aiTicks = 0
	g.paused = false
	g.tick = 0
}

// Step advances the game by one tick, applying the frame's commands
// to the active player and then ticking the match state machine.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Match-level commands: the match defers them at unsafe phases.
	if in.Has(core.ActionNewMatch) {
		g.m.RequestNewMatch()
	}
	if in.Has(core.ActionRegen) {
		g.m.RequestRegen()
	}
	if in.Has(core.ActionToggleAI) {
		g.aiEnabled = !g.aiEnabled
		g.aiTicks = 0
	}

	if g.m.Phase() == match.PhaseAwaitingAim {
		if g.cpuTurn() {
			g.stepCPU()
		} else {
			g.applyAim(in)
		}
	}

	g.m.Tick()
	return core.StepResult{State: g.State()}
}

// cpuTurn reports whether the CPU is aiming this turn.
func (g *Game) cpuTurn() bool {
	return g.aiEnabled && g.m.ActivePlayer() == 2
}

// applyAim handles a human player's aiming commands. Out-of-range
// values clamp inside the match, never error.
func (g *Game) applyAim(in core.InputFrame) {
	step := g.tuning.Tanks.AngleStep
	if in.Has(core.ActionAngleLeft) {
		g.m.AdjustAngle(-step)
	}
	if in.Has(core.ActionAngleRight) {
		g.m.AdjustAngle(step)
	}
	if in.Has(core.ActionPowerUp) {
		g.m.AdjustPower(g.tuning.Tanks.PowerStep)
	}
	if in.Has(core.ActionPowerDown) {
		g.m.AdjustPower(-g.tuning.Tanks.PowerStep)
	}
	if in.Has(core.ActionFire) {
		g.m.Fire()
	}
}

// stepCPU counts down the think delay, then searches for an aim and
// fires. The search budget is fixed, so a CPU turn never stalls the
// frame loop.
func (g *Game) stepCPU() {
	g.aiTicks++
	if g.aiTicks < g.tuning.AI.ThinkTicks {
		return
	}
	g.aiTicks = 0

	shooter := g.m.ActiveTank()
	target := g.m.Tank(1)
	aim := ai.Choose(shooter, target, g.m.Terrain(), g.m.Wind(), g.m.Params(), g.tuning, g.aiRNG)
	g.m.SetAim(aim.Angle, aim.Power)
	g.m.Fire()
}

// Match exposes the underlying match for tests and the platform HUD.
func (g *Game) Match() *match.Match {
	return g.m
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		ScoreP1:   g.m.Tank(1).Score,
		ScoreP2:   g.m.Tank(2).Score,
		Turn:      g.m.Turn(),
		Active:    g.m.ActivePlayer(),
		MatchOver: g.m.Phase() == match.PhaseMatchOver,
		Winner:    g.m.Winner(),
		AIEnabled: g.aiEnabled,
		Paused:    g.paused,
	}
}
