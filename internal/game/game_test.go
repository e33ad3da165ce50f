package game

import (
	"testing"

	"github.com/nbyadav/barrage/internal/config"
	"github.com/nbyadav/barrage/internal/core"
	"github.com/nbyadav/barrage/internal/match"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical
	// snapshots, including through a full fired shot.
	g1 := New(config.Default())
	g1.Reset(testConfig())

	g2 := New(config.Default())
	g2.Reset(testConfig())

	input := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		input.Clear()
		switch i {
		case 5:
			input.Set(core.ActionAngleRight)
		case 10:
			input.Set(core.ActionPowerUp)
		case 20:
			input.Set(core.ActionFire)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestAimAdjustmentsClamped(t *testing.T) {
	g := New(config.Default())
	g.Reset(testConfig())
	tuning := config.Default()

	input := core.NewInputFrame()
	input.Set(core.ActionAngleRight)
	for i := 0; i < 500; i++ {
		g.Step(input)
	}
	if a := g.Match().Tank(1).Angle; a != tuning.Tanks.MaxAngle {
		t.Errorf("angle = %v, want clamped to %v", a, tuning.Tanks.MaxAngle)
	}

	input.Clear()
	input.Set(core.ActionPowerDown)
	for i := 0; i < 500; i++ {
		g.Step(input)
	}
	if p := g.Match().Tank(1).Power; p != tuning.Tanks.MinPower {
		t.Errorf("power = %v, want clamped to %v", p, tuning.Tanks.MinPower)
	}
}

func TestFireRunsFullTurn(t *testing.T) {
	g := New(config.Default())
	g.Reset(testConfig())

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	if g.Match().Phase() != match.PhaseFiring {
		t.Fatalf("phase = %v after fire, want Firing", g.Match().Phase())
	}

	idle := core.NewInputFrame()
	for i := 0; i < 5000; i++ {
		g.Step(idle)
		if g.Match().Phase() == match.PhaseAwaitingAim {
			break
		}
	}

	st := g.State()
	if st.Turn != 1 {
		t.Errorf("turn = %d after one shot, want 1", st.Turn)
	}
	if st.Active != 2 {
		t.Errorf("active = %d after player 1's shot, want 2", st.Active)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New(config.Default())
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	st := g.Step(pause).State
	if !st.Paused {
		t.Fatal("pause action did not pause")
	}

	before := g.Snapshot()
	idle := core.NewInputFrame()
	for i := 0; i < 50; i++ {
		g.Step(idle)
	}
	after := g.Snapshot()
	if before != after {
		t.Error("simulation advanced while paused")
	}

	st = g.Step(pause).State
	if st.Paused {
		t.Error("second pause action did not resume")
	}
}

func TestToggleAI(t *testing.T) {
	g := New(config.Default())
	g.Reset(testConfig())

	if g.AIEnabled() {
		t.Fatal("AI enabled by default")
	}

	toggle := core.NewInputFrame()
	toggle.Set(core.ActionToggleAI)
	st := g.Step(toggle).State
	if !st.AIEnabled {
		t.Error("toggle did not enable AI")
	}

	st = g.Step(toggle).State
	if st.AIEnabled {
		t.Error("second toggle did not disable AI")
	}
}

func TestCPUPlaysSecondTurn(t *testing.T) {
	g := New(config.Default())
	g.SetAIEnabled(true)
	g.Reset(testConfig())

	// Player 1 fires, then the CPU should think and fire on its own.
	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	idle := core.NewInputFrame()
	cpuFired := false
	for i := 0; i < 20000; i++ {
		g.Step(idle)
		st := g.State()
		if st.MatchOver {
			break
		}
		if st.Active == 2 && g.Match().Phase() == match.PhaseFiring {
			cpuFired = true
			break
		}
	}
	if !cpuFired {
		t.Error("CPU never fired on its turn")
	}
}

func TestNewMatchPreservesScores(t *testing.T) {
	g := New(config.Default())
	g.Reset(testConfig())
	g.Match().Tank(1).Score = 2
	g.Match().Tank(2).Score = 1

	input := core.NewInputFrame()
	input.Set(core.ActionNewMatch)
	st := g.Step(input).State

	if st.ScoreP1 != 2 || st.ScoreP2 != 1 {
		t.Errorf("scores = %d:%d after new match, want 2:1", st.ScoreP1, st.ScoreP2)
	}
	if st.Turn != 0 || st.Active != 1 {
		t.Errorf("new match did not reset turn state: %+v", st)
	}
}

func TestRenderProducesHUDAndTerrain(t *testing.T) {
	g := New(config.Default())
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if got := screen.Row(0); len(got) == 0 || got[:1] == "\x00" {
		t.Fatal("HUD row empty")
	}
	if !containsRune(screen.Row(0), 'B') {
		t.Error("HUD title missing")
	}

	// Some terrain should be drawn near the bottom.
	found := false
	for x := 0; x < 80 && !found; x++ {
		if screen.Get(x, 23) == terrainChar {
			found = true
		}
	}
	if !found {
		t.Error("no terrain drawn on the bottom row")
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
