package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic terrain, wind and AI
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible state of the duel.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	ScoreP1   int  // Player 1 cumulative match wins
	ScoreP2   int  // Player 2 cumulative match wins
	Turn      int  // Completed turn count in the current match
	Active    int  // Active player (1 or 2)
	MatchOver bool // Whether the current match has ended
	Winner    int  // Winning player when MatchOver (0 = none)
	AIEnabled bool // Whether player 2 is CPU controlled
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
