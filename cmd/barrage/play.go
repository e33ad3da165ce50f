package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nbyadav/barrage/internal/config"
	"github.com/nbyadav/barrage/internal/core"
	"github.com/nbyadav/barrage/internal/game"
	"github.com/nbyadav/barrage/internal/platform/tui"
	"github.com/nbyadav/barrage/internal/storage"
)

var (
	flagAI         bool
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a match",
	Long: `Start an artillery match. Both players share the keyboard in
hot-seat mode; pass --ai to let the CPU control player 2.

Controls:
  Left/Right - Adjust barrel angle
  Up/Down    - Adjust shot power
  Space      - Fire
  N          - New match
  R          - Regenerate terrain
  T          - Toggle CPU opponent
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

Difficulty options (CPU opponent):
  easy   - Few aim samples, large aim error, slow to fire
  normal - Balanced search and aim error
  hard   - Wide search, no aim error, quick to fire

Examples:
  barrage play
  barrage play --ai
  barrage play --ai --difficulty hard
  barrage play --config ./my-barrage.yaml
  barrage play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAI, "ai", false, "Let the CPU control player 2")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "CPU difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load gameplay tuning
	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, or hard)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&tuning, preset)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(tuning)
	g.SetAIEnabled(flagAI)

	// Open match history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
