// barrage is a turn-based terminal artillery duel.
//
// Two tanks trade shots across a destructible hillside, adjusting barrel
// angle and shot power against a wind that changes every turn. Play
// hot-seat with a friend, against the built-in CPU opponent, or host the
// game over SSH.
//
// Usage:
//
//	barrage play             - Start a match
//	barrage scores           - Show match history
//	barrage serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible terrain and wind
//	--db <path>     - Set database path (default: ~/.barrage/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barrage",
	Short: "Barrage - Turn-based tank artillery in your terminal",
	Long: `Barrage is a terminal artillery duel. Two tanks sit on a randomly
generated destructible hillside and take turns lobbing shells at each
other. Wind shifts every turn, craters reshape the battlefield, and the
last tank standing wins the match.

Available commands:
  play     - Start a match (hot-seat or against the CPU)
  scores   - View match history and statistics
  serve    - Start SSH server for remote play

Examples:
  barrage play
  barrage play --ai --difficulty hard
  barrage scores
  barrage serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.barrage/matches.db", "Path to match history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
