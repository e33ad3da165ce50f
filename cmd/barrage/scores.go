package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nbyadav/barrage/internal/platform/tui"
	"github.com/nbyadav/barrage/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show match history",
	Long: `Display recent matches and aggregate statistics.

Examples:
  barrage scores
  barrage scores --limit 50
  barrage scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recent matches to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse history in an interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History - Barrage")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'barrage play' to record the first match!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %-8s  %-9s  %s\n", "#", "Result", "Turns", "Dmg P1", "Dmg P2", "Mode", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %-8s  %-9s  %s\n", "----", "------", "-----", "------", "------", "----", "----")

	for i, rec := range matches {
		result := "Draw"
		if rec.Winner == 1 {
			result = "P1 wins"
		} else if rec.Winner == 2 {
			result = "P2 wins"
		}
		mode := "hot-seat"
		if rec.AIOpponent {
			mode = "vs CPU"
		}
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %-6d  %-8d  %-8d  %-9s  %s\n",
			i+1, result, rec.Turns, rec.P1Damage, rec.P2Damage, mode, dateStr)
	}

	// Summary
	stats, err := store.GetStats()
	if err == nil && stats.Matches > 0 {
		fmt.Println()
		fmt.Printf("Total: %d matches | P1 %d : %d P2 | %d draws | avg %.1f turns\n",
			stats.Matches, stats.P1Wins, stats.P2Wins, stats.Draws, stats.AvgTurns)
	}
}
