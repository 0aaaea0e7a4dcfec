package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turkey-shoot/internal/config"
	"github.com/vovakirdan/turkey-shoot/internal/platform/tui"
	"github.com/vovakirdan/turkey-shoot/internal/storage"
)

var (
	flagScoresDifficulty string
	flagInteractive      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high score table.

Examples:
  turkeyshoot scores
  turkeyshoot scores --difficulty hard
  turkeyshoot scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Show one difficulty only: easy, medium, hard")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagScoresDifficulty != "" && !config.ValidPreset(flagScoresDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagScoresDifficulty)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	difficulties := config.DifficultyNames()
	if flagScoresDifficulty != "" {
		difficulties = []string{flagScoresDifficulty}
	}

	for _, difficulty := range difficulties {
		printTable(store, difficulty)
	}
}

func printTable(store *storage.Store, difficulty string) {
	scores, err := store.TopScores(difficulty, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving %s scores: %v\n", difficulty, err)
		return
	}

	fmt.Printf("High Scores - %s\n", difficulty)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		return
	}

	fmt.Printf("  %-4s  %-15s  %-10s  %-5s  %s\n", "Rank", "Name", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-15s  %-10s  %-5s  %s\n", "----", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-15s  %-10d  %-5d  %s\n", i+1, entry.Name, entry.Score, entry.Level, dateStr)
	}
	fmt.Println()
}
