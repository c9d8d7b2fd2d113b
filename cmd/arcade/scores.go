package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/oliverbestmann/phases/internal/config"
	"github.com/oliverbestmann/phases/internal/games/dice"
	"github.com/oliverbestmann/phases/internal/games/runner"
)

var knownGames = []string{runner.Id, dice.Id}

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 scores for the specified game.

Examples:
  arcade scores runner
  arcade scores dice`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !slices.Contains(knownGames, gameID) {
		return fmt.Errorf("unknown game %q, expected one of %v", gameID, knownGames)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	store, err := openStore(cmd, cfg)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}

	defer func() { _ = store.Close() }()

	entries, err := store.Top(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", gameID)

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for idx, entry := range entries {
		fmt.Printf("  %-4d  %-10d  %s\n", idx+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.Best(gameID)
	if err == nil {
		fmt.Printf("\nBest: %d\n", best)
	}

	return nil
}
