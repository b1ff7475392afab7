package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rooftops/internal/games/rooftops"
	"github.com/vovakirdan/rooftops/internal/platform/tui"
	"github.com/vovakirdan/rooftops/internal/registry"
	"github.com/vovakirdan/rooftops/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the longest runs, how each one ended, and overall stats.

Examples:
  rooftops scores
  rooftops scores --limit 25
  rooftops scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	gameID := rooftops.GameID

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Println("All runs cleared.")
		return nil
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rooftops play' to set the first distance!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %s\n", "Rank", "Distance", "Time", "Cause", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %s\n", "----", "--------", "----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-6s  %-10s  %s\n",
			i+1,
			fmt.Sprintf("%d m", r.Distance),
			tui.FormatDuration(r.Duration),
			r.Cause,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d m  Avg: %.0f m  Total: %d m  Played: %s\n",
		stats.Runs, stats.BestDistance, stats.AvgDistance, stats.TotalDistance, tui.FormatDuration(stats.TotalTime))
	return nil
}
