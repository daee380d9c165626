package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris2048/internal/registry"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the best runs for a mode (classic if omitted), with totals
across every recorded run.

Examples:
  tetris2048 scores
  tetris2048 scores endless --limit 20
  tetris2048 scores --all
  tetris2048 scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run (ignores --limit)")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := defaultMode
	if len(args) == 1 {
		mode = args[0]
	}

	game, err := registry.Create(mode, gameConfig)
	if err != nil {
		return fmt.Errorf("%w (run 'tetris2048 modes' to see available modes)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		logger.Info("scores cleared", "mode", mode)
		fmt.Fprintf(out, "Cleared all scores for %s.\n", game.Title())
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(mode)
	} else {
		scores, err = store.TopScores(mode, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'tetris2048 play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-5s  %-3s  %s\n", "Rank", "Score", "Tile", "Lines", "Won", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-5s  %-3s  %s\n", "----", "-----", "----", "-----", "---", "----")
	for i, e := range scores {
		won := ""
		if e.Won {
			won = "yes"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-5d  %-3s  %s\n",
			i+1, e.Score, e.MaxTile, e.Lines, won, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Wins: %d  Best: %d  Best tile: %d  Average: %.0f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.BestTile, stats.AvgScore)
	return nil
}
