package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightwalk/internal/registry"
	"github.com/vovakirdan/nightwalk/internal/storage"
)

var (
	flagRuns   bool
	flagPlayer string
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores or run history",
	Long: `Display the top high scores for the given variant, or with --runs the
most recent finished walks.

Examples:
  nightwalk scores nightwalk
  nightwalk scores nightwalk --runs
  nightwalk scores nightwalk --runs --player alice`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show run history instead of high scores")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this SSH user")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'nightwalk list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRuns {
		err = printRuns(store, gameID, game.Title())
	} else {
		err = printScores(store, gameID, game.Title())
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'nightwalk play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printRuns(store *storage.Store, gameID, title string) error {
	var runs []storage.RunEntry
	var err error
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	} else {
		runs, err = store.RecentRuns(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Run History - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-8s  %-6s  %-3s  %-3s  %-22s  %s\n", "Score", "Outcome", "Time", "Chg", "Clr", "Campus", "Date")
	fmt.Printf("  %-8s  %-8s  %-6s  %-3s  %-3s  %-22s  %s\n", "-----", "-------", "----", "---", "---", "------", "----")
	for _, r := range runs {
		if r.GameID != gameID {
			continue
		}
		secs := r.DurationMs / 1000
		fmt.Printf("  %-8d  %-8s  %-6s  %-3d  %-3d  %-22s  %s\n",
			r.Score,
			r.Outcome,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.Transformations,
			r.Disabled,
			r.Catalog,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  |  Victories: %d\n", stats.Runs, stats.Victories)
	}
	return nil
}
