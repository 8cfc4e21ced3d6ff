package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopit/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best height and recorded runs",
	Long: `Display the best height, run statistics and the top runs.

Examples:
  hopit scores
  hopit scores --recent --limit 20
  hopit scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest runs instead of the highest")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (the best height is kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	best, err := loadBest(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading best height: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Hop.It - best height %s\n", humanize.Comma(int64(best)))
	fmt.Println()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
		os.Exit(1)
	}
	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hopit play' to record the first run!")
		return
	}
	fmt.Printf("Runs: %s   Average: %s   Total climbed: %s   Last played: %s\n",
		humanize.Comma(int64(stats.Runs)),
		humanize.CommafWithDigits(stats.AvgHeight, 1),
		humanize.Comma(stats.TotalHeight),
		humanize.Time(stats.LastPlayed),
	)
	fmt.Println()

	var runs []storage.Run
	if flagScoresRecent {
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-4s  %-10s  %-4s  %s\n", "Rank", "Height", "Best", "When")
	fmt.Printf("  %-4s  %-10s  %-4s  %s\n", "----", "------", "----", "----")
	for i, r := range runs {
		mark := ""
		if r.NewBest {
			mark = "*"
		}
		fmt.Printf("  %-4s  %-10s  %-4s  %s\n",
			humanize.Ordinal(i+1),
			humanize.Comma(int64(r.Height)),
			mark,
			humanize.Time(r.CreatedAt),
		)
	}
}

// loadBest reads the best height from the backend selected by --store.
func loadBest(store *storage.Store) (int, error) {
	if flagStore == storeFile {
		fb, err := storage.OpenFileBest(appName)
		if err != nil {
			return 0, err
		}
		return fb.LoadBest()
	}
	return store.LoadBest()
}
