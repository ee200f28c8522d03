package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treasure-hunt/internal/platform/tui"
	"github.com/vovakirdan/treasure-hunt/internal/storage"
)

var (
	flagLimit       int
	flagBest        bool
	flagInteractive bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show the results history",
	Long: `Display finished hunts with score, rounds and performance index.

Examples:
  hunt results
  hunt results --limit 50
  hunt results --best
  hunt results --interactive`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of results to show")
	resultsCmd.Flags().BoolVar(&flagBest, "best", false, "Order by performance index instead of date")
	resultsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a table")
}

func runResults(_ *cobra.Command, _ []string) {
	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunResults(store, flagLimit, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var results []storage.Result
	title := "Recent Hunts"
	if flagBest {
		title = "Best Hunts"
		results, err = store.BestResults(flagLimit)
	} else {
		results, err = store.RecentResults(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No hunts recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hunt play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %-6s  %-18s  %s\n", "#", "Score", "Rounds", "Index", "Board", "Ended", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %-6s  %-18s  %s\n", "-", "-----", "------", "-----", "-----", "-----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-6d  %-6d  %-7s  %-6s  %-18s  %s\n",
			i+1, r.Score, r.Rounds,
			r.PerformanceIndex.StringFixed(2),
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.EndReason,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetStats()
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Hunts: %d  Best score: %d  Best index: %s  Average score: %.1f\n",
			stats.GamesCount, stats.BestScore, stats.BestIndex.StringFixed(2), stats.AvgScore)
	}
}
