package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-whale/internal/platform/tui"
	"github.com/vovakirdan/tui-whale/internal/storage"
)

var (
	flagPlain  bool
	flagRecent bool
	flagLimit  int
	flagAll    bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the round history",
	Long: `Display recorded rounds, best first, with lifetime totals.

Opens an interactive board in a terminal. Use --plain for text output.

Examples:
  whale scores
  whale scores --plain --recent
  whale scores --plain --all
  whale scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Order by date instead of krill (with --plain)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to print (with --plain)")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Print every round, best first (with --plain)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole round history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening round history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Round history cleared.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(cmd.OutOrStdout(), store)
}

func printScores(out io.Writer, store *storage.Store) error {
	var (
		rounds []storage.RoundEntry
		err    error
		title  = "Best Rounds"
	)
	switch {
	case flagAll:
		title = "All Rounds"
		rounds, err = store.AllRounds()
	case flagRecent:
		title = "Recent Rounds"
		rounds, err = store.RecentRounds(flagLimit)
	default:
		rounds, err = store.TopRounds(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Whale Simulator - %s\n\n", title)

	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'whale play' to set the first record!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-7s  %-8s  %-8s  %s\n", "Rank", "Krill", "Hits", "Ratio", "Time", "Preset", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-7s  %-8s  %-8s  %s\n", "----", "-----", "----", "-----", "----", "------", "----")
	for i, r := range rounds {
		fmt.Fprintf(out, "  %-4d  %-6d  %-5d  %-7s  %-8s  %-8s  %s\n",
			i+1, r.Collected, r.Hits, r.Report().RatioString(),
			r.Duration.Round(time.Second), r.Preset, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Rounds: %d  Best: %d  Krill: %d  Hits: %d  Ratio: %s  At sea: %s\n",
		stats.Rounds, stats.BestCollected, stats.TotalCollected, stats.TotalHits,
		stats.Report().RatioString(), stats.TotalPlayed.Round(time.Second))
	return nil
}
