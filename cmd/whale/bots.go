package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whale/internal/loop"
)

var botsCmd = &cobra.Command{
	Use:   "bots",
	Short: "List the bots available to simulate",
	Args:  cobra.NoArgs,
	Run:   runBots,
}

func runBots(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	bots := loop.Bots()

	maxNameLen := 4 // "Name" header
	for _, b := range bots {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Fprintln(out, "Available bots:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, b := range bots {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'whale simulate --bot <name>' to watch one play.")
}
