package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arena/internal/games/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games of the arena in grid order.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := catalog.Games()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen, maxTitleLen := len("ID"), len("Title")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(out, "  %2s  %-*s  %-*s  %s\n", "#", maxIDLen, "ID", maxTitleLen, "Title", "Tick")
	fmt.Fprintf(out, "  %2s  %-*s  %-*s  %s\n", "--", maxIDLen, "--", maxTitleLen, "-----", "----")
	for i, g := range games {
		fmt.Fprintf(out, "  %2d  %-*s  %-*s  %v\n", i+1, maxIDLen, g.ID, maxTitleLen, g.Title, g.Tick)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arena play <id>' to play a game.")
}
