package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search for shows by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	logger.Info().Str("query", name).Msg("Searching for shows")

	results, err := client.SearchShows(context.Background(), name)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No shows found.")
		return nil
	}

	for _, show := range results {
		firstAired := "unknown"
		if !show.FirstAirTime.IsZero() {
			firstAired = show.FirstAirTime.Format("2006-01-02")
		}
		fmt.Printf("%s  %s (%s, first aired %s, %s)\n", show.Identifier, show.Name, show.Status, firstAired, show.Network)
	}

	return nil
}
