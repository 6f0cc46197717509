package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dalemyers/libtvdb/tvdb"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <id> [id...]",
	Short: "Fetch extended information for one or more shows",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func parseIdentifiers(args []string) ([]int64, error) {
	identifiers := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid show identifier %q", arg)
		}
		identifiers = append(identifiers, id)
	}
	return identifiers, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	identifiers, err := parseIdentifiers(args)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Multiple identifiers are fetched concurrently.
	shows, err := client.ShowInfoAll(ctx, identifiers)
	if err != nil {
		return err
	}

	for _, show := range shows {
		printShow(show)
	}

	return nil
}

func printShow(show *tvdb.Show) {
	fmt.Printf("%s [%s]\n", show, show.Slug)
	fmt.Printf("  status: %s\n", show.Status.Name)

	if !show.FirstAired.IsZero() {
		fmt.Printf("  first aired: %s\n", show.FirstAired.Format("2006-01-02"))
	}
	if show.Overview != nil {
		fmt.Printf("  overview: %s\n", *show.Overview)
	}
	if len(show.Genres) > 0 {
		fmt.Print("  genres:")
		for _, genre := range show.Genres {
			fmt.Printf(" %s", genre.Name)
		}
		fmt.Println()
	}
	for _, remoteID := range show.RemoteIDs {
		fmt.Printf("  %s: %s\n", remoteID.SourceName, remoteID.Identifier)
	}
}
