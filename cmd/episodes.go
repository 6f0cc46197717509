package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

// episodesCmd represents the episodes command
var episodesCmd = &cobra.Command{
	Use:   "episodes <show-id>",
	Short: "List every episode of a show",
	Args:  cobra.ExactArgs(1),
	RunE:  runEpisodes,
}

// episodeCmd represents the episode command
var episodeCmd = &cobra.Command{
	Use:   "episode <id>",
	Short: "Fetch extended information for a single episode",
	Args:  cobra.ExactArgs(1),
	RunE:  runEpisode,
}

func init() {
	rootCmd.AddCommand(episodesCmd)
	rootCmd.AddCommand(episodeCmd)
}

func runEpisodes(cmd *cobra.Command, args []string) error {
	identifier, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid show identifier %q", args[0])
	}

	episodes, err := client.EpisodesFromShowID(context.Background(), identifier)
	if err != nil {
		return err
	}

	logger.Info().Int("count", len(episodes)).Msg("Fetched episodes")

	for _, episode := range episodes {
		aired := "unaired"
		if !episode.Aired.IsZero() {
			aired = episode.Aired.Format("2006-01-02")
		}
		fmt.Printf("S%02dE%02d  %s (%s)\n", episode.SeasonNumber, episode.Number, episode.Name, aired)
	}

	return nil
}

func runEpisode(cmd *cobra.Command, args []string) error {
	identifier, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid episode identifier %q", args[0])
	}

	episode, err := client.EpisodeByID(context.Background(), identifier)
	if err != nil {
		return err
	}

	fmt.Printf("%s S%02dE%02d\n", episode.Name, episode.SeasonNumber, episode.Number)
	if !episode.Aired.IsZero() {
		fmt.Printf("  aired: %s\n", episode.Aired.Format("2006-01-02"))
	}
	if episode.Overview != nil {
		fmt.Printf("  overview: %s\n", *episode.Overview)
	}

	byRole := episode.CharactersByRole()
	roles := make([]string, 0, len(byRole))
	for role := range byRole {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	for _, role := range roles {
		fmt.Printf("  %s:", role)
		for _, character := range byRole[role] {
			fmt.Printf(" %s", character.PersonName)
		}
		fmt.Println()
	}

	return nil
}
