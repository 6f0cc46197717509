package tvdb

import (
	"context"
)

// API defines the interface for TVDB operations
type API interface {
	// Authenticate logs the client in to the API.
	Authenticate(ctx context.Context) error

	// SearchShows searches for shows matching the given name.
	SearchShows(ctx context.Context, name string) ([]SearchResult, error)

	// ShowInfo fetches the extended payload for a show by its identifier.
	ShowInfo(ctx context.Context, identifier int64) (*Show, error)

	// ShowInfoAll fetches the extended payload for several shows concurrently.
	ShowInfoAll(ctx context.Context, identifiers []int64) ([]*Show, error)

	// EpisodesFromShowID fetches every episode of a show by its identifier.
	EpisodesFromShowID(ctx context.Context, identifier int64) ([]Episode, error)

	// EpisodesFromShow fetches every episode of the given show.
	EpisodesFromShow(ctx context.Context, show *Show) ([]Episode, error)

	// EpisodeByID fetches the extended payload for a single episode.
	EpisodeByID(ctx context.Context, identifier int64) (*Episode, error)
}
