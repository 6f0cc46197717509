package tvdb

import (
	"context"
	"fmt"
	"net/url"
)

// SearchResult represents a show summary returned by the search endpoint.
// The search payload is looser than the extended series payload: the status
// is a bare string, aliases are plain strings and translation maps may
// arrive as JSON encoded inside strings.
type SearchResult struct {
	ObjectID             string            `json:"objectID"`
	Identifier           StringID          `json:"tvdb_id"`
	Name                 string            `json:"name"`
	Slug                 string            `json:"slug"`
	Status               StatusName        `json:"status"`
	Type                 string            `json:"type"`
	Year                 *string           `json:"year"`
	FirstAirTime         Date              `json:"first_air_time"`
	Aliases              []string          `json:"aliases"`
	Network              string            `json:"network"`
	Overview             *string           `json:"overview"`
	ImageURL             string            `json:"image_url"`
	Thumbnail            *string           `json:"thumbnail"`
	Country              *string           `json:"country"`
	PrimaryLanguage      *string           `json:"primary_language"`
	NameTranslated       TranslatedNameMap `json:"name_translated"`
	OverviewTranslated   TranslatedNameMap `json:"overview_translated"`
	Translations         TranslatedNameMap `json:"translations"`
	Overviews            TranslatedNameMap `json:"overviews"`
	RemoteIDs            []RemoteID        `json:"remote_ids"`
}

// String returns the short representation of a SearchResult.
func (r SearchResult) String() string {
	return fmt.Sprintf("%s (%s)", r.Name, r.Identifier)
}

func (r *SearchResult) validate() error {
	if r.Identifier == "" {
		return missingField("SearchResult", "tvdb_id")
	}
	if r.Name == "" {
		return missingField("SearchResult", "name")
	}
	if r.Slug == "" {
		return missingField("SearchResult", "slug")
	}
	return nil
}

// SearchShows searches for shows matching the given name. An empty name
// returns an empty result without touching the network.
func (c *Client) SearchShows(ctx context.Context, name string) ([]SearchResult, error) {
	if name == "" {
		return []SearchResult{}, nil
	}

	c.logger.Debug().Str("query", name).Msg("Searching for shows")

	path := fmt.Sprintf("search?query=%s&type=series", url.QueryEscape(name))
	pages, err := c.getPaged(ctx, path, "")
	if err != nil {
		return nil, err
	}

	results, err := decodeList[SearchResult](pages, "SearchResult")
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(results)).Msg("Search complete")

	return results, nil
}
