package tvdb

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// defaultFetchConcurrency bounds how many show fetches run at once.
const defaultFetchConcurrency = 10

// ShowInfoAll fetches the extended payload for several shows concurrently.
// Results are returned in the order of the given identifiers. The first
// failure cancels the remaining fetches and is returned.
func (c *Client) ShowInfoAll(ctx context.Context, identifiers []int64) ([]*Show, error) {
	if len(identifiers) == 0 {
		return nil, nil
	}

	// Authenticate up front so the goroutines below only read the token.
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultFetchConcurrency)

	shows := make([]*Show, len(identifiers))

	for i, identifier := range identifiers {
		i, identifier := i, identifier
		g.Go(func() error {
			show, err := c.ShowInfo(ctx, identifier)
			if err != nil {
				return err
			}
			shows[i] = show
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return shows, nil
}
