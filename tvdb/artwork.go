package tvdb

import "fmt"

// ArtworkStatus describes the moderation status of an artwork record.
type ArtworkStatus struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

// Artwork represents a single piece of artwork, such as a poster or banner.
type Artwork struct {
	Identifier      StringID      `json:"id"`
	Image           string        `json:"image"`
	Thumbnail       string        `json:"thumbnail"`
	Language        *string       `json:"language"`
	Type            int64         `json:"type"`
	Score           *float64      `json:"score"`
	Width           int           `json:"width"`
	Height          int           `json:"height"`
	IncludesText    *bool         `json:"includesText"`
	ThumbnailWidth  int           `json:"thumbnailWidth"`
	ThumbnailHeight int           `json:"thumbnailHeight"`
	UpdatedAt       Timestamp     `json:"updatedAt"`
	SeriesID        *int64        `json:"seriesId"`
	PeopleID        *int64        `json:"peopleId"`
	SeasonID        *int64        `json:"seasonId"`
	EpisodeID       *int64        `json:"episodeId"`
	NetworkID       *int64        `json:"networkId"`
	MovieID         *int64        `json:"movieId"`
	TagOptions      []TagOption   `json:"tagOptions"`
	Status          ArtworkStatus `json:"status"`
}

// Equal reports whether two artworks refer to the same record.
func (a Artwork) Equal(other Artwork) bool {
	return a.Identifier == other.Identifier
}

// String returns the short representation of an Artwork.
func (a Artwork) String() string {
	return fmt.Sprintf("Artwork<%s - %s>", a.Identifier, a.Image)
}

func (a *Artwork) validate() error {
	if a.Identifier == "" {
		return missingField("Artwork", "id")
	}
	if a.Image == "" {
		return missingField("Artwork", "image")
	}
	return nil
}
