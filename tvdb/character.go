package tvdb

import "fmt"

// RoleUnknown is the bucket characters with no role are grouped under.
const RoleUnknown = "Unknown"

// Character represents a person credited on a show or episode: an actor and
// their character, but also writers, directors and guest stars.
type Character struct {
	Identifier           int64       `json:"id"`
	Name                 *string     `json:"name"`
	PeopleID             int64       `json:"peopleId"`
	SeriesID             *int64      `json:"seriesId"`
	EpisodeID            *int64      `json:"episodeId"`
	MovieID              *int64      `json:"movieId"`
	Type                 int64       `json:"type"`
	PeopleType           *string     `json:"peopleType"`
	PersonName           string      `json:"personName"`
	SortOrder            int64       `json:"sort"`
	Image                *string     `json:"image"`
	PersonImageURL       *string     `json:"personImgURL"`
	IsFeatured           bool        `json:"isFeatured"`
	URL                  string      `json:"url"`
	NameTranslations     []string    `json:"nameTranslations"`
	OverviewTranslations []string    `json:"overviewTranslations"`
	Aliases              []Alias     `json:"aliases"`
	TagOptions           []TagOption `json:"tagOptions"`
}

// Role returns the character's role name, or RoleUnknown when the record
// carries none.
func (c Character) Role() string {
	if c.PeopleType == nil || *c.PeopleType == "" {
		return RoleUnknown
	}
	return *c.PeopleType
}

// Equal reports whether two characters refer to the same record.
func (c Character) Equal(other Character) bool {
	return c.Identifier == other.Identifier
}

// String returns the short representation of a Character.
func (c Character) String() string {
	return fmt.Sprintf("Character<%d - %s (%s)>", c.Identifier, c.PersonName, c.Role())
}

func (c *Character) validate() error {
	if c.Identifier == 0 {
		return missingField("Character", "id")
	}
	if c.PeopleID == 0 {
		return missingField("Character", "peopleId")
	}
	return nil
}
