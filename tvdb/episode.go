package tvdb

import "fmt"

// Episode represents an episode of a show.
type Episode struct {
	Identifier           int64           `json:"id"`
	SeriesID             int64           `json:"seriesId"`
	Name                 string          `json:"name"`
	Aired                Date            `json:"aired"`
	Runtime              *int            `json:"runtime"`
	Overview             *string         `json:"overview"`
	Image                *string         `json:"image"`
	ImageType            *int64          `json:"imageType"`
	IsMovie              int             `json:"isMovie"`
	Number               int             `json:"number"`
	SeasonNumber         int             `json:"seasonNumber"`
	SeasonName           *string         `json:"seasonName"`
	LastUpdated          DateTime        `json:"lastUpdated"`
	FinaleType           *string         `json:"finaleType"`
	ProductionCode       *string         `json:"productionCode"`
	AbsoluteNumber       *int            `json:"absoluteNumber"`
	AirsAfterSeason      *int            `json:"airsAfterSeason"`
	AirsBeforeSeason     *int            `json:"airsBeforeSeason"`
	AirsBeforeEpisode    *int            `json:"airsBeforeEpisode"`
	Year                 *string         `json:"year"`
	Characters           []Character     `json:"characters"`
	Networks             []Network       `json:"networks"`
	Companies            []Company       `json:"companies"`
	RemoteIDs            []RemoteID      `json:"remoteIds"`
	Seasons              []Season        `json:"seasons"`
	Trailers             []Trailer       `json:"trailers"`
	ContentRatings       []ContentRating `json:"contentRatings"`
	Awards               []Award         `json:"awards"`
	TagOptions           []TagOption     `json:"tagOptions"`
	NameTranslations     []string        `json:"nameTranslations"`
	OverviewTranslations []string        `json:"overviewTranslations"`
}

// CharactersByRole groups the episode's characters by their role name.
// Characters without a role are grouped under RoleUnknown. An episode with
// no character list yields an empty map.
func (e *Episode) CharactersByRole() map[string][]Character {
	output := map[string][]Character{}

	for _, character := range e.Characters {
		role := character.Role()
		output[role] = append(output[role], character)
	}

	return output
}

// Equal reports whether two episodes refer to the same record.
func (e *Episode) Equal(other *Episode) bool {
	return other != nil && e.Identifier == other.Identifier
}

// String returns the short representation of an Episode.
func (e *Episode) String() string {
	return fmt.Sprintf("Episode<%d - %s>", e.Identifier, e.Name)
}

func (e *Episode) validate() error {
	if e.Identifier == 0 {
		return missingField("Episode", "id")
	}
	if e.Name == "" {
		return missingField("Episode", "name")
	}

	for i := range e.Characters {
		if err := e.Characters[i].validate(); err != nil {
			return err
		}
	}

	return nil
}
