package tvdb

import "fmt"

// AirDays records which days of the week a show airs on.
type AirDays struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

// Show represents a single show, as returned by the extended series
// endpoint.
type Show struct {
	Identifier           StringID        `json:"id"`
	Name                 string          `json:"name"`
	Slug                 string          `json:"slug"`
	Image                *string         `json:"image"`
	FirstAired           Date            `json:"firstAired"`
	LastAired            Date            `json:"lastAired"`
	NextAired            Date            `json:"nextAired"`
	Score                *float64        `json:"score"`
	Status               Status          `json:"status"`
	OriginalCountry      *string         `json:"originalCountry"`
	OriginalLanguage     *string         `json:"originalLanguage"`
	OriginalNetwork      *Network        `json:"originalNetwork"`
	LatestNetwork        *Network        `json:"latestNetwork"`
	DefaultSeasonType    int64           `json:"defaultSeasonType"`
	IsOrderRandomized    bool            `json:"isOrderRandomized"`
	LastUpdated          DateTime        `json:"lastUpdated"`
	AverageRuntime       *int            `json:"averageRuntime"`
	Overview             *string         `json:"overview"`
	Year                 *string         `json:"year"`
	AirsTime             *string         `json:"airsTime"`
	AirsDays             *AirDays        `json:"airsDays"`
	Country              *string         `json:"country"`
	Aliases              []Alias         `json:"aliases"`
	Genres               []Genre         `json:"genres"`
	Companies            []Company       `json:"companies"`
	Artworks             []Artwork       `json:"artworks"`
	RemoteIDs            []RemoteID      `json:"remoteIds"`
	Characters           []Character     `json:"characters"`
	Seasons              []Season        `json:"seasons"`
	Trailers             []Trailer       `json:"trailers"`
	ContentRatings       []ContentRating `json:"contentRatings"`
	Tags                 []TagOption     `json:"tags"`
	NameTranslations     []string        `json:"nameTranslations"`
	OverviewTranslations []string        `json:"overviewTranslations"`
}

// Equal reports whether two shows refer to the same record.
func (s *Show) Equal(other *Show) bool {
	return other != nil && s.Identifier == other.Identifier
}

// String returns the short representation of a Show.
func (s *Show) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Identifier)
}

func (s *Show) validate() error {
	if s.Identifier == "" {
		return missingField("Show", "id")
	}
	if s.Name == "" {
		return missingField("Show", "name")
	}
	if s.Slug == "" {
		return missingField("Show", "slug")
	}
	if s.Status.IsZero() {
		return missingField("Show", "status")
	}
	if s.Aliases == nil {
		return missingField("Show", "aliases")
	}
	if s.OriginalNetwork == nil && len(s.Companies) == 0 {
		return missingField("Show", "originalNetwork")
	}

	for i := range s.Artworks {
		if err := s.Artworks[i].validate(); err != nil {
			return err
		}
	}
	for i := range s.Characters {
		if err := s.Characters[i].validate(); err != nil {
			return err
		}
	}

	return nil
}
