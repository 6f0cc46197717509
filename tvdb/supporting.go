package tvdb

import "fmt"

// Alias is an alternative name for a show in a given language.
type Alias struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// String returns the alias name.
func (a Alias) String() string {
	return a.Name
}

// Genre represents a genre a show belongs to.
type Genre struct {
	Identifier int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

// Network represents a broadcast network.
type Network struct {
	Identifier   int64   `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Abbreviation *string `json:"abbreviation"`
	Country      *string `json:"country"`
}

// String returns the short representation of a Network.
func (n Network) String() string {
	return fmt.Sprintf("Network<%d - %s>", n.Identifier, n.Name)
}

// CompanyType describes what kind of company a Company record is.
type CompanyType struct {
	ID   int64  `json:"companyTypeId"`
	Name string `json:"companyTypeName"`
}

// Company represents a production or distribution company attached to a
// show or episode.
type Company struct {
	Identifier         int64       `json:"id"`
	Name               string      `json:"name"`
	Slug               string      `json:"slug"`
	Country            *string     `json:"country"`
	PrimaryCompanyType int64       `json:"primaryCompanyType"`
	ActiveDate         Date        `json:"activeDate"`
	InactiveDate       Date        `json:"inactiveDate"`
	CompanyType        CompanyType `json:"companyType"`
}

// String returns the short representation of a Company.
func (c Company) String() string {
	return fmt.Sprintf("Company<%d - %s>", c.Identifier, c.Name)
}

// RemoteID is an identifier for the same entity on another service, such as
// an IMDB or TheMovieDB identifier.
type RemoteID struct {
	Identifier string `json:"id"`
	Type       int64  `json:"type"`
	SourceName string `json:"sourceName"`
}

// Trailer represents a trailer video for a show or episode.
type Trailer struct {
	Identifier int64   `json:"id"`
	Name       string  `json:"name"`
	URL        string  `json:"url"`
	Language   *string `json:"language"`
	Runtime    int     `json:"runtime"`
}

// ContentRating represents a regional content rating.
type ContentRating struct {
	Identifier  int64   `json:"id"`
	Name        string  `json:"name"`
	Country     *string `json:"country"`
	Description *string `json:"description"`
	ContentType *string `json:"contentType"`
	Order       int     `json:"order"`
	FullName    *string `json:"fullname"`
}

// Award represents an award attached to a show or episode.
type Award struct {
	Identifier int64  `json:"id"`
	Name       string `json:"name"`
}

// TagOption represents a tag value attached to a record.
type TagOption struct {
	Identifier int64   `json:"id"`
	Tag        int64   `json:"tag"`
	TagName    string  `json:"tagName"`
	Name       string  `json:"name"`
	HelpText   *string `json:"helpText"`
}

// SeasonType describes the ordering scheme a season belongs to, such as the
// official order or an alternate DVD order.
type SeasonType struct {
	Identifier    int64   `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	AlternateName *string `json:"alternateName"`
}

// Season represents a season of a show.
type Season struct {
	Identifier           int64      `json:"id"`
	SeriesID             int64      `json:"seriesId"`
	Number               int        `json:"number"`
	Name                 *string    `json:"name"`
	Slug                 *string    `json:"slug"`
	Image                *string    `json:"image"`
	ImageType            *int64     `json:"imageType"`
	LastUpdated          DateTime   `json:"lastUpdated"`
	NameTranslations     []string   `json:"nameTranslations"`
	OverviewTranslations []string   `json:"overviewTranslations"`
	Type                 SeasonType `json:"type"`
}

// String returns the short representation of a Season.
func (s Season) String() string {
	name := ""
	if s.Name != nil {
		name = *s.Name
	}
	return fmt.Sprintf("Season<%d - %s>", s.Identifier, name)
}
