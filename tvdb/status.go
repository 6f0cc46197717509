package tvdb

import "encoding/json"

// StatusName represents the airing status of a show.
type StatusName string

const (
	// StatusContinuing indicates a show that is still airing.
	StatusContinuing StatusName = "Continuing"
	// StatusEnded indicates a show that has finished airing.
	StatusEnded StatusName = "Ended"
	// StatusUpcoming indicates a show that has not started airing yet.
	StatusUpcoming StatusName = "Upcoming"
	// StatusUnknown absorbs status strings this library does not know about.
	StatusUnknown StatusName = "Unknown"
)

// UnmarshalJSON implements json.Unmarshaler. Status strings are matched
// case-sensitively against the known set; anything else, including null,
// maps to StatusUnknown so that upstream additions do not break decoding.
func (s *StatusName) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw == nil {
		*s = StatusUnknown
		return nil
	}

	switch StatusName(*raw) {
	case StatusContinuing, StatusEnded, StatusUpcoming:
		*s = StatusName(*raw)
	default:
		*s = StatusUnknown
	}
	return nil
}

// String returns the string representation of a StatusName
func (s StatusName) String() string {
	if s == "" {
		return string(StatusUnknown)
	}
	return string(s)
}

// Status represents the full status record attached to a show.
type Status struct {
	ID          int64      `json:"id"`
	Name        StatusName `json:"name"`
	RecordType  string     `json:"recordType"`
	KeepUpdated bool       `json:"keepUpdated"`
}

// IsZero reports whether the status record was absent from the payload.
func (s Status) IsZero() bool {
	return s.ID == 0 && s.Name == ""
}
