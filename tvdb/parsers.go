package tvdb

import (
	"encoding/json"
	"fmt"
	"time"
)

// Sentinel values the API uses to mean "no value" while still sending a
// string, distinct from an absent field.
const (
	sentinelDate     = "0000-00-00"
	sentinelDateTime = "0000-00-00 00:00:00"

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// ParseDate parses a date string from the API in YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("the input string should not be empty")
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected format YYYY-MM-DD", s)
	}

	return t, nil
}

// ParseDateTime parses a datetime string from the API in
// "YYYY-MM-DD HH:MM:SS" format.
func ParseDateTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("the input string should not be empty")
	}

	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date time %q: expected format YYYY-MM-DD HH:MM:SS", s)
	}

	return t, nil
}

// DateValue converts a raw date field to a time, treating nil, the empty
// string and the all-zero sentinel as "no value".
func DateValue(s *string) (*time.Time, error) {
	if s == nil || *s == "" || *s == sentinelDate {
		return nil, nil
	}

	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// DateTimeValue converts a raw datetime field to a time, treating nil, the
// empty string and the all-zero sentinel as "no value".
func DateTimeValue(s *string) (*time.Time, error) {
	if s == nil || *s == "" || *s == sentinelDateTime {
		return nil, nil
	}

	t, err := ParseDateTime(*s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// TimestampValue converts optional epoch seconds to a local time.
func TimestampValue(v *int64) *time.Time {
	if v == nil {
		return nil
	}

	t := time.Unix(*v, 0)
	return &t
}

// OptionalFloat converts an optional numeric value to a float.
func OptionalFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}

	f := *v
	return &f
}

// OptionalEmptyString maps nil and empty strings to nil, passing other
// values through unchanged.
func OptionalEmptyString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}

// TranslatedNames parses a field the API delivers as a JSON object encoded
// inside a string (language code to translated name). Anything that is not a
// valid JSON object, including nil and the empty string, yields an empty map.
func TranslatedNames(s *string) map[string]string {
	if s == nil || *s == "" {
		return map[string]string{}
	}

	var names map[string]string
	if err := json.Unmarshal([]byte(*s), &names); err != nil || names == nil {
		return map[string]string{}
	}

	return names
}
