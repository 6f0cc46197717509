package tvdb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DecodeError is returned when a payload cannot be coerced to the declared
// shape of a domain record, naming the enclosing type and offending field.
type DecodeError struct {
	Type   string
	Field  string
	Reason string
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("failed to decode %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("failed to decode %s: field %q %s", e.Type, e.Field, e.Reason)
}

// validator is implemented by domain records that have required fields.
type validator interface {
	validate() error
}

// decodeValue unmarshals a raw payload into a domain record and enforces its
// required fields. Unknown keys in the payload are ignored so that upstream
// schema growth does not break decoding.
func decodeValue[T any](raw json.RawMessage, typeName string) (*T, error) {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, &DecodeError{Type: typeName, Reason: err.Error()}
	}

	if v, ok := any(&value).(validator); ok {
		if err := v.validate(); err != nil {
			return nil, err
		}
	}

	return &value, nil
}

// decodeList unmarshals each element of raw elements into a domain record.
func decodeList[T any](raws []json.RawMessage, typeName string) ([]T, error) {
	values := make([]T, 0, len(raws))

	for _, raw := range raws {
		value, err := decodeValue[T](raw, typeName)
		if err != nil {
			return nil, err
		}
		values = append(values, *value)
	}

	return values, nil
}

// missingField builds the decode error for a required field that was absent
// or null after parsing.
func missingField(typeName, field string) error {
	return &DecodeError{Type: typeName, Field: field, Reason: "is required but was missing"}
}

// StringID is an identifier the API delivers inconsistently as either a JSON
// string or a JSON number. It always decodes to its string form.
type StringID string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StringID(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("identifier is neither a string nor a number: %s", data)
	}
	*s = StringID(num.String())
	return nil
}

// Date is a calendar date field. The API's all-zero sentinel, empty strings
// and nulls all decode to the zero value.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := DateValue(s)
	if err != nil {
		return err
	}

	if t == nil {
		d.Time = time.Time{}
	} else {
		d.Time = *t
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// DateTime is a date-and-time field with the same sentinel handling as Date.
type DateTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := DateTimeValue(s)
	if err != nil {
		return err
	}

	if t == nil {
		d.Time = time.Time{}
	} else {
		d.Time = *t
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateTimeLayout))
}

// Timestamp is an epoch-seconds field decoded to local time.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}

	secs, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}

	t.Time = time.Unix(secs, 0)
	return nil
}

// TranslatedNameMap is a language-to-name mapping the API delivers either as
// a JSON object or as a JSON object encoded inside a string. Malformed
// payloads decode to an empty map rather than failing.
type TranslatedNameMap map[string]string

// UnmarshalJSON implements json.Unmarshaler.
func (m *TranslatedNameMap) UnmarshalJSON(data []byte) error {
	var direct map[string]string
	if err := json.Unmarshal(data, &direct); err == nil && direct != nil {
		*m = direct
		return nil
	}

	var s *string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = TranslatedNames(s)
		return nil
	}

	*m = TranslatedNameMap{}
	return nil
}
