package tvdb

import (
	"errors"
	"fmt"
)

// Common errors returned before any network call is attempted.
var (
	// ErrMissingAPIKey is returned when a client is constructed without an API key.
	ErrMissingAPIKey = errors.New("no API key provided")

	// ErrMissingPIN is returned when a client is constructed without a subscriber PIN.
	ErrMissingPIN = errors.New("no PIN provided")

	// ErrInvalidPath is returned when a request is attempted with an empty URL path.
	ErrInvalidPath = errors.New("invalid URL path")
)

// APIError represents a TVDB API error that does not match a more specific
// case. It carries the HTTP status code and whatever error text (or raw body,
// when the body was not valid JSON) the service returned.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("TVDB API error: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("TVDB API error: status %d: %s", e.StatusCode, e.Message)
}

// AuthenticationError represents a login failure: bad credentials, a missing
// token in an otherwise successful login response, or exhausted timeout
// retries.
type AuthenticationError struct {
	StatusCode int
	Reason     string
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("authentication failed with status code %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// NotFoundError is returned when the service explicitly reports a missing
// resource, or when a success response carries no data field.
type NotFoundError struct {
	Resource string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Resource)
}

// IsNotFound reports whether err indicates a missing resource.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsAuthentication reports whether err indicates an authentication failure.
func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}
