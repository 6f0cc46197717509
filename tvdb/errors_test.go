package tvdb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 500, Message: "Server error"}
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "Server error")

	raw := &APIError{StatusCode: 502, Body: "<html>bad gateway</html>"}
	assert.Contains(t, raw.Error(), "<html>bad gateway</html>")
}

func TestAuthenticationErrorMessage(t *testing.T) {
	err := &AuthenticationError{StatusCode: 401, Reason: "login request rejected"}
	assert.Contains(t, err.Error(), "401")

	timedOut := &AuthenticationError{Reason: "timed out maximum number of times"}
	assert.Contains(t, timedOut.Error(), "timed out maximum number of times")
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Resource: "series/999999"}
	assert.Contains(t, err.Error(), "series/999999")
}

func TestErrorClassificationHelpers(t *testing.T) {
	notFound := fmt.Errorf("fetching show: %w", &NotFoundError{Resource: "series/1"})
	auth := fmt.Errorf("calling api: %w", &AuthenticationError{Reason: "bad pin"})
	generic := &APIError{StatusCode: 500}

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(auth))
	assert.False(t, IsNotFound(generic))
	assert.False(t, IsNotFound(nil))

	assert.True(t, IsAuthentication(auth))
	assert.False(t, IsAuthentication(notFound))
	assert.False(t, IsAuthentication(nil))
}

func TestCheckErrors(t *testing.T) {
	client := newTestClient(t, "http://example.invalid")

	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    func(t *testing.T, err error)
	}{
		{
			name:       "2xx is a no-op",
			statusCode: 200,
			body:       `{"data": []}`,
			wantErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:       "resource not found",
			statusCode: 404,
			body:       `{"Error": "Resource not found"}`,
			wantErr: func(t *testing.T, err error) {
				var nfe *NotFoundError
				assert.ErrorAs(t, err, &nfe)
			},
		},
		{
			name:       "other error text",
			statusCode: 500,
			body:       `{"Error": "Server error"}`,
			wantErr: func(t *testing.T, err error) {
				var apiErr *APIError
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, "Server error", apiErr.Message)
				assert.Equal(t, 500, apiErr.StatusCode)
			},
		},
		{
			name:       "missing Error field",
			statusCode: 500,
			body:       `{"message": "something else"}`,
			wantErr: func(t *testing.T, err error) {
				var apiErr *APIError
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, "Unknown error", apiErr.Message)
			},
		},
		{
			name:       "unparseable body",
			statusCode: 503,
			body:       "<html>service unavailable</html>",
			wantErr: func(t *testing.T, err error) {
				var apiErr *APIError
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, "<html>service unavailable</html>", apiErr.Body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.checkErrors("http://example.invalid/test", tt.statusCode, []byte(tt.body))
			tt.wantErr(t, err)
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	assert.True(t, errors.Is(fmt.Errorf("%w: path is empty", ErrInvalidPath), ErrInvalidPath))
}
