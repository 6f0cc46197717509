package tvdb

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL        string
	timeout        time.Duration
	authTimeout    time.Duration
	maxAuthRetries int
	httpClient     *http.Client
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		baseURL:        DefaultBaseURL,
		timeout:        defaultTimeout,
		authTimeout:    defaultAuthTimeout,
		maxAuthRetries: defaultMaxAuthRetries,
	}
}

// WithBaseURL overrides the API base URL. Mainly useful for testing against
// a mock server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout applied to every request.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithAuthTimeout sets the per-attempt timeout for login requests.
func WithAuthTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.authTimeout = timeout
	}
}

// WithMaxAuthRetries sets the maximum number of login attempts made when
// the login request times out.
func WithMaxAuthRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 1 {
			o.maxAuthRetries = retries
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
