package tvdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production TVDB v4 API base URL.
	DefaultBaseURL = "https://api4.thetvdb.com/v4"

	defaultTimeout        = 30 * time.Second
	defaultAuthTimeout    = 3 * time.Second
	defaultMaxAuthRetries = 3
)

// Client wraps the TVDB v4 API. Instantiate a new one to start a new
// authentication session.
//
// A Client is not safe for concurrent use by multiple goroutines: the token
// read-then-write during Authenticate is not synchronized. Separate Client
// instances are fully independent.
type Client struct {
	baseURL        string
	apiKey         string
	pin            string
	authToken      string
	httpClient     *http.Client
	logger         zerolog.Logger
	authTimeout    time.Duration
	maxAuthRetries int
}

// NewClient creates a new TVDB client. No network calls are made until the
// first operation; credentials are validated locally.
func NewClient(apiKey, pin string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if pin == "" {
		return nil, ErrMissingPIN
	}

	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:        strings.TrimRight(options.baseURL, "/"),
		apiKey:         apiKey,
		pin:            pin,
		httpClient:     httpClient,
		logger:         logger,
		authTimeout:    options.authTimeout,
		maxAuthRetries: options.maxAuthRetries,
	}, nil
}

// expandURL takes the path from a URL and expands it to the full API URL.
// Absolute URLs, such as pagination cursors, pass through unchanged.
func (c *Client) expandURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// constructHeaders builds the headers used for all requests, merging in any
// additional headers. Additional headers override the defaults.
func (c *Client) constructHeaders(additional map[string]string) http.Header {
	headers := http.Header{}
	headers.Set("Accept", "application/json")

	if c.authToken != "" {
		headers.Set("Authorization", "Bearer "+c.authToken)
	}

	for name, value := range additional {
		headers.Set(name, value)
	}

	return headers
}

// loginResponse covers both token locations the service has used: nested
// under data for v4, top level for older deployments.
type loginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
	Token string `json:"token"`
}

// Authenticate logs the client in to the API. It exits early if a token is
// already held; every operation requiring authentication calls it, so
// calling it directly is optional.
//
// Login attempts that time out at the transport level are retried up to the
// configured maximum with no backoff. All other failures surface
// immediately as an AuthenticationError.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.authToken != "" {
		c.logger.Debug().Msg("Already authenticated, skipping")
		return nil
	}

	c.logger.Info().Msg("Authenticating")

	loginBody, err := json.Marshal(map[string]string{
		"apikey": c.apiKey,
		"pin":    c.pin,
	})
	if err != nil {
		return fmt.Errorf("failed to encode login body: %w", err)
	}

	var statusCode int
	var body []byte

	for attempt := 1; ; attempt++ {
		statusCode, body, err = c.postLogin(ctx, loginBody)
		if err == nil {
			break
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if !isTimeout(err) {
			return &AuthenticationError{Reason: fmt.Sprintf("login request failed: %v", err)}
		}

		if attempt < c.maxAuthRetries {
			c.logger.Warn().Int("attempt", attempt).Msg("Authentication timed out, but will retry")
			continue
		}

		c.logger.Error().Msg("Authentication timed out maximum number of times")
		return &AuthenticationError{Reason: "timed out maximum number of times"}
	}

	if statusCode < 200 || statusCode >= 300 {
		return &AuthenticationError{StatusCode: statusCode, Reason: "login request rejected"}
	}

	var login loginResponse
	if err := json.Unmarshal(body, &login); err != nil {
		return &AuthenticationError{Reason: fmt.Sprintf("failed to parse login response: %v", err)}
	}

	token := login.Data.Token
	if token == "" {
		token = login.Token
	}
	if token == "" {
		return &AuthenticationError{Reason: "failed to get token from login response"}
	}

	// The token is only committed after a fully successful parse.
	c.authToken = token
	c.logger.Info().Msg("Authenticated successfully")

	return nil
}

// postLogin issues a single login attempt with a bounded timeout.
func (c *Client) postLogin(ctx context.Context, loginBody []byte) (int, []byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.authTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.expandURL("login"), bytes.NewReader(loginBody))
	if err != nil {
		return 0, nil, err
	}
	req.Header = c.constructHeaders(map[string]string{"Content-Type": "application/json"})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}

// isTimeout reports whether err was caused by a transport-level timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// envelope is the wrapping structure every successful endpoint response
// follows.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Links  *pageLinks      `json:"links"`
	Status string          `json:"status"`
}

type pageLinks struct {
	Prev string `json:"prev"`
	Self string `json:"self"`
	Next string `json:"next"`
}

// isMissing reports whether the envelope's data field was absent or null.
func (e *envelope) isMissing() bool {
	return len(e.Data) == 0 || string(e.Data) == "null"
}

// getEnvelope issues a single GET and returns the parsed response envelope.
func (c *Client) getEnvelope(ctx context.Context, requestURL string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = c.constructHeaders(nil)

	c.logger.Debug().Str("url", requestURL).Msg("Sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := c.checkErrors(requestURL, resp.StatusCode, body); err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "failed to parse response body", Body: string(body)}
	}

	return &env, nil
}

// checkErrors classifies a non-2xx response into the error taxonomy.
func (c *Client) checkErrors(requestURL string, statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	var payload struct {
		Error string `json:"Error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return &APIError{StatusCode: statusCode, Body: string(body)}
	}

	if payload.Error == "" {
		return &APIError{StatusCode: statusCode, Message: "Unknown error", Body: string(body)}
	}

	if payload.Error == "Resource not found" {
		return &NotFoundError{Resource: requestURL}
	}

	return &APIError{StatusCode: statusCode, Message: payload.Error}
}

// get ensures the client is authenticated, issues a single GET and returns
// the envelope's data field.
func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrInvalidPath)
	}

	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	requestURL := c.expandURL(path)

	env, err := c.getEnvelope(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	if env.isMissing() {
		return nil, &NotFoundError{Resource: "could not get data for " + requestURL}
	}

	return env.Data, nil
}

// getPaged repeatedly GETs starting at path, accumulating each page's data
// while following the links.next cursor. When key is non-empty, items are
// drawn from data[key] rather than data directly.
func (c *Client) getPaged(ctx context.Context, path, key string) ([]json.RawMessage, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrInvalidPath)
	}

	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	var items []json.RawMessage
	next := c.expandURL(path)

	for page := 1; next != ""; page++ {
		env, err := c.getEnvelope(ctx, next)
		if err != nil {
			return nil, err
		}

		if env.isMissing() {
			return nil, &NotFoundError{Resource: "could not get data for " + next}
		}

		data := env.Data
		if key != "" {
			var keyed map[string]json.RawMessage
			if err := json.Unmarshal(data, &keyed); err != nil {
				return nil, fmt.Errorf("failed to parse page data: %w", err)
			}
			data = keyed[key]
			if len(data) == 0 || string(data) == "null" {
				return nil, &NotFoundError{Resource: "could not get data for " + next}
			}
		}

		var pageItems []json.RawMessage
		if err := json.Unmarshal(data, &pageItems); err != nil {
			return nil, fmt.Errorf("failed to parse page data: %w", err)
		}
		items = append(items, pageItems...)

		c.logger.Debug().Int("page", page).Int("count", len(pageItems)).Int("total", len(items)).Msg("Retrieved page")

		if env.Links == nil || env.Links.Next == "" {
			break
		}
		next = c.expandURL(env.Links.Next)
	}

	return items, nil
}

// ShowInfo fetches the extended payload for a show by its identifier.
func (c *Client) ShowInfo(ctx context.Context, identifier int64) (*Show, error) {
	data, err := c.get(ctx, fmt.Sprintf("series/%d/extended?meta=translations&short=false", identifier))
	if err != nil {
		return nil, err
	}

	return decodeValue[Show](data, "Show")
}

// EpisodesFromShowID fetches every episode of a show in the default season
// order, following pagination to the end.
func (c *Client) EpisodesFromShowID(ctx context.Context, identifier int64) ([]Episode, error) {
	pages, err := c.getPaged(ctx, fmt.Sprintf("series/%d/episodes/default", identifier), "episodes")
	if err != nil {
		return nil, err
	}

	return decodeList[Episode](pages, "Episode")
}

// EpisodesFromShow fetches every episode of the given show.
func (c *Client) EpisodesFromShow(ctx context.Context, show *Show) ([]Episode, error) {
	if show == nil || show.Identifier == "" {
		return nil, errors.New("show must have an identifier to fetch episodes")
	}

	pages, err := c.getPaged(ctx, fmt.Sprintf("series/%s/episodes/default", show.Identifier), "episodes")
	if err != nil {
		return nil, err
	}

	return decodeList[Episode](pages, "Episode")
}

// EpisodeByID fetches the extended payload for a single episode.
func (c *Client) EpisodeByID(ctx context.Context, identifier int64) (*Episode, error) {
	data, err := c.get(ctx, fmt.Sprintf("episodes/%d/extended?meta=translations", identifier))
	if err != nil {
		return nil, err
	}

	return decodeValue[Episode](data, "Episode")
}
