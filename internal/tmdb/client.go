package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrMissingAPIKey is returned by New when no credential is supplied.
var ErrMissingAPIKey = errors.New("tmdb api key required")

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Operation  string
	StatusCode int
	Latency    time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb %s returned %d (latency=%v)", e.Operation, e.StatusCode, e.Latency)
}

// Upstream defines the TMDB operations the catalog relies on.
type Upstream interface {
	SearchMulti(ctx context.Context, query string, opts SearchOptions) (*Page, error)
	Trending(ctx context.Context, mediaType, window string, opts ListOptions) (*Page, error)
	List(ctx context.Context, mediaType, listType string, opts ListOptions) (*Page, error)
	Details(ctx context.Context, mediaType string, id int64, opts DetailOptions) (*Details, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Upstream = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client. Per-call deadlines are expected on the context;
// the HTTP client timeout is only a backstop.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchOptions contains optional parameters for multi search.
type SearchOptions struct {
	Language     string
	Page         int
	IncludeAdult bool
}

// ListOptions contains optional parameters for trending and curated lists.
type ListOptions struct {
	Language string
	Region   string
	Page     int
}

// DetailOptions contains optional parameters for detail lookups.
type DetailOptions struct {
	Language         string
	AppendToResponse []string
}

// SearchMulti performs a TMDB multi search across movies, shows and people.
func (c *Client) SearchMulti(ctx context.Context, query string, opts SearchOptions) (*Page, error) {
	params := url.Values{}
	params.Set("query", query)
	setIfPresent(params, "language", opts.Language)
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	params.Set("include_adult", strconv.FormatBool(opts.IncludeAdult))

	var payload Page
	if err := c.get(ctx, "multi search", "/search/multi", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Trending fetches the trending list for a media type over a time window
// ("day" or "week").
func (c *Client) Trending(ctx context.Context, mediaType, window string, opts ListOptions) (*Page, error) {
	params := url.Values{}
	setIfPresent(params, "language", opts.Language)

	path := "/trending/" + url.PathEscape(mediaType) + "/" + url.PathEscape(window)
	var payload Page
	if err := c.get(ctx, "trending list", path, params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// List fetches a curated list such as popular or top_rated. listType is sent
// as a single path segment without further validation.
func (c *Client) List(ctx context.Context, mediaType, listType string, opts ListOptions) (*Page, error) {
	params := url.Values{}
	setIfPresent(params, "language", opts.Language)
	setIfPresent(params, "region", opts.Region)
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}

	path := "/" + url.PathEscape(mediaType) + "/" + url.PathEscape(listType)
	var payload Page
	if err := c.get(ctx, listType+" list", path, params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Details fetches a movie, show or person by TMDB ID.
func (c *Client) Details(ctx context.Context, mediaType string, id int64, opts DetailOptions) (*Details, error) {
	params := url.Values{}
	setIfPresent(params, "language", opts.Language)
	if len(opts.AppendToResponse) > 0 {
		params.Set("append_to_response", strings.Join(opts.AppendToResponse, ","))
	}

	path := fmt.Sprintf("/%s/%d", url.PathEscape(mediaType), id)
	var payload Details
	if err := c.get(ctx, mediaType+" details", path, params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, operation, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute %s request (latency=%v): %w", operation, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Operation: operation, StatusCode: resp.StatusCode, Latency: latency}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb %s response: %w", operation, err)
	}
	return nil
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
