package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/wook89/movie-search/internal/config"
	"github.com/wook89/movie-search/internal/logging"
	"github.com/wook89/movie-search/internal/services"
	"github.com/wook89/movie-search/internal/tmdb"
)

const (
	component = "catalog"

	defaultRequestTimeout      = 10 * time.Second
	defaultAutocompleteTimeout = 8 * time.Second

	// MaxRankingLimit caps the number of ranked results returned.
	MaxRankingLimit = 20

	ListTrending = "trending"
	ListPopular  = "popular"
)

// Client-facing messages.
const (
	MsgMissingAPIKey     = "TMDB_API_KEY is missing"
	MsgRankingMediaType  = "media_type must be 'movie' or 'tv'"
	MsgInvalidMediaType  = "Invalid media_type"
	msgUpstreamTimeout   = "upstream request timed out"
	msgRequestCanceled   = "request canceled by client"
	msgUpstreamFailure   = "upstream request failed"
	msgUpstreamStatusFmt = "upstream returned status %d"
)

// Options configures a Catalog.
type Options struct {
	ImageBaseURL        string
	RequestTimeout      time.Duration
	AutocompleteTimeout time.Duration
	// Language and Region are the defaults callers apply when a request
	// omits lang or region. Query fields are forwarded as given.
	Language string
	Region   string
	Logger   *slog.Logger
}

// Catalog serves search, autocomplete, rankings and details.
type Catalog struct {
	upstream   tmdb.Upstream
	normalizer Normalizer
	opts       Options
	logger     *slog.Logger
}

// New builds a Catalog. A nil upstream is allowed: every operation then
// fails with a configuration error before touching the network.
func New(upstream tmdb.Upstream, opts Options) *Catalog {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.AutocompleteTimeout <= 0 {
		opts.AutocompleteTimeout = defaultAutocompleteTimeout
	}
	return &Catalog{
		upstream:   upstream,
		normalizer: Normalizer{ImageBase: opts.ImageBaseURL},
		opts:       opts,
		logger:     logging.NewComponentLogger(opts.Logger, component),
	}
}

// NewFromConfig wires a TMDB client from cfg. A missing API key is not an
// error here; it is reported per request.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.New("catalog: config is required")
	}
	var upstream tmdb.Upstream
	if cfg.HasAPIKey() {
		client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("create tmdb client: %w", err)
		}
		upstream = client
	}
	return New(upstream, Options{
		ImageBaseURL:        cfg.TMDB.ImageBaseURL,
		RequestTimeout:      cfg.RequestTimeout(),
		AutocompleteTimeout: cfg.AutocompleteTimeout(),
		Language:            cfg.TMDB.Language,
		Region:              cfg.TMDB.Region,
		Logger:              logger,
	}), nil
}

// Configured reports whether an upstream client is available.
func (c *Catalog) Configured() bool {
	return c.upstream != nil
}

// SearchQuery holds /search parameters.
type SearchQuery struct {
	Query    string
	Language string
	Page     int
}

// SearchResult is the /search response body.
type SearchResult struct {
	Query   string   `json:"query"`
	Results []Record `json:"results"`
}

// Search runs a multi search and returns normalized movie, tv and person
// records in upstream order.
func (c *Catalog) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	const op = "search"
	if err := c.requireUpstream(op); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(services.WithOperation(ctx, op), c.opts.RequestTimeout)
	defer cancel()

	start := time.Now()
	page, err := c.upstream.SearchMulti(ctx, norm.NFC.String(q.Query), tmdb.SearchOptions{
		Language: q.Language,
		Page:     q.Page,
	})
	if err != nil {
		return nil, c.classify(ctx, op, err)
	}

	results := make([]Record, 0, len(page.Results))
	for _, item := range page.Results {
		if !Kind(item.MediaType).Known() {
			continue
		}
		results = append(results, c.normalizer.Normalize(item, SizeList))
	}
	c.logCompleted(ctx, start, len(page.Results), len(results))
	return &SearchResult{Query: q.Query, Results: results}, nil
}

// AutocompleteQuery holds /autocomplete parameters.
type AutocompleteQuery struct {
	Prefix   string
	Language string
	Limit    int
}

// AutocompleteResult is the /autocomplete response body.
type AutocompleteResult struct {
	Prefix      string       `json:"prefix"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Autocomplete returns up to Limit suggestions for a typed prefix.
func (c *Catalog) Autocomplete(ctx context.Context, q AutocompleteQuery) (*AutocompleteResult, error) {
	const op = "autocomplete"
	if err := c.requireUpstream(op); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(services.WithOperation(ctx, op), c.opts.AutocompleteTimeout)
	defer cancel()

	start := time.Now()
	page, err := c.upstream.SearchMulti(ctx, norm.NFC.String(q.Prefix), tmdb.SearchOptions{
		Language: q.Language,
		Page:     1,
	})
	if err != nil {
		return nil, c.classify(ctx, op, err)
	}

	limit := max(q.Limit, 0)
	suggestions := make([]Suggestion, 0, min(limit, len(page.Results)))
	for _, item := range page.Results {
		if len(suggestions) >= limit {
			break
		}
		if !Kind(item.MediaType).Known() {
			continue
		}
		suggestions = append(suggestions, c.normalizer.Suggest(item, SizeSuggestion))
	}
	c.logCompleted(ctx, start, len(page.Results), len(suggestions))
	return &AutocompleteResult{Prefix: q.Prefix, Suggestions: suggestions}, nil
}

// RankingsQuery holds /rankings parameters.
type RankingsQuery struct {
	MediaType string
	ListType  string
	Region    string
	Language  string
	Limit     int
}

// RankingsResult is the /rankings response body.
type RankingsResult struct {
	Type      string   `json:"type"`
	MediaType string   `json:"media_type"`
	Region    string   `json:"region"`
	Results   []Record `json:"results"`
}

// Rankings returns a curated list (popular, top_rated, trending, ...) for
// movies or tv, ranked from 1. The limit is clamped to [1, MaxRankingLimit].
func (c *Catalog) Rankings(ctx context.Context, q RankingsQuery) (*RankingsResult, error) {
	const op = "rankings"
	if err := c.requireUpstream(op); err != nil {
		return nil, err
	}
	kind := Kind(q.MediaType)
	if !kind.IsRankable() {
		return nil, services.Wrap(services.ErrValidation, component, op, MsgRankingMediaType, nil)
	}
	ctx, cancel := context.WithTimeout(services.WithOperation(ctx, op), c.opts.RequestTimeout)
	defer cancel()

	start := time.Now()
	var (
		page *tmdb.Page
		err  error
	)
	if q.ListType == ListTrending {
		page, err = c.upstream.Trending(ctx, q.MediaType, "day", tmdb.ListOptions{Language: q.Language})
	} else {
		page, err = c.upstream.List(ctx, q.MediaType, q.ListType, tmdb.ListOptions{
			Language: q.Language,
			Region:   q.Region,
			Page:     1,
		})
	}
	if err != nil {
		return nil, c.classify(ctx, op, err)
	}

	items := page.Results
	if limit := clampRankingLimit(q.Limit); len(items) > limit {
		items = items[:limit]
	}
	results := make([]Record, 0, len(items))
	for i, item := range items {
		item.MediaType = q.MediaType
		record := c.normalizer.Normalize(item, SizeList)
		record.Rank = i + 1
		results = append(results, record)
	}
	c.logCompleted(ctx, start, len(page.Results), len(results))
	return &RankingsResult{Type: q.ListType, MediaType: q.MediaType, Region: q.Region, Results: results}, nil
}

func clampRankingLimit(limit int) int {
	return max(1, min(limit, MaxRankingLimit))
}

// DetailsQuery holds /details parameters.
type DetailsQuery struct {
	MediaType string
	ID        int64
	Language  string
}

// Details fetches one movie, show or person with its videos and keywords.
func (c *Catalog) Details(ctx context.Context, q DetailsQuery) (*Detail, error) {
	const op = "details"
	if err := c.requireUpstream(op); err != nil {
		return nil, err
	}
	kind := Kind(q.MediaType)
	if !kind.Known() {
		return nil, services.Wrap(services.ErrValidation, component, op, MsgInvalidMediaType, nil)
	}

	ctx, cancel := context.WithTimeout(services.WithOperation(ctx, op), c.opts.RequestTimeout)
	defer cancel()

	start := time.Now()
	details, err := c.upstream.Details(ctx, q.MediaType, q.ID, tmdb.DetailOptions{
		Language:         q.Language,
		AppendToResponse: []string{"videos", "keywords"},
	})
	if err != nil {
		return nil, c.classify(ctx, op, err)
	}
	detail := c.normalizer.detail(kind, details)
	c.logCompleted(ctx, start, 1, 1)
	return &detail, nil
}

func (c *Catalog) requireUpstream(op string) error {
	if c.upstream == nil {
		return services.Wrap(services.ErrConfiguration, component, op, MsgMissingAPIKey, nil)
	}
	return nil
}

// DefaultLanguage is the configured language for requests that omit lang.
func (c *Catalog) DefaultLanguage() string {
	return c.opts.Language
}

// DefaultRegion is the configured region for ranking requests that omit it.
func (c *Catalog) DefaultRegion() string {
	return c.opts.Region
}

// classify tags an upstream failure for status mapping. A caller that went
// away is not an upstream failure.
func (c *Catalog) classify(ctx context.Context, op string, err error) error {
	var netErr net.Error
	var statusErr *tmdb.StatusError
	switch {
	case errors.Is(err, context.Canceled):
		err = services.Wrap(services.ErrCanceled, component, op, msgRequestCanceled, err)
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		err = services.Wrap(services.ErrTimeout, component, op, msgUpstreamTimeout, err)
	case errors.As(err, &statusErr):
		err = services.Wrap(services.ErrUpstream, component, op, fmt.Sprintf(msgUpstreamStatusFmt, statusErr.StatusCode), err)
	default:
		err = services.Wrap(services.ErrUpstream, component, op, msgUpstreamFailure, err)
	}
	logging.WithContext(ctx, c.logger).Debug("tmdb request failed", logging.Args(logging.Error(err))...)
	return err
}

func (c *Catalog) logCompleted(ctx context.Context, start time.Time, received, returned int) {
	logging.WithContext(ctx, c.logger).Debug("tmdb request completed",
		logging.Args(
			logging.Int("received", received),
			logging.Int("returned", returned),
			logging.Duration("latency", time.Since(start)),
		)...,
	)
}
