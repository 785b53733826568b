package movies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/user/cinelog-go/config"
)

var (
	// ErrCatalogAuth means TMDB rejected the API key (HTTP 401).
	ErrCatalogAuth = errors.New("movie catalog rejected the api key")
	// ErrCatalogUnavailable covers transport failures, other non-2xx statuses, and bad payloads.
	ErrCatalogUnavailable = errors.New("movie catalog unavailable")
)

// TMDBClient talks to The Movie Database v3 API.
// There is no client-side timeout or retry: each call is bounded by the caller's context.
type TMDBClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewTMDBClient creates a client. A nil httpClient uses a plain &http.Client{}.
func NewTMDBClient(cfg *config.TMDBConfig, httpClient *http.Client, logger *slog.Logger) *TMDBClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TMDBClient{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

// Search returns animated, non-adult movies with a poster that match query.
// The slice is never nil.
func (c *TMDBClient) Search(ctx context.Context, query string) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp tmdbSearchResponse
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}

	results := make([]MovieSummary, 0, len(resp.Results))
	for _, m := range resp.Results {
		if m.poster() == "" || m.Adult || !m.isAnimation() {
			continue
		}
		results = append(results, MovieSummary{
			TmdbID:      m.ID,
			Title:       m.Title,
			PosterPath:  m.poster(),
			ReleaseDate: m.ReleaseDate,
			Overview:    m.Overview,
		})
	}

	c.logger.Debug("tmdb search",
		"query", query,
		"upstream", len(resp.Results),
		"kept", len(results),
	)
	return results, nil
}

// GetDetails fetches a single movie by TMDB id.
func (c *TMDBClient) GetDetails(ctx context.Context, tmdbID int64) (*MovieDetail, error) {
	var m tmdbMovie
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(tmdbID, 10), nil, &m); err != nil {
		return nil, err
	}
	return &MovieDetail{
		TmdbID:      m.ID,
		Title:       m.Title,
		PosterPath:  m.poster(),
		ReleaseDate: m.ReleaseDate,
		Overview:    m.Overview,
	}, nil
}

// get issues GET baseURL+path with the api key appended and decodes the JSON body into out.
func (c *TMDBClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrCatalogUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error repeats the full URL, api key included; keep only the cause.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("%w: GET %s: %v", ErrCatalogUnavailable, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrCatalogAuth
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: GET %s: status %d", ErrCatalogUnavailable, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrCatalogUnavailable, path, err)
	}
	return nil
}
