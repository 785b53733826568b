// Package movies adapts the external movie catalog (TMDB) into the API's canonical
// movie shape and serves the public search and details routes.
package movies

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// animationGenreID is TMDB's genre id for Animation; search only surfaces animated films.
const animationGenreID = 16

// MovieSummary is the canonical movie shape returned by search.
type MovieSummary struct {
	TmdbID      int64  `json:"tmdbId" example:"129"`
	Title       string `json:"title" example:"Spirited Away"`
	PosterPath  string `json:"posterPath" example:"/39wmItIWsg5sZMyRUHLkWBcuVCM.jpg"`
	ReleaseDate string `json:"releaseDate" example:"2001-07-20"`
	Overview    string `json:"overview" example:"A young girl wanders into a world ruled by gods and witches."`
}

// MovieDetail is the canonical shape returned by the details lookup.
type MovieDetail MovieSummary

// SearchResponse wraps search results as `{"results": [...]}`.
type SearchResponse struct {
	Results []MovieSummary `json:"results"`
}

// DetailResponse wraps a single movie as `{"results": {...}}`.
type DetailResponse struct {
	Results *MovieDetail `json:"results"`
}

// tmdbMovie is the subset of a TMDB movie record we read.
type tmdbMovie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	Adult       bool    `json:"adult"`
	GenreIDs    []int   `json:"genre_ids"`
}

type tmdbSearchResponse struct {
	Page    int         `json:"page"`
	Results []tmdbMovie `json:"results"`
}

func (m tmdbMovie) poster() string {
	if m.PosterPath == nil {
		return ""
	}
	return *m.PosterPath
}

func (m tmdbMovie) isAnimation() bool {
	for _, g := range m.GenreIDs {
		if g == animationGenreID {
			return true
		}
	}
	return false
}

// ErrInvalidID is returned when a movie id is not a positive integer.
var ErrInvalidID = errors.New("invalid movie id")

// ParseID parses a TMDB movie id from a route parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ID is a TMDB movie id in a request body. Web clients send it either as a JSON number
// or as the string taken from the page URL, so both decode. A missing or null id is 0.
type ID int64

// UnmarshalJSON accepts 27205, "27205", "" and null. Negative ids are rejected; 0 is left
// for the caller's "required" check.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*id = 0
			return nil
		}
		n, err := ParseID(s)
		if err != nil {
			return fmt.Errorf("tmdbId %q: %w", s, err)
		}
		*id = ID(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil || n < 0 {
		return fmt.Errorf("tmdbId: %w", ErrInvalidID)
	}
	*id = ID(n)
	return nil
}
