package movies

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/auth"
)

// Catalog is what the handlers need from the movie catalog adapter.
type Catalog interface {
	Search(ctx context.Context, query string) ([]MovieSummary, error)
	GetDetails(ctx context.Context, tmdbID int64) (*MovieDetail, error)
}

// Handlers serves the public movie routes.
type Handlers struct {
	catalog Catalog
}

// NewHandlers creates movie handlers over a catalog.
func NewHandlers(catalog Catalog) *Handlers {
	return &Handlers{catalog: catalog}
}

// RegisterRoutes mounts the movie routes on r (expected at /api/movies).
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/search", h.HandleSearch())
	r.Get("/{tmdbId}", h.HandleDetails())
}

// catalogError maps adapter errors onto API errors. A rejected key gets its own message
// so operators can tell misconfiguration from an outage.
func catalogError(err error, fallback string) error {
	if errors.Is(err, ErrCatalogAuth) {
		return apperror.NewCatalogAuthError("Invalid TMDB API Key", err)
	}
	return apperror.NewExternalServiceError(fallback, err)
}

// HandleSearch godoc
// @Summary Search Movies
// @Description Searches TMDB and returns animated, non-adult titles that have a poster.
// @Tags Movies
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {object} movies.SearchResponse
// @Failure 400 {object} apperror.ErrorResponse "Search query is required"
// @Failure 500 {object} apperror.ErrorResponse "Failed to search movies"
// @Router /api/movies/search [get]
func (h *Handlers) HandleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("query"))
		if query == "" {
			auth.WriteError(w, r, apperror.NewValidationError("Search query is required", nil))
			return
		}

		results, err := h.catalog.Search(r.Context(), query)
		if err != nil {
			auth.WriteError(w, r, catalogError(err, "Failed to search movies"))
			return
		}

		auth.WriteJSON(w, http.StatusOK, SearchResponse{Results: results})
	}
}

// HandleDetails godoc
// @Summary Movie Details
// @Description Fetches one movie from TMDB by id.
// @Tags Movies
// @Produce json
// @Param tmdbId path int true "TMDB movie id"
// @Success 200 {object} movies.DetailResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid movie ID"
// @Failure 500 {object} apperror.ErrorResponse "Failed to fetch movie details"
// @Router /api/movies/{tmdbId} [get]
func (h *Handlers) HandleDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseID(chi.URLParam(r, "tmdbId"))
		if err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("Invalid movie ID", err))
			return
		}

		movie, err := h.catalog.GetDetails(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, catalogError(err, "Failed to fetch movie details"))
			return
		}

		auth.WriteJSON(w, http.StatusOK, DetailResponse{Results: movie})
	}
}
