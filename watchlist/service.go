package watchlist

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/logger"
)

// Release dates arrive as TMDB's "2006-01-02" or as a full timestamp.
var releaseDateLayouts = []string{"2006-01-02", time.RFC3339}

// StructValidator checks `validate` struct tags.
type StructValidator interface {
	Validate(s any) error
}

// Service holds the watchlist rules on top of a Store.
type Service struct {
	store     Store
	validator StructValidator
}

// NewService creates a watchlist Service.
func NewService(store Store, v StructValidator) *Service {
	return &Service{store: store, validator: v}
}

// Add lists a movie for userID. A movie can appear at most once per user.
func (s *Service) Add(ctx context.Context, userID int64, req AddRequest) (*Item, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.PosterPath = strings.TrimSpace(req.PosterPath)
	req.ReleaseDate = strings.TrimSpace(req.ReleaseDate)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	released, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, apperror.NewValidationError("releaseDate must be a date (YYYY-MM-DD)", err)
	}

	exists, err := s.store.Exists(ctx, userID, int64(req.TmdbID))
	if err != nil {
		return nil, apperror.NewDatabaseError("Failed to add to watchlist", err)
	}
	if exists {
		return nil, apperror.NewConflictError("Movie already in watchlist", nil)
	}

	item, err := s.store.Create(ctx, Item{
		UserID:      userID,
		TmdbID:      int64(req.TmdbID),
		Title:       req.Title,
		PosterPath:  req.PosterPath,
		ReleaseDate: released,
	})
	if errors.Is(err, ErrDuplicate) {
		return nil, apperror.NewConflictError("Movie already in watchlist", err)
	}
	if err != nil {
		return nil, apperror.NewDatabaseError("Failed to add to watchlist", err)
	}

	logger.FromContext(ctx).Debug("watchlist item added",
		slog.Int64("item_id", item.ID),
		slog.Int64("tmdb_id", item.TmdbID),
	)
	return item, nil
}

// List returns userID's items, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]Item, error) {
	items, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("Error while fetching data.", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// SetWatched sets or (when req.Watched is nil) flips the watched flag on an owned item.
func (s *Service) SetWatched(ctx context.Context, userID, itemID int64, req UpdateRequest) (*Item, error) {
	item, err := s.store.SetWatched(ctx, itemID, userID, req.Watched)
	if errors.Is(err, ErrNotFound) {
		return nil, apperror.NewNotFoundError("Movie not found", err)
	}
	if err != nil {
		return nil, apperror.NewDatabaseError("Error while updating item.", err)
	}
	return item, nil
}

// Remove deletes an owned item and returns it.
func (s *Service) Remove(ctx context.Context, userID, itemID int64) (*Item, error) {
	item, err := s.store.Delete(ctx, itemID, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperror.NewNotFoundError("Movie not found", err)
	}
	if err != nil {
		return nil, apperror.NewDatabaseError("Error while deleting item.", err)
	}
	return item, nil
}

func parseReleaseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range releaseDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
