package reviews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/logger"
)

// ReviewService defines the review operations the HTTP layer depends on.
// Handlers take the interface so tests can swap in a fake.
type ReviewService interface {
	Create(ctx context.Context, userID int64, req CreateRequest) (*Review, error)
	ListForMovie(ctx context.Context, tmdbID int64) ([]MovieReview, error)
	ListForUser(ctx context.Context, userID int64) ([]Review, error)
	Update(ctx context.Context, userID, reviewID int64, req UpdateRequest) (*Review, error)
	Delete(ctx context.Context, userID, reviewID int64) (*Review, error)
}

// reviewServiceImpl is the ReviewService backed by a Store.
type reviewServiceImpl struct {
	store Store
}

// NewReviewService creates a ReviewService.
func NewReviewService(store Store) ReviewService {
	return &reviewServiceImpl{store: store}
}

var errEmptyReview = apperror.NewValidationError("Review must include either text or rating", nil)

// normalizeText trims text and turns blank into nil, which is stored as NULL.
func normalizeText(text string) (*string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(text) > maxReviewLength {
		return nil, apperror.NewValidationError(fmt.Sprintf("reviewText must not exceed %d characters", maxReviewLength), nil)
	}
	return &text, nil
}

func checkRating(rating *int) error {
	if rating != nil && (*rating < minRating || *rating > maxRating) {
		return apperror.NewValidationError(fmt.Sprintf("rating must be between %d and %d", minRating, maxRating), nil)
	}
	return nil
}

// Create posts a review. It needs a movie id and at least one of text or rating.
func (s *reviewServiceImpl) Create(ctx context.Context, userID int64, req CreateRequest) (*Review, error) {
	if req.TmdbID <= 0 {
		return nil, apperror.NewValidationError("Movie ID is required", nil)
	}
	text, err := normalizeText(req.ReviewText)
	if err != nil {
		return nil, err
	}
	if text == nil && req.Rating.Value == nil {
		return nil, errEmptyReview
	}
	if err := checkRating(req.Rating.Value); err != nil {
		return nil, err
	}

	review, err := s.store.Create(ctx, NewReview{
		UserID:     userID,
		TmdbID:     int64(req.TmdbID),
		ReviewText: text,
		Rating:     req.Rating.Value,
	})
	if errors.Is(err, ErrEmptyReview) {
		return nil, apperror.NewValidationError("Review must include either text or rating", err)
	}
	if err != nil {
		return nil, apperror.NewDatabaseError("Failed to create review", err)
	}

	logger.FromContext(ctx).Debug("review created",
		slog.Int64("review_id", review.ID),
		slog.Int64("tmdb_id", review.TmdbID),
	)
	return review, nil
}

// ListForMovie returns every review of a movie, newest first. It is public.
func (s *reviewServiceImpl) ListForMovie(ctx context.Context, tmdbID int64) ([]MovieReview, error) {
	out, err := s.store.ListByMovie(ctx, tmdbID)
	if err != nil {
		return nil, apperror.NewDatabaseError("Error while fetching reviews.", err)
	}
	if out == nil {
		out = []MovieReview{}
	}
	return out, nil
}

// ListForUser returns the caller's own reviews, newest first.
func (s *reviewServiceImpl) ListForUser(ctx context.Context, userID int64) ([]Review, error) {
	out, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("Error while fetching user reviews", err)
	}
	if out == nil {
		out = []Review{}
	}
	return out, nil
}

// Update applies the fields present in req to an owned review. Like create, the request
// itself must carry text or a rating; the owner check and the write are one statement.
func (s *reviewServiceImpl) Update(ctx context.Context, userID, reviewID int64, req UpdateRequest) (*Review, error) {
	var patch Patch
	if req.ReviewText != nil {
		text, err := normalizeText(*req.ReviewText)
		if err != nil {
			return nil, err
		}
		patch.ReviewText = text
		patch.ClearText = text == nil
	}
	if patch.ReviewText == nil && req.Rating.Value == nil {
		return nil, errEmptyReview
	}
	if err := checkRating(req.Rating.Value); err != nil {
		return nil, err
	}
	patch.Rating = req.Rating.Value

	updated, err := s.store.Update(ctx, reviewID, userID, patch)
	if err != nil {
		return nil, s.mapWriteError(err, "Error while updating review")
	}
	return updated, nil
}

// Delete removes an owned review and returns it.
func (s *reviewServiceImpl) Delete(ctx context.Context, userID, reviewID int64) (*Review, error) {
	review, err := s.store.Delete(ctx, reviewID, userID)
	if err != nil {
		return nil, s.mapWriteError(err, "Error while deleting review")
	}
	return review, nil
}

func (s *reviewServiceImpl) mapWriteError(err error, fallback string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperror.NewNotFoundError("Review not found", err)
	case errors.Is(err, ErrEmptyReview):
		return apperror.NewValidationError("Review must include either text or rating", err)
	default:
		return apperror.NewDatabaseError(fallback, err)
	}
}
