package reviews

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/user/cinelog-go/db"
)

var (
	// ErrNotFound is returned when no review matches both id and author.
	ErrNotFound = errors.New("review not found")
	// ErrEmptyReview is returned when the database rejects a row with neither text nor a
	// valid rating.
	ErrEmptyReview = errors.New("review has neither text nor a valid rating")
)

const returningReview = "RETURNING id, user_id, tmdb_id, review_text, rating, created_at, updated_at"

var reviewColumns = []string{"id", "user_id", "tmdb_id", "review_text", "rating", "created_at", "updated_at"}

// Store is the persistence the review service needs.
type Store interface {
	Create(ctx context.Context, review NewReview) (*Review, error)
	ListByMovie(ctx context.Context, tmdbID int64) ([]MovieReview, error)
	ListByUser(ctx context.Context, userID int64) ([]Review, error)
	Update(ctx context.Context, id, userID int64, patch Patch) (*Review, error)
	Delete(ctx context.Context, id, userID int64) (*Review, error)
}

// PostgresStore implements Store on the reviews table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a store over an open sqlx handle.
func NewPostgresStore(dbx *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: dbx}
}

// Create inserts a review.
func (s *PostgresStore) Create(ctx context.Context, review NewReview) (*Review, error) {
	query, args, err := db.Psql.Insert("reviews").
		Columns("user_id", "tmdb_id", "review_text", "rating").
		Values(review.UserID, review.TmdbID, review.ReviewText, review.Rating).
		Suffix(returningReview).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert review: %w", err)
	}
	return s.getOne(ctx, query, args)
}

// ListByMovie returns every review of tmdbID with its author's username, newest first.
func (s *PostgresStore) ListByMovie(ctx context.Context, tmdbID int64) ([]MovieReview, error) {
	query, args, err := db.Psql.
		Select("r.id", "r.user_id", "r.tmdb_id", "r.review_text", "r.rating", "r.created_at", "r.updated_at", "u.username").
		From("reviews r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.tmdb_id": tmdbID}).
		OrderBy("r.created_at DESC", "r.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list movie reviews: %w", err)
	}

	var rows []movieReviewRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list movie reviews: %w", err)
	}

	out := make([]MovieReview, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toMovieReview())
	}
	return out, nil
}

// ListByUser returns userID's reviews, newest first. Never nil.
func (s *PostgresStore) ListByUser(ctx context.Context, userID int64) ([]Review, error) {
	query, args, err := db.Psql.Select(reviewColumns...).From("reviews").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list user reviews: %w", err)
	}

	out := []Review{}
	if err := s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list user reviews: %w", err)
	}
	return out, nil
}

// Update applies patch to a review owned by userID in one statement. Fields the patch
// leaves nil keep their stored values.
func (s *PostgresStore) Update(ctx context.Context, id, userID int64, patch Patch) (*Review, error) {
	update := db.Psql.Update("reviews")
	switch {
	case patch.ClearText:
		update = update.Set("review_text", nil)
	case patch.ReviewText != nil:
		update = update.Set("review_text", *patch.ReviewText)
	}
	if patch.Rating != nil {
		update = update.Set("rating", *patch.Rating)
	}

	query, args, err := update.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningReview).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update review: %w", err)
	}
	return s.getOne(ctx, query, args)
}

// Delete removes a review owned by userID and returns it.
func (s *PostgresStore) Delete(ctx context.Context, id, userID int64) (*Review, error) {
	query, args, err := db.Psql.Delete("reviews").
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningReview).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete review: %w", err)
	}
	return s.getOne(ctx, query, args)
}

func (s *PostgresStore) getOne(ctx context.Context, query string, args []any) (*Review, error) {
	var review Review
	if err := s.db.GetContext(ctx, &review, query, args...); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		case db.IsCheckViolation(err):
			return nil, fmt.Errorf("%w: %v", ErrEmptyReview, err)
		}
		return nil, fmt.Errorf("review: %w", err)
	}
	return &review, nil
}
