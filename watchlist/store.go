package watchlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/user/cinelog-go/db"
)

const uniqueItemConstraint = "watchlist_items_user_id_tmdb_id_key"

var (
	// ErrNotFound is returned when no item matches both id and owner.
	ErrNotFound = errors.New("watchlist item not found")
	// ErrDuplicate is returned when the owner already has this movie listed.
	ErrDuplicate = errors.New("movie already in watchlist")
)

const returningItem = "RETURNING id, user_id, tmdb_id, title, poster_path, release_date, watched, created_at, updated_at"

var itemColumns = []string{"id", "user_id", "tmdb_id", "title", "poster_path", "release_date", "watched", "created_at", "updated_at"}

// Store is the persistence the watchlist service needs.
type Store interface {
	Exists(ctx context.Context, userID, tmdbID int64) (bool, error)
	Create(ctx context.Context, item Item) (*Item, error)
	ListByUser(ctx context.Context, userID int64) ([]Item, error)
	SetWatched(ctx context.Context, id, userID int64, watched *bool) (*Item, error)
	Delete(ctx context.Context, id, userID int64) (*Item, error)
}

// PostgresStore implements Store on the watchlist_items table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a store over an open sqlx handle.
func NewPostgresStore(dbx *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: dbx}
}

// Exists reports whether userID already listed tmdbID.
func (s *PostgresStore) Exists(ctx context.Context, userID, tmdbID int64) (bool, error) {
	query, args, err := db.Psql.Select("COUNT(*) > 0").From("watchlist_items").
		Where(sq.Eq{"user_id": userID, "tmdb_id": tmdbID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build watchlist exists: %w", err)
	}

	var found bool
	if err := s.db.GetContext(ctx, &found, query, args...); err != nil {
		return false, fmt.Errorf("watchlist exists: %w", err)
	}
	return found, nil
}

// Create inserts an item. The (user_id, tmdb_id) constraint turns a lost race into ErrDuplicate.
func (s *PostgresStore) Create(ctx context.Context, item Item) (*Item, error) {
	query, args, err := db.Psql.Insert("watchlist_items").
		Columns("user_id", "tmdb_id", "title", "poster_path", "release_date").
		Values(item.UserID, item.TmdbID, item.Title, item.PosterPath, item.ReleaseDate).
		Suffix(returningItem).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert watchlist item: %w", err)
	}

	var created Item
	if err := s.db.GetContext(ctx, &created, query, args...); err != nil {
		if constraint, ok := db.UniqueViolation(err); ok && constraint == uniqueItemConstraint {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert watchlist item: %w", err)
	}
	return &created, nil
}

// ListByUser returns the owner's items, newest first. Never nil.
func (s *PostgresStore) ListByUser(ctx context.Context, userID int64) ([]Item, error) {
	query, args, err := db.Psql.Select(itemColumns...).From("watchlist_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list watchlist: %w", err)
	}

	items := []Item{}
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return items, nil
}

// SetWatched sets the flag to *watched, or flips it when watched is nil, in one statement.
func (s *PostgresStore) SetWatched(ctx context.Context, id, userID int64, watched *bool) (*Item, error) {
	update := db.Psql.Update("watchlist_items")
	if watched != nil {
		update = update.Set("watched", *watched)
	} else {
		update = update.Set("watched", sq.Expr("NOT watched"))
	}

	query, args, err := update.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningItem).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update watchlist item: %w", err)
	}
	return s.getOne(ctx, query, args)
}

// Delete removes the item if userID owns it and returns what was removed.
func (s *PostgresStore) Delete(ctx context.Context, id, userID int64) (*Item, error) {
	query, args, err := db.Psql.Delete("watchlist_items").
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returningItem).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete watchlist item: %w", err)
	}
	return s.getOne(ctx, query, args)
}

func (s *PostgresStore) getOne(ctx context.Context, query string, args []any) (*Item, error) {
	var item Item
	if err := s.db.GetContext(ctx, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("watchlist item: %w", err)
	}
	return &item, nil
}
