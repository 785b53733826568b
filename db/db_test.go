package db

import (
	"errors"
	"fmt"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/cinelog-go/apperror"
)

func TestUniqueViolation(t *testing.T) {
	pgxErr := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	name, ok := UniqueViolation(pgxErr)
	assert.True(t, ok)
	assert.Equal(t, "users_email_key", name)

	pqErr := &pq.Error{Code: "23505", Constraint: "watchlist_items_user_id_tmdb_id_key"}
	name, ok = UniqueViolation(pqErr)
	assert.True(t, ok)
	assert.Equal(t, "watchlist_items_user_id_tmdb_id_key", name)

	_, ok = UniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)
	_, ok = UniqueViolation(errors.New("boom"))
	assert.False(t, ok)
}

func TestIsCheckViolation(t *testing.T) {
	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: "23514", ConstraintName: "reviews_rating_check"}))
	assert.True(t, IsCheckViolation(&pq.Error{Code: "23514"}))
	assert.False(t, IsCheckViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsCheckViolation(nil))
}

func TestPsqlUsesDollarPlaceholders(t *testing.T) {
	query, args, err := Psql.Select("id").From("reviews").
		Where(sq.Eq{"user_id": int64(7), "id": int64(3)}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM reviews WHERE id = $1 AND user_id = $2", query)
	assert.Equal(t, []any{int64(3), int64(7)}, args)
}

func TestMigrateDownRejectsZeroSteps(t *testing.T) {
	err := MigrateDown("postgres://unused", "./migrations", 0, nil)
	assert.True(t, apperror.IsValidationError(err))
}
