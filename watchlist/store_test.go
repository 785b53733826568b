package watchlist

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresStore(sqlx.NewDb(mockDB, "postgres")), mock
}

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows(itemColumns)
}

var released = time.Date(2001, time.July, 20, 0, 0, 0, 0, time.UTC)

func TestStoreCreate(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO watchlist_items \(user_id,tmdb_id,title,poster_path,release_date\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id, user_id`).
		WithArgs(int64(1), int64(129), "Spirited Away", "/spirited.jpg", sqlmock.AnyArg()).
		WillReturnRows(itemRows().AddRow(10, 1, 129, "Spirited Away", "/spirited.jpg", released, false, now, now))

	item, err := store.Create(context.Background(), Item{UserID: 1, TmdbID: 129, Title: "Spirited Away", PosterPath: "/spirited.jpg", ReleaseDate: released})
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.ID)
	assert.False(t, item.Watched)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCreateDuplicate(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`INSERT INTO watchlist_items`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "watchlist_items_user_id_tmdb_id_key"})

	_, err := store.Create(context.Background(), Item{UserID: 1, TmdbID: 129})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestStoreExists(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) > 0 FROM watchlist_items WHERE tmdb_id = \$1 AND user_id = \$2`).
		WithArgs(int64(129), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(true))

	found, err := store.Exists(context.Background(), 1, 129)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestStoreListByUserNewestFirst(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM watchlist_items WHERE user_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs(int64(1)).
		WillReturnRows(itemRows().
			AddRow(11, 1, 8392, "My Neighbor Totoro", "/totoro.jpg", released, true, now, now).
			AddRow(10, 1, 129, "Spirited Away", "/spirited.jpg", released, false, now.Add(-time.Hour), now))

	items, err := store.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(11), items[0].ID)
}

func TestStoreListByUserEmpty(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT .* FROM watchlist_items`).WillReturnRows(itemRows())

	items, err := store.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestStoreSetWatched(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now()
	yes := true

	mock.ExpectQuery(`UPDATE watchlist_items SET watched = \$1, updated_at = NOW\(\) WHERE id = \$2 AND user_id = \$3 RETURNING`).
		WithArgs(true, int64(10), int64(1)).
		WillReturnRows(itemRows().AddRow(10, 1, 129, "Spirited Away", "/spirited.jpg", released, true, now, now))

	item, err := store.SetWatched(context.Background(), 10, 1, &yes)
	require.NoError(t, err)
	assert.True(t, item.Watched)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreToggleWatched(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`UPDATE watchlist_items SET watched = NOT watched, updated_at = NOW\(\) WHERE id = \$1 AND user_id = \$2 RETURNING`).
		WithArgs(int64(10), int64(1)).
		WillReturnRows(itemRows().AddRow(10, 1, 129, "Spirited Away", "/spirited.jpg", released, true, now, now))

	item, err := store.SetWatched(context.Background(), 10, 1, nil)
	require.NoError(t, err)
	assert.True(t, item.Watched)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreOwnershipMissIsNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`UPDATE watchlist_items .* WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(10), int64(2)).
		WillReturnRows(itemRows())
	mock.ExpectQuery(`DELETE FROM watchlist_items WHERE id = \$1 AND user_id = \$2 RETURNING`).
		WithArgs(int64(10), int64(2)).
		WillReturnRows(itemRows())

	_, err := store.SetWatched(context.Background(), 10, 2, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Delete(context.Background(), 10, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
