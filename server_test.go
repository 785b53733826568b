package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/cinelog-go/config"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func testConfig(tmdbURL string) *config.AppConfig {
	return &config.AppConfig{
		Database: &config.DatabaseConfig{},
		Auth:     &config.AuthConfig{JWTSecret: "test-secret", TokenDuration: time.Hour, BcryptCost: 4},
		TMDB:     &config.TMDBConfig{APIKey: "key", BaseURL: tmdbURL},
		Server:   &config.ServerConfig{Port: "0", AllowedOrigins: []string{"http://localhost:5173"}},
		Log:      &config.LogConfig{Env: config.EnvTest, Level: "error"},
	}
}

func newTestRouter(t *testing.T, ping error) http.Handler {
	t.Helper()
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newRouter(testConfig("http://127.0.0.1:1"), log, fakePinger{err: ping}, sqlx.NewDb(mockDB, "postgres"))
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	newTestRouter(t, errors.New("connection refused")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/watchlist/"},
		{http.MethodPost, "/api/watchlist/"},
		{http.MethodPatch, "/api/watchlist/1"},
		{http.MethodDelete, "/api/watchlist/1"},
		{http.MethodPost, "/api/reviews/"},
		{http.MethodGet, "/api/reviews/user"},
		{http.MethodPatch, "/api/reviews/1"},
		{http.MethodDelete, "/api/reviews/1"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Unauthorized, no token."}`, rec.Body.String())
		})
	}
}

func TestMovieSearchNeedsQuery(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/search", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Search query is required"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/watchlist/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	rec := httptest.NewRecorder()
	newTestRouter(t, nil).ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
