package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/cinelog-go/users"
)

func guardedRecorder(t *testing.T, store *memStore, tokens *TokenService, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	reached := false
	h := Guard(tokens, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		u, ok := UserFromContext(r.Context())
		require.True(t, ok)
		assert.Empty(t, u.PasswordHash)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, reached
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestGuard(t *testing.T) {
	store := newMemStore()
	user, err := store.Create(context.Background(), users.NewUser{Username: "moviebuff", Email: "buff@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	tokens := NewTokenService("secret", time.Hour)
	valid, _, err := tokens.Issue(user.ID)
	require.NoError(t, err)
	orphan, _, err := tokens.Issue(999)
	require.NoError(t, err)
	foreign, _, err := NewTokenService("other", time.Hour).Issue(user.ID)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{"no header", "", http.StatusUnauthorized, "Unauthorized, no token."},
		{"wrong scheme", "Basic Zm9vOmJhcg==", http.StatusUnauthorized, "Unauthorized, no token."},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "Unauthorized, no token."},
		{"bad signature", "Bearer " + foreign, http.StatusUnauthorized, "Unauthorized, invalid token"},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized, "Unauthorized, invalid token"},
		{"deleted user", "Bearer " + orphan, http.StatusUnauthorized, "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, reached := guardedRecorder(t, store, tokens, tt.header)
			assert.False(t, reached)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, messageOf(t, rec))
		})
	}

	t.Run("valid token", func(t *testing.T) {
		rec, reached := guardedRecorder(t, store, tokens, "Bearer "+valid)
		assert.True(t, reached)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestGuardStoreFailureIs500(t *testing.T) {
	store := newMemStore()
	store.failErr = errors.New("connection refused")
	tokens := NewTokenService("secret", time.Hour)
	token, _, err := tokens.Issue(1)
	require.NoError(t, err)

	rec, reached := guardedRecorder(t, store, tokens, "Bearer "+token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
