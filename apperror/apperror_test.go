package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("bad", nil), http.StatusBadRequest},
		{NewBadRequestError("bad", nil), http.StatusBadRequest},
		{NewAuthError("no token", nil), http.StatusUnauthorized},
		{NewNotFoundError("gone", nil), http.StatusNotFound},
		{NewConflictError("dup", nil), http.StatusConflict},
		{NewExternalServiceError("tmdb down", nil), http.StatusInternalServerError},
		{NewCatalogAuthError("bad key", nil), http.StatusInternalServerError},
		{NewDatabaseError("db", nil), http.StatusInternalServerError},
		{NewAppError(UnknownError, "?", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Type.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestToResponseHidesCause(t *testing.T) {
	err := NewDatabaseError("Failed to add to watchlist", errors.New("pq: connection refused"))

	assert.Equal(t, "Failed to add to watchlist", err.ToResponse().Message)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFromErrorFindsWrapped(t *testing.T) {
	inner := NewNotFoundError("Movie not found", nil)
	wrapped := fmt.Errorf("update watchlist: %w", inner)

	got, ok := FromError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflictError(wrapped))

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
	_, ok = FromError(nil)
	assert.False(t, ok)
}
