// Package auth, as part of the authentication module.
// This file, `middleware.go`, defines the Access Guard: the middleware that turns a
// bearer token into an authenticated user on the request context.
// In Nest.js this would be a Guard implementing `CanActivate`.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/users"
)

const bearerPrefix = "Bearer "

// TokenVerifier resolves a token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// UserLookup loads a user (without password hash) by id.
type UserLookup interface {
	FindByID(ctx context.Context, id int64) (*users.User, error)
}

// Guard returns middleware that admits only requests with a valid bearer token whose
// user still exists. On any failure the next handler never runs.
func Guard(tokens TokenVerifier, lookup UserLookup) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				WriteError(w, r, apperror.NewAuthError("Unauthorized, no token.", nil))
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
			if token == "" {
				WriteError(w, r, apperror.NewAuthError("Unauthorized, no token.", nil))
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("Unauthorized, invalid token", err))
				return
			}

			user, err := lookup.FindByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, users.ErrNotFound) {
					WriteError(w, r, apperror.NewAuthError("User not found", nil))
					return
				}
				WriteError(w, r, apperror.NewDatabaseError("Failed to authenticate user", err))
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithUser(r.Context(), user)))
		})
	}
}
