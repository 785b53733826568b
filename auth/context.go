// Package auth, as part of the authentication module.
// This file, `context.go`, carries the authenticated user through the request's
// `context.Context`. The Access Guard stores it; handlers read it back.
package auth

import (
	"context"

	"github.com/user/cinelog-go/users"
)

// `contextKey` is a custom type for context keys so values from other packages never collide.
type contextKey string

const userContextKey contextKey = "auth_user"

// NewContextWithUser returns a child context carrying the authenticated user.
func NewContextWithUser(ctx context.Context, u *users.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// UserFromContext extracts the user stored by the Access Guard.
// The bool is false on routes the guard does not protect.
func UserFromContext(ctx context.Context) (*users.User, bool) {
	u, ok := ctx.Value(userContextKey).(*users.User)
	return u, ok && u != nil
}
