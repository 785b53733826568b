// Package users owns the credential store: the users table and the queries the auth
// flows run against it.
package users

import "time"

// User is an account row. PasswordHash is never serialized; lookups made on behalf of an
// authenticated request leave it empty.
type User struct {
	ID           int64     `db:"id" json:"_id" example:"1"`
	Username     string    `db:"username" json:"username" example:"moviebuff"`
	Email        string    `db:"email" json:"email" example:"buff@example.com"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// NewUser carries the already-normalized fields for an insert.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
}
