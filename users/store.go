package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/user/cinelog-go/db"
)

// Constraint names from migrations/000001_create_users.up.sql.
const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when an insert hits the username unique constraint.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when an insert hits the email unique constraint.
	ErrEmailTaken = errors.New("email already exists")
)

var (
	publicColumns = []string{"id", "username", "email", "created_at", "updated_at"}
	allColumns    = append(append([]string{}, publicColumns...), "password_hash")
)

// PostgresStore reads and writes the users table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a store over an open sqlx handle.
func NewPostgresStore(dbx *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: dbx}
}

// Create inserts a user and returns the stored row (without the hash).
func (s *PostgresStore) Create(ctx context.Context, nu NewUser) (*User, error) {
	query, args, err := db.Psql.Insert("users").
		Columns("username", "email", "password_hash").
		Values(nu.Username, nu.Email, nu.PasswordHash).
		Suffix("RETURNING id, username, email, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var u User
	if err := s.db.GetContext(ctx, &u, query, args...); err != nil {
		if constraint, ok := db.UniqueViolation(err); ok {
			switch constraint {
			case usernameConstraint:
				return nil, ErrUsernameTaken
			case emailConstraint:
				return nil, ErrEmailTaken
			}
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

// FindByUsername returns the user including its password hash, for credential checks.
func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.findOne(ctx, allColumns, sq.Eq{"username": username})
}

// FindByID returns the user without its password hash.
func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*User, error) {
	return s.findOne(ctx, publicColumns, sq.Eq{"id": id})
}

// UsernameExists reports whether the username is already registered.
func (s *PostgresStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, sq.Eq{"username": username})
}

// EmailExists reports whether the email is already registered.
func (s *PostgresStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, sq.Eq{"email": email})
}

func (s *PostgresStore) findOne(ctx context.Context, columns []string, where sq.Eq) (*User, error) {
	query, args, err := db.Psql.Select(columns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var u User
	if err := s.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) exists(ctx context.Context, where sq.Eq) (bool, error) {
	query, args, err := db.Psql.Select("COUNT(*) > 0").From("users").Where(where).ToSql()
	if err != nil {
		return false, fmt.Errorf("build user exists: %w", err)
	}

	var found bool
	if err := s.db.GetContext(ctx, &found, query, args...); err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return found, nil
}
