// Package auth is responsible for handling authentication and authorization logic.
// This includes user registration, login, token generation (JWT), and token validation.
// In a Nest.js analogy, this directory would correspond to an "AuthModule",
// containing services, controllers (handlers in Go), DTOs, and guards.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/logger"
	"github.com/user/cinelog-go/users"
)

// UserStore is the slice of the users store the auth flows need.
type UserStore interface {
	Create(ctx context.Context, nu users.NewUser) (*users.User, error)
	FindByUsername(ctx context.Context, username string) (*users.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// StructValidator checks `validate` struct tags.
type StructValidator interface {
	Validate(s any) error
}

// Service provides registration and login.
// Dependencies are injected via the constructor, the Go counterpart of Nest.js constructor injection.
type Service struct {
	users     UserStore
	hasher    *Hasher
	tokens    *TokenService
	validator StructValidator

	dummyOnce sync.Once
	dummyHash string
}

// NewService creates a new auth Service.
func NewService(store UserStore, hasher *Hasher, tokens *TokenService, v StructValidator) *Service {
	return &Service{
		users:     store,
		hasher:    hasher,
		tokens:    tokens,
		validator: v,
	}
}

// Register creates a new account and returns a token for it.
// Username and email are trimmed before any check; the password is taken as-is.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, apperror.NewValidationError("All fields are required", nil)
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	// The pre-checks give the friendly messages; the unique constraints below still
	// decide races between two concurrent registrations.
	taken, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, apperror.NewDatabaseError("Server Error while registration, Please Try Again Later", err)
	}
	if taken {
		return nil, apperror.NewConflictError("Username already exists.", nil)
	}
	taken, err = s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperror.NewDatabaseError("Server Error while registration, Please Try Again Later", err)
	}
	if taken {
		return nil, apperror.NewConflictError("Email already exists.", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("Server Error while registration, Please Try Again Later", err)
	}

	user, err := s.users.Create(ctx, users.NewUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, users.ErrUsernameTaken):
		return nil, apperror.NewConflictError("Username already exists.", err)
	case errors.Is(err, users.ErrEmailTaken):
		return nil, apperror.NewConflictError("Email already exists.", err)
	case err != nil:
		return nil, apperror.NewDatabaseError("Server Error while registration, Please Try Again Later", err)
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("Server Error while registration, Please Try Again Later", err)
	}

	logger.FromContext(ctx).Info("user registered", slog.Int64("user_id", user.ID))

	return &RegisterResponse{
		Message:  "User created successfully.",
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

// Login checks credentials and returns a fresh token.
// Unknown usernames and wrong passwords produce the same error, and both paths run a
// bcrypt comparison so response timing does not reveal which usernames exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// Usernames are stored trimmed, so look them up the same way.
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return nil, apperror.NewValidationError("All fields are required", nil)
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			s.hasher.Verify(req.Password, s.timingHash())
			return nil, apperror.NewAuthError("Incorrect username or password", nil)
		}
		return nil, apperror.NewDatabaseError("Server Error while login, Please Try Again Later", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperror.NewAuthError("Incorrect username or password", nil)
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("Server Error while login, Please Try Again Later", err)
	}

	return &LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

// timingHash lazily builds a digest at the configured cost for the unknown-user path.
func (s *Service) timingHash() string {
	s.dummyOnce.Do(func() {
		if h, err := s.hasher.Hash("cinelog-unknown-user"); err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
