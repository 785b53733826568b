// Package auth provides authentication and authorization functionality
// This file, `dto.go` (Data Transfer Object), defines structures used for
// transferring data in API requests and responses related to authentication.
// `validate` tags are checked by the validation package; `example` tags feed Swagger.
package auth

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3" example:"moviebuff"`
	Email    string `json:"email" validate:"required,email" example:"buff@example.com"`
	// bcrypt only reads the first 72 bytes, so longer passwords are refused outright.
	Password string `json:"password" validate:"required,min=6,max=72" example:"popcorn123"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" example:"moviebuff"`
	Password string `json:"password" example:"popcorn123"`
}

// RegisterResponse is returned with 201 after a successful registration.
type RegisterResponse struct {
	Message  string `json:"message" example:"User created successfully."`
	Username string `json:"username" example:"moviebuff"`
	Email    string `json:"email" example:"buff@example.com"`
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	ID       int64  `json:"_id" example:"1"`
	Username string `json:"username" example:"moviebuff"`
	Email    string `json:"email" example:"buff@example.com"`
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// MeResponse is the authenticated user's public profile.
type MeResponse struct {
	ID       int64  `json:"_id" example:"1"`
	Username string `json:"username" example:"moviebuff"`
	Email    string `json:"email" example:"buff@example.com"`
}
