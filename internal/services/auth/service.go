// Package auth defines the interface for auth operations
package auth

//go:generate mockgen -destination=mock/mock_service.go -package=authmock github.com/khoi-stripe/danddy/internal/services/auth Service

import (
	"context"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
)

// Service defines the interface for auth operations, one per backend
// endpoint. Session lifecycle (token persistence, state transitions)
// lives in internal/session, not here.
type Service interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Me(ctx context.Context, input *MeInput) (*MeOutput, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) (*ForgotPasswordOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) (*ResetPasswordOutput, error)
}

// RegisterInput defines the request for creating an account
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Role     dnd5e.UserRole
}

// RegisterOutput defines the response for creating an account
type RegisterOutput struct {
	User *dnd5e.User
}

// LoginInput defines the request for obtaining a token
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput defines the response for obtaining a token
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// MeInput defines the request for the current-user profile
type MeInput struct{}

// MeOutput defines the response for the current-user profile
type MeOutput struct {
	User *dnd5e.User
}

// ForgotPasswordInput defines the request for starting a password reset
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput defines the response for starting a password reset
type ForgotPasswordOutput struct{}

// ResetPasswordInput defines the request for completing a password reset
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordOutput defines the response for completing a password
// reset; the backend issues a fresh token
type ResetPasswordOutput struct {
	AccessToken string
	TokenType   string
}
