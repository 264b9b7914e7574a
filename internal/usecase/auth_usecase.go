// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ecomshop/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// SigninInput defines the data required for a user to log in.
type SigninInput struct {
	Email    string
	Password string
}

// ConfirmResetInput defines the data required to complete a password reset.
type ConfirmResetInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the new session's tokens after a successful signup or signin.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the interface for account and credential operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a new CLIENT user and opens their first session.
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)

	// Signin verifies credentials and opens a new session.
	Signin(ctx context.Context, input SigninInput) (*AuthOutput, error)

	// RequestPasswordReset mints a reset token and mails it to the account's address.
	RequestPasswordReset(ctx context.Context, email string) error

	// ConfirmPasswordReset exchanges a valid reset token for a new password.
	ConfirmPasswordReset(ctx context.Context, input ConfirmResetInput) error
}
