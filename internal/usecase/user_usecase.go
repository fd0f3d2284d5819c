package usecase

import (
	"context"

	"pethub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     string // individual or shelter; admin accounts are provisioned manually.
	Phone    string
	Address  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// VerifyEmailInput carries the verification code sent to a new account.
type VerifyEmailInput struct {
	Email string
	Code  string
}

// UpdateProfileInput defines the profile fields a user may edit.
// Only non-nil fields are applied.
type UpdateProfileInput struct {
	FullName  *string
	Phone     *string
	Address   *string
	AvatarURL *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and issues a short-lived email
	// verification code through the verification store.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// VerifyEmail consumes a verification code and marks the account verified.
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) error

	// Login authenticates a user and returns an access/refresh token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile retrieves the authenticated user's account data.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile edits the authenticated user's account data.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
