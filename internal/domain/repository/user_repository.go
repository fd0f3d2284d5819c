// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pethub/internal/domain/entity"
	"pethub/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves all users, newest first.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by their ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// CountCreatedBetween returns the number of users registered in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
