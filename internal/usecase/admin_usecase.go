package usecase

import (
	"context"

	"pethub/internal/domain/entity"

	"github.com/google/uuid"
)

// PlatformStats summarizes platform activity for the admin dashboard.
// Change percentages compare the current calendar month with the previous one.
type PlatformStats struct {
	TotalUsers           int64   `json:"total_users"`
	TotalPets            int64   `json:"total_pets"`
	PendingRequests      int64   `json:"pending_requests"`
	AcceptedRequests     int64   `json:"accepted_requests"`
	UserChangePercent    float64 `json:"user_change_percent"`
	PetChangePercent     float64 `json:"pet_change_percent"`
	RequestChangePercent float64 `json:"request_change_percent"`
}

// AdminUsecase defines the interface for platform moderation operations.
// Every method requires the admin role.
type AdminUsecase interface {
	// ListUsers returns every registered user.
	ListUsers(ctx context.Context, actor Actor) ([]*entity.User, error)

	// UpdateUserRole changes a user's role.
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role string, actor Actor) (*entity.User, error)

	// DeleteUser removes a user, every pet they own and, transitively, every
	// adoption request referencing those pets.
	DeleteUser(ctx context.Context, userID uuid.UUID, actor Actor) error

	// GetPlatformStats computes the admin dashboard statistics.
	GetPlatformStats(ctx context.Context, actor Actor) (*PlatformStats, error)
}
