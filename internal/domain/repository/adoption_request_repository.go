// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pethub/internal/domain/entity"
	"pethub/internal/errors"

	"github.com/google/uuid"
)

// ErrRequestNotFound is a domain-specific error returned when an adoption request is not found.
var ErrRequestNotFound = errors.New("adoption request not found")

// AdoptionRequestRepository defines the interface for adoption-request database operations.
type AdoptionRequestRepository interface {
	// FindByID retrieves a single adoption request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionRequest, error)

	// List retrieves all adoption requests, newest first.
	List(ctx context.Context) ([]*entity.AdoptionRequest, error)

	// ListByUser retrieves all requests where the user is either the requester or the owner.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AdoptionRequest, error)

	// ListByPet retrieves all requests referencing a pet.
	ListByPet(ctx context.Context, petID uuid.UUID) ([]*entity.AdoptionRequest, error)

	// Create persists a new adoption request.
	Create(ctx context.Context, request *entity.AdoptionRequest) error

	// Update modifies an existing adoption request.
	Update(ctx context.Context, request *entity.AdoptionRequest) error

	// UpdateStatusIf performs a conditional status transition: the request is
	// moved to the target status only when its current status equals from.
	// It reports whether the update was applied.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) (bool, error)

	// RejectOtherPending transitions every pending request for the pet except
	// the given one to rejected, returning the number of requests touched.
	RejectOtherPending(ctx context.Context, petID, exceptID uuid.UUID) (int64, error)

	// Delete removes an adoption request by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByPet removes every request referencing a pet.
	DeleteByPet(ctx context.Context, petID uuid.UUID) (int64, error)

	// DeleteByPets removes every request referencing any of the given pets.
	DeleteByPets(ctx context.Context, petIDs []uuid.UUID) (int64, error)

	// CountByStatus returns the number of requests currently in the given status.
	CountByStatus(ctx context.Context, status entity.RequestStatus) (int64, error)

	// CountCreatedBetween returns the number of requests submitted in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
