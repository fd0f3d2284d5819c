// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"pethub/internal/domain/entity"
	"pethub/internal/errors"

	"github.com/google/uuid"
)

// ErrPetNotFound is a domain-specific error returned when a pet is not found.
var ErrPetNotFound = errors.New("pet not found")

// PetFilter describes the optional criteria for a pet listing query.
// Zero values mean "no constraint" for the corresponding field.
type PetFilter struct {
	Search         string                 // Case-insensitive substring match on name, breed or species.
	Species        entity.Species         // Exact species match.
	Breed          string                 // Exact breed match.
	Gender         entity.Gender          // Exact gender match.
	Size           entity.Size            // Exact size match.
	Status         entity.AdoptionStatus  // Exact adoption status match.
	MinAge         *int                   // Inclusive lower age bound.
	MaxAge         *int                   // Inclusive upper age bound.
	ExcludeOwnerID *uuid.UUID             // Exclude pets owned by this user (the authenticated caller).
	ExcludeAdopted bool                   // Exclude pets whose status is adopted (the default listing view).
}

// PetRepository defines the standard operations for pet persistence.
type PetRepository interface {
	// FindByID retrieves a single pet by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)

	// List retrieves pets matching the given filter.
	List(ctx context.Context, filter PetFilter) ([]*entity.Pet, error)

	// FindByOwner retrieves all pets currently owned by a user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error)

	// Create persists a new pet entity to the storage.
	Create(ctx context.Context, pet *entity.Pet) error

	// Update modifies an existing pet entity in the storage.
	Update(ctx context.Context, pet *entity.Pet) error

	// UpdateStatusIf performs a conditional update of the pet's adoption
	// status: the transition is applied only when the pet's current status
	// equals from. When adopter is non-nil, ownership and the adopted-by
	// reference are handed to the adopter in the same statement. It reports
	// whether the update was applied.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.AdoptionStatus, adopter *uuid.UUID) (bool, error)

	// Delete removes a pet by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByOwner removes every pet owned by a user and returns the IDs of
	// the deleted pets so that dependent records can be cascaded.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)

	// Count returns the total number of pets.
	Count(ctx context.Context) (int64, error)

	// CountCreatedBetween returns the number of pets listed in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
