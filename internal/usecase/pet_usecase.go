package usecase

import (
	"context"

	"pethub/internal/domain/entity"

	"github.com/google/uuid"
)

// FilterAll is the sentinel filter value meaning "do not constrain this field".
const FilterAll = "all"

// AgeBucket is a coarse age filter presented by the listing UI.
type AgeBucket string

const (
	AgeBucket0To1  AgeBucket = "0-1"
	AgeBucket1To3  AgeBucket = "1-3"
	AgeBucket4To6  AgeBucket = "4-6"
	AgeBucket7To9  AgeBucket = "7-9"
	AgeBucket10Up  AgeBucket = "10+"
)

// Range maps the bucket to its inclusive age bounds. The upper bound is nil
// for the open-ended bucket. ok is false for unknown buckets.
func (b AgeBucket) Range() (minAge int, maxAge *int, ok bool) {
	upper := func(n int) *int { return &n }
	switch b {
	case AgeBucket0To1:
		return 0, upper(1), true
	case AgeBucket1To3:
		return 1, upper(3), true
	case AgeBucket4To6:
		return 4, upper(6), true
	case AgeBucket7To9:
		return 7, upper(9), true
	case AgeBucket10Up:
		return 10, nil, true
	default:
		return 0, nil, false
	}
}

// ListPetsInput carries the optional listing filters as received from the
// HTTP layer. Empty strings and the "all" sentinel leave a field unfiltered.
type ListPetsInput struct {
	Search    string
	Species   string
	Breed     string
	Age       string // One of the AgeBucket values.
	Size      string
	Gender    string
	Status    string
	CallerID  *uuid.UUID // Authenticated caller, whose own pets are excluded from the default view.
}

// AddPetInput defines the data required to list a new pet.
type AddPetInput struct {
	Name             string
	Species          string
	Breed            string
	Age              int
	Gender           string
	Size             string
	Description      string
	PhotoURL         string
	AdditionalPhotos []string
	Status           string // Optional; defaults to available.
}

// UpdatePetInput defines the pet fields an owner may edit. Only non-nil
// fields are applied.
type UpdatePetInput struct {
	Name             *string
	Species          *string
	Breed            *string
	Age              *int
	Gender           *string
	Size             *string
	Description      *string
	PhotoURL         *string
	AdditionalPhotos []string
	Status           *string
}

// PetUsecase defines the interface for pet listing and custody operations.
type PetUsecase interface {
	// ListPets returns the adoptable-pet listing for the given filters.
	// Adopted pets and the caller's own pets are excluded by default.
	ListPets(ctx context.Context, input *ListPetsInput) ([]*entity.Pet, error)

	// GetPet retrieves a single pet by ID.
	GetPet(ctx context.Context, petID uuid.UUID) (*entity.Pet, error)

	// GetPetsByOwner retrieves every pet currently owned by a user.
	GetPetsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error)

	// AddPet lists a new pet owned by the actor.
	AddPet(ctx context.Context, input *AddPetInput, actor Actor) (*entity.Pet, error)

	// UpdatePet edits a pet's details; owner or admin only.
	UpdatePet(ctx context.Context, petID uuid.UUID, input *UpdatePetInput, actor Actor) (*entity.Pet, error)

	// AdoptPet directly marks a pet adopted by the actor, bypassing the
	// request workflow. Guarded against pets already adopted or owned.
	AdoptPet(ctx context.Context, petID uuid.UUID, actor Actor) error

	// DeletePet removes a pet and cascades deletion of every adoption request
	// referencing it; owner or admin only.
	DeletePet(ctx context.Context, petID uuid.UUID, actor Actor) error

	// PetShareQR renders a QR code (PNG) linking to the pet's listing.
	PetShareQR(ctx context.Context, petID uuid.UUID) ([]byte, error)
}
