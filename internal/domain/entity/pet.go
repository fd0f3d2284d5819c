// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Species represents the kind of animal a pet is.
type Species string

const (
	// SpeciesDog indicates a dog.
	SpeciesDog Species = "Dog"
	// SpeciesCat indicates a cat.
	SpeciesCat Species = "Cat"
)

// String returns the string representation of the Species.
func (s Species) String() string {
	return string(s)
}

// IsValid checks if the Species is a valid value.
func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat:
		return true
	default:
		return false
	}
}

// Gender represents a pet's gender.
type Gender string

const (
	// GenderMale indicates a male pet.
	GenderMale Gender = "Male"
	// GenderFemale indicates a female pet.
	GenderFemale Gender = "Female"
	// GenderOther indicates an unknown or unspecified gender.
	GenderOther Gender = "Other"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Size represents a pet's size class.
type Size string

const (
	// SizeSmall indicates a small pet.
	SizeSmall Size = "Small"
	// SizeMedium indicates a medium pet.
	SizeMedium Size = "Medium"
	// SizeLarge indicates a large pet.
	SizeLarge Size = "Large"
)

// String returns the string representation of the Size.
func (s Size) String() string {
	return string(s)
}

// IsValid checks if the Size is a valid value.
func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

// AdoptionStatus represents where a pet stands in the adoption lifecycle.
type AdoptionStatus string

const (
	// AdoptionStatusAvailable indicates the pet is listed and open to requests.
	AdoptionStatusAvailable AdoptionStatus = "available"
	// AdoptionStatusPending indicates the pet has an adoption in progress.
	AdoptionStatusPending AdoptionStatus = "pending"
	// AdoptionStatusAdopted indicates the pet has been adopted through the platform.
	AdoptionStatusAdopted AdoptionStatus = "adopted"
	// AdoptionStatusOwned indicates the pet is kept by its owner and not up for adoption.
	AdoptionStatusOwned AdoptionStatus = "owned"
)

// String returns the string representation of the AdoptionStatus.
func (s AdoptionStatus) String() string {
	return string(s)
}

// IsValid checks if the AdoptionStatus is a valid value.
func (s AdoptionStatus) IsValid() bool {
	switch s {
	case AdoptionStatusAvailable, AdoptionStatusPending, AdoptionStatusAdopted, AdoptionStatusOwned:
		return true
	default:
		return false
	}
}

// Pet is a core entity representing an animal listed on the platform.
// A pet has exactly one owner at any time; AdoptedBy is set if and only if
// the adoption status is "adopted".
type Pet struct {
	ID               uuid.UUID      `json:"id"`                 // The Global Unique Identifier (GUID) for the pet.
	Name             string         `json:"name"`               // The pet's display name.
	Species          Species        `json:"species"`            // The kind of animal (Dog, Cat).
	Breed            string         `json:"breed"`              // The pet's breed.
	Age              int            `json:"age"`                // The pet's age in years, non-negative.
	Gender           Gender         `json:"gender"`             // The pet's gender.
	Size             Size           `json:"size"`               // The pet's size class.
	Description      string         `json:"description"`        // Free-text description shown on the listing.
	PhotoURL         string         `json:"photo_url"`          // Primary photo reference for the listing.
	AdditionalPhotos []string       `json:"additional_photos"`  // Additional photo references.
	OwnerID          uuid.UUID      `json:"owner_id"`           // The current custodian of the pet.
	AdoptionStatus   AdoptionStatus `json:"adoption_status"`    // Where the pet stands in the adoption lifecycle.
	IsAdopted        bool           `json:"is_adopted"`         // Kept in sync with AdoptionStatus == adopted.
	AdoptedBy        *uuid.UUID     `json:"adopted_by"`         // The user who adopted the pet, set only on adoption.
	CreatedAt        time.Time      `json:"created_at"`         // Timestamp of when the pet was listed.
	UpdatedAt        time.Time      `json:"updated_at"`         // Timestamp of the last modification.
}

// Available reports whether the pet can currently receive adoption requests.
func (p *Pet) Available() bool {
	return p.AdoptionStatus == AdoptionStatusAvailable
}

// MarkAdopted transitions the pet to the adopted state and hands ownership to
// the adopter, keeping the status, flag and adopter reference consistent.
func (p *Pet) MarkAdopted(adopterID uuid.UUID) {
	p.AdoptionStatus = AdoptionStatusAdopted
	p.IsAdopted = true
	p.OwnerID = adopterID
	p.AdoptedBy = &adopterID
}
