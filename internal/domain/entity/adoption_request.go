// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the state of an adoption request.
type RequestStatus string

const (
	// RequestStatusPending indicates the request awaits a decision by the pet owner.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusAccepted indicates the owner accepted the request. Terminal.
	RequestStatusAccepted RequestStatus = "accepted"
	// RequestStatusRejected indicates the owner rejected the request. Terminal.
	RequestStatusRejected RequestStatus = "rejected"
)

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from this status.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// CanTransitionTo reports whether the transition from s to target is allowed.
// The only legal transitions are pending -> accepted and pending -> rejected;
// a pending request may also be deleted outright (cancel), which is not a
// status transition and therefore not covered here.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	if s != RequestStatusPending {
		return false
	}

	return target == RequestStatusAccepted || target == RequestStatusRejected
}

// AdoptionRequest represents one user's application to adopt a pet.
// OwnerID is captured at submission time and is not recomputed if the pet
// later changes hands.
type AdoptionRequest struct {
	ID                 uuid.UUID     `json:"id"`                  // The Global Unique Identifier (GUID) for the request.
	PetID              uuid.UUID     `json:"pet_id"`              // The pet being requested.
	RequesterID        uuid.UUID     `json:"requester_id"`        // The user applying to adopt.
	OwnerID            uuid.UUID     `json:"owner_id"`            // The user who owned the pet when the request was submitted.
	FullName           string        `json:"full_name"`           // Applicant's full name.
	Email              string        `json:"email"`               // Applicant's contact email.
	PhoneNumber        string        `json:"phone_number"`        // Applicant's contact phone number.
	Address            string        `json:"address"`             // Applicant's home address.
	PreviousExperience string        `json:"previous_experience"` // Optional description of prior pet-keeping experience.
	AdoptionReason     string        `json:"adoption_reason"`     // Why the applicant wants to adopt this pet.
	Status             RequestStatus `json:"status"`              // The request's position in its lifecycle.
	CreatedAt          time.Time     `json:"created_at"`          // Timestamp of when the request was submitted.
	UpdatedAt          time.Time     `json:"updated_at"`          // Timestamp of the last modification.
}
