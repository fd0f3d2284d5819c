package usecase

import (
	"context"

	"pethub/internal/domain/entity"

	"github.com/google/uuid"
)

// ResolveAction is the decision applied to a pending adoption request.
type ResolveAction string

const (
	// ResolveActionAccept accepts the request and hands the pet to the requester.
	ResolveActionAccept ResolveAction = "accept"
	// ResolveActionReject rejects the request and touches nothing else.
	ResolveActionReject ResolveAction = "reject"
	// ResolveActionCancel deletes the request entirely; requester only.
	ResolveActionCancel ResolveAction = "cancel"
)

// IsValid checks if the ResolveAction is a valid value.
func (a ResolveAction) IsValid() bool {
	switch a {
	case ResolveActionAccept, ResolveActionReject, ResolveActionCancel:
		return true
	default:
		return false
	}
}

// SubmitRequestInput defines the data required to submit an adoption request.
type SubmitRequestInput struct {
	PetID              uuid.UUID
	RequesterID        uuid.UUID
	FullName           string
	Email              string
	PhoneNumber        string
	Address            string
	PreviousExperience string
	AdoptionReason     string
}

// UpdateRequestInput defines the applicant fields that may be edited on a
// pending request. Only non-nil fields are applied; anything outside this
// allow-list is never persisted.
type UpdateRequestInput struct {
	FullName           *string
	Email              *string
	PhoneNumber        *string
	Address            *string
	PreviousExperience *string
	AdoptionReason     *string
}

// AdoptionUsecase defines the interface for the adoption workflow engine.
// It enforces the request state machine and keeps Pet and AdoptionRequest
// records mutually consistent.
type AdoptionUsecase interface {
	// Submit creates a new pending adoption request for an available pet and
	// emits best-effort notifications to the pet owner and the admin channel.
	Submit(ctx context.Context, input *SubmitRequestInput) (*entity.AdoptionRequest, error)

	// Resolve applies a terminal action to a request. Accept is transactional:
	// the pet is conditionally moved from available to adopted, ownership is
	// handed to the requester, and every other pending request on the pet is
	// bulk-rejected; either all of it is applied or none of it.
	Resolve(ctx context.Context, requestID uuid.UUID, action ResolveAction, actor Actor) (*entity.AdoptionRequest, error)

	// Update edits applicant fields on a still-pending request; requester only.
	Update(ctx context.Context, requestID uuid.UUID, input *UpdateRequestInput, actor Actor) (*entity.AdoptionRequest, error)

	// Get retrieves a single request; requester, owner or admin only.
	Get(ctx context.Context, requestID uuid.UUID, actor Actor) (*entity.AdoptionRequest, error)

	// ListForUser returns all requests where the user is requester or owner.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.AdoptionRequest, error)

	// List returns every adoption request; admin only.
	List(ctx context.Context, actor Actor) ([]*entity.AdoptionRequest, error)

	// Delete removes a request outright; admin only.
	Delete(ctx context.Context, requestID uuid.UUID, actor Actor) error
}
