package service

import (
	"context"
)

// AdoptionEvent represents a workflow event published for external consumers
// (mail delivery, audit pipelines, analytics).
type AdoptionEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventType   string `json:"event_type"`           // One of the entity.NotificationType* values
	PetID       string `json:"pet_id"`
	PetName     string `json:"pet_name"`
	RequesterID string `json:"requester_id"`
	OwnerID     string `json:"owner_id"`
	Message     string `json:"message,omitempty"`
}

// UserEvent represents an account lifecycle event published for external
// consumers. Verification events carry the code so the mail pipeline can
// deliver it to the registrant.
type UserEvent struct {
	EventType string `json:"event_type"` // One of the entity.UserEventType* values
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Code      string `json:"code,omitempty"`
	ExpiresIn string `json:"expires_in,omitempty"` // Code validity window, e.g. "15m0s"
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAdoptionEvent publishes an adoption workflow event for async processing
	PublishAdoptionEvent(ctx context.Context, event *AdoptionEvent) error

	// PublishUserEvent publishes an account lifecycle event for async processing
	PublishUserEvent(ctx context.Context, event *UserEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
