// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification event types emitted by the adoption workflow.
const (
	// NotificationTypeRequestSubmitted is emitted when a new adoption request is created.
	NotificationTypeRequestSubmitted = "adoption_request_submitted"
	// NotificationTypeRequestAccepted is emitted when an owner accepts a request.
	NotificationTypeRequestAccepted = "adoption_request_accepted"
	// NotificationTypeRequestRejected is emitted when an owner rejects a request.
	NotificationTypeRequestRejected = "adoption_request_rejected"
	// NotificationTypeRequestDeleted is emitted when a request is removed.
	NotificationTypeRequestDeleted = "adoption_request_deleted"
)

// Notification represents a single workflow event addressed to a user or,
// when UserID is nil, to the shared admin channel.
type Notification struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	UserID    *uuid.UUID `json:"user_id"`    // The recipient; nil means the admin broadcast channel.
	Type      string     `json:"type"`       // The workflow event type (see constants above).
	Message   string     `json:"message"`    // Human-readable message shown to the recipient.
	Read      bool       `json:"read"`       // Whether the recipient has seen the notification.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when the notification was created.
}
