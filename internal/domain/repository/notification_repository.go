// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pethub/internal/domain/entity"
	"pethub/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a single workflow notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByUser retrieves all notifications addressed to a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// ListAdminChannel retrieves all notifications addressed to the admin channel, newest first.
	ListAdminChannel(ctx context.Context) ([]*entity.Notification, error)

	// MarkRead flags a notification as seen. The update is scoped to the
	// recipient; a notification addressed to someone else counts as not found.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// DeleteByUser removes every notification addressed to a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
