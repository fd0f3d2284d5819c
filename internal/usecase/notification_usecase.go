package usecase

import (
	"context"

	"pethub/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for the workflow notification sink
// and for reading notifications back. Delivery is best-effort: Notify methods
// log failures and never return them, so a failed notification can never fail
// the workflow operation that emitted it.
type NotificationUsecase interface {
	// NotifyUser records a workflow event for a user and pushes it to their
	// active devices.
	NotifyUser(ctx context.Context, userID uuid.UUID, eventType, message string)

	// NotifyAdmins records a workflow event on the admin channel and pushes it
	// to every administrator's active devices.
	NotifyAdmins(ctx context.Context, eventType, message string)

	// ListForUser retrieves all notifications addressed to a user.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// ListAdminChannel retrieves the admin channel; admin only.
	ListAdminChannel(ctx context.Context, actor Actor) ([]*entity.Notification, error)

	// MarkRead flags one of the caller's notifications as seen.
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
}
