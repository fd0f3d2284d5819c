package impl

import (
	"context"
	"log/slog"
	"time"

	"pethub/internal/domain/entity"
	domainerrors "pethub/internal/domain/errors"
	"pethub/internal/domain/repository"
	"pethub/internal/domain/service"
	"pethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface. It is the
// workflow's best-effort sink: every failure is logged and swallowed so a
// broken push pipeline can never fail an adoption operation.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushService      service.NotificationService
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	PushService      service.NotificationService
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		pushService:      params.PushService,
		logger:           params.Logger,
	}
}

// NotifyUser records a workflow event for a user and pushes it to their
// active devices.
func (s *notificationService) NotifyUser(ctx context.Context, userID uuid.UUID, eventType, message string) {
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    &userID,
		Type:      eventType,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Error("Failed to record notification",
			slog.String("userID", userID.String()),
			slog.String("type", eventType),
			slog.Any("error", err))
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load devices for push",
			slog.String("userID", userID.String()),
			slog.Any("error", err))

		return
	}

	s.push(ctx, devices, eventType, message)
}

// NotifyAdmins records a workflow event on the admin channel and pushes it to
// every administrator's active devices.
func (s *notificationService) NotifyAdmins(ctx context.Context, eventType, message string) {
	notification := &entity.Notification{
		ID:        uuid.New(),
		Type:      eventType,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Error("Failed to record admin notification",
			slog.String("type", eventType),
			slog.Any("error", err))
	}

	devices, err := s.deviceRepo.FindActiveDevicesByRole(ctx, entity.RoleAdmin)
	if err != nil {
		s.logger.Error("Failed to load admin devices for push", slog.Any("error", err))

		return
	}

	s.push(ctx, devices, eventType, message)
}

// push fans the message out to the given devices and deactivates tokens the
// push provider reports as invalid.
func (s *notificationService) push(ctx context.Context, devices []*entity.UserDevice, eventType, message string) {
	// Push delivery is optional; without a configured provider we only record.
	if s.pushService == nil || len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]uuid.UUID, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device.ID
	}

	success, failure, invalidTokens, err := s.pushService.SendBatchNotification(
		ctx, tokens, pushTitle(eventType), message, map[string]string{"type": eventType})
	if err != nil {
		s.logger.Error("Failed to send push notifications",
			slog.String("type", eventType),
			slog.Any("error", err))

		return
	}

	if failure > 0 {
		s.logger.Warn("Push delivery partially failed",
			slog.String("type", eventType),
			slog.Int("success", success),
			slog.Int("failure", failure))
	}

	for _, token := range invalidTokens {
		deviceID, ok := deviceByToken[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
			s.logger.Warn("Failed to deactivate device with invalid token",
				slog.String("deviceID", deviceID.String()),
				slog.Any("error", err))
		}
	}
}

// ListForUser retrieves all notifications addressed to a user.
func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by user")
	}

	return notifications, nil
}

// ListAdminChannel retrieves the admin channel.
func (s *notificationService) ListAdminChannel(ctx context.Context, actor usecase.Actor) ([]*entity.Notification, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	notifications, err := s.notificationRepo.ListAdminChannel(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin notifications")
	}

	return notifications, nil
}

// MarkRead flags one of the caller's notifications as seen. A notification
// addressed to another user is reported as not found rather than forbidden.
func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "notification not found")
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// pushTitle maps a workflow event type to the push notification title.
func pushTitle(eventType string) string {
	switch eventType {
	case entity.NotificationTypeRequestSubmitted:
		return "新的領養申請"
	case entity.NotificationTypeRequestAccepted:
		return "領養申請已接受"
	case entity.NotificationTypeRequestRejected:
		return "領養申請已拒絕"
	case entity.NotificationTypeRequestDeleted:
		return "領養申請已移除"
	default:
		return "PetHub"
	}
}
