package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pethub/internal/domain/entity"
	domainerrors "pethub/internal/domain/errors"
	"pethub/internal/domain/repository"
	mockRepo "pethub/internal/mocks/repository"
	mockService "pethub/internal/mocks/service"
	"pethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	pushService      *mockService.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushService := mockService.NewMockNotificationService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		DeviceRepo:       deviceRepo,
		PushService:      pushService,
		Logger:           logger,
	})

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		pushService:      pushService,
	}
}

func activeDevice(userID uuid.UUID, token string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: token,
		DeviceID: "device-" + token,
		Platform: "android",
		IsActive: true,
	}
}

func TestNotificationService_NotifyUser_RecordsAndPushes(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		activeDevice(userID, "token-a"),
		activeDevice(userID, "token-b"),
	}

	var recorded *entity.Notification
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			recorded = notification
		}).
		Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"},
			"領養申請已接受", "您對 Mochi 的領養申請已被接受",
			map[string]string{"type": entity.NotificationTypeRequestAccepted}).
		Return(2, 0, nil, nil)

	fx.service.NotifyUser(ctx, userID, entity.NotificationTypeRequestAccepted, "您對 Mochi 的領養申請已被接受")

	require.NotNil(t, recorded)
	require.NotNil(t, recorded.UserID)
	assert.Equal(t, userID, *recorded.UserID)
	assert.Equal(t, entity.NotificationTypeRequestAccepted, recorded.Type)
	assert.Equal(t, "您對 Mochi 的領養申請已被接受", recorded.Message)
}

func TestNotificationService_NotifyUser_NoDevicesSkipsPush(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, nil)

	fx.service.NotifyUser(ctx, userID, entity.NotificationTypeRequestSubmitted, "已收到 Mochi 的新領養申請")
}

func TestNotificationService_NotifyUser_RecordFailureStillPushes(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{activeDevice(userID, "token-a")}

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(assert.AnError)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-a"},
			"領養申請已拒絕", "您的領養申請已被拒絕",
			map[string]string{"type": entity.NotificationTypeRequestRejected}).
		Return(1, 0, nil, nil)

	fx.service.NotifyUser(ctx, userID, entity.NotificationTypeRequestRejected, "您的領養申請已被拒絕")
}

func TestNotificationService_NotifyUser_InvalidTokenCleanup(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	good := activeDevice(userID, "token-good")
	stale := activeDevice(userID, "token-stale")

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{good, stale}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-good", "token-stale"},
			"領養申請已移除", "一筆領養申請已由管理員移除",
			map[string]string{"type": entity.NotificationTypeRequestDeleted}).
		Return(1, 1, []string{"token-stale", "token-unknown"}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, stale.ID).Return(nil)

	fx.service.NotifyUser(ctx, userID, entity.NotificationTypeRequestDeleted, "一筆領養申請已由管理員移除")
}

func TestNotificationService_NotifyAdmins(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	adminDevice := activeDevice(uuid.New(), "admin-token")

	var recorded *entity.Notification
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			recorded = notification
		}).
		Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByRole(ctx, entity.RoleAdmin).
		Return([]*entity.UserDevice{adminDevice}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"admin-token"},
			"新的領養申請", "已收到 Mochi 的新領養申請",
			map[string]string{"type": entity.NotificationTypeRequestSubmitted}).
		Return(1, 0, nil, nil)

	fx.service.NotifyAdmins(ctx, entity.NotificationTypeRequestSubmitted, "已收到 Mochi 的新領養申請")

	require.NotNil(t, recorded)
	assert.Nil(t, recorded.UserID)
	assert.Equal(t, entity.NotificationTypeRequestSubmitted, recorded.Type)
}

func TestNotificationService_NotifyAdmins_PushErrorSwallowed(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	adminDevice := activeDevice(uuid.New(), "admin-token")

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByRole(ctx, entity.RoleAdmin).
		Return([]*entity.UserDevice{adminDevice}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"admin-token"}, "PetHub", "系統將於今晚進行維護",
			map[string]string{"type": "system"}).
		Return(0, 0, nil, assert.AnError)

	fx.service.NotifyAdmins(ctx, "system", "系統將於今晚進行維護")
}

func TestNotificationService_ListForUser(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notifications := []*entity.Notification{
		{ID: uuid.New(), UserID: &userID, Type: entity.NotificationTypeRequestAccepted},
	}

	fx.notificationRepo.EXPECT().ListByUser(ctx, userID).Return(notifications, nil)

	got, err := fx.service.ListForUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNotificationService_ListAdminChannel(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	_, err := fx.service.ListAdminChannel(ctx, usecase.Actor{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	notifications := []*entity.Notification{
		{ID: uuid.New(), Type: entity.NotificationTypeRequestSubmitted},
	}
	fx.notificationRepo.EXPECT().ListAdminChannel(ctx).Return(notifications, nil)

	got, err := fx.service.ListAdminChannel(ctx, adminActor())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().MarkRead(ctx, notificationID, userID).Return(nil)

	require.NoError(t, fx.service.MarkRead(ctx, notificationID, userID))
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().MarkRead(ctx, notificationID, userID).
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, notificationID, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestNotificationService_MarkRead_OtherUsersNotification(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	caller := uuid.New()

	// The repository update is scoped to the recipient, so a notification
	// addressed to another user matches zero rows.
	fx.notificationRepo.EXPECT().MarkRead(ctx, notificationID, caller).
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, notificationID, caller)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
