package impl

import (
	"context"
	"testing"

	"pethub/internal/domain/entity"
	domainerrors "pethub/internal/domain/errors"
	"pethub/internal/domain/repository"
	mockRepo "pethub/internal/mocks/repository"
	"pethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_New(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{
		FCMToken: "fresh-token",
		DeviceID: "pixel-8",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fresh-token", device.FCMToken)
	assert.Equal(t, "pixel-8", device.DeviceID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingRefreshesToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := activeDevice(userID, "old-token")
	existing.DeviceID = "pixel-8"

	info := &usecase.DeviceInfo{
		FCMToken: "rotated-token",
		DeviceID: "pixel-8",
		Platform: "android",
	}

	refreshed := *existing
	refreshed.FCMToken = "rotated-token"

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "rotated-token").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(&refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "rotated-token", device.FCMToken)
}

func TestDeviceService_UpdateFCMToken_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := activeDevice(userID, "old-token")

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, device.ID, "new-token").Return(nil)

	err := fx.service.UpdateFCMToken(ctx, userID, device.ID, "new-token")
	require.NoError(t, err)
}

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDeviceService_UpdateFCMToken_OtherUserForbidden(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := activeDevice(uuid.New(), "old-token")

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), device.ID, "new-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		activeDevice(userID, "token-a"),
		activeDevice(userID, "token-b"),
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := activeDevice(userID, "token-a")

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

	err := fx.service.DeactivateDevice(ctx, userID, device.ID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_OtherUserForbidden(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := activeDevice(uuid.New(), "token-a")

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), device.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
