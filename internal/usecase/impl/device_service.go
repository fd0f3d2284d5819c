package impl

import (
	"context"
	"time"

	"pethub/internal/domain/entity"
	domainerrors "pethub/internal/domain/errors"
	"pethub/internal/domain/repository"
	"pethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the FCM token of an
// already registered one.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID == deviceInfo.DeviceID {
			if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to update FCM token")
			}

			updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to find device by ID")
			}

			return updatedDevice, nil
		}
	}

	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device.
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "device belongs to another user")
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user.
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete).
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "device belongs to another user")
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
