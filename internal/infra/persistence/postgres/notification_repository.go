package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"pethub/internal/domain/entity"
	domainerrors "pethub/internal/domain/errors"
	"pethub/internal/domain/repository"
	"pethub/internal/infra/persistence/model"
)

// notificationRepository implements the repository.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a single workflow notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("recipient does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByUser retrieves all notifications addressed to a user, newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by user")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// ListAdminChannel retrieves all notifications addressed to the admin channel, newest first.
func (repo *notificationRepository) ListAdminChannel(ctx context.Context) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IS NULL").
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list admin notifications")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// MarkRead flags a notification as seen. Scoped to the recipient so one user
// cannot mark another user's notification.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteByUser removes every notification addressed to a user.
func (repo *notificationRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete notifications by user")
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Message:   data.Message,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}

func toNotificationDomainSlice(models []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(models))
	for _, notificationM := range models {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Message:   data.Message,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}
