package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"pethub/internal/domain/entity"
	domainerrors "pethub/internal/domain/errors"
	"pethub/internal/domain/repository"
	"pethub/internal/infra/persistence/model"
)

// adoptionRequestRepository implements the repository.AdoptionRequestRepository interface using GORM.
type adoptionRequestRepository struct {
	db *gorm.DB
}

// NewAdoptionRequestRepository is the constructor for adoptionRequestRepository.
func NewAdoptionRequestRepository(db *gorm.DB) repository.AdoptionRequestRepository {
	return &adoptionRequestRepository{db: db}
}

// FindByID retrieves a single adoption request by its unique ID.
func (repo *adoptionRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionRequest, error) {
	var requestM model.AdoptionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find adoption request by id")
	}

	return toRequestDomain(&requestM), nil
}

// List retrieves all adoption requests, newest first.
func (repo *adoptionRequestRepository) List(ctx context.Context) ([]*entity.AdoptionRequest, error) {
	var requestModels []*model.AdoptionRequestModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list adoption requests")
	}

	return toRequestDomainSlice(requestModels), nil
}

// ListByUser retrieves all requests where the user is either the requester or the owner.
func (repo *adoptionRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AdoptionRequest, error) {
	var requestModels []*model.AdoptionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("requester_id = ? OR owner_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list adoption requests by user")
	}

	return toRequestDomainSlice(requestModels), nil
}

// ListByPet retrieves all requests referencing a pet.
func (repo *adoptionRequestRepository) ListByPet(ctx context.Context, petID uuid.UUID) ([]*entity.AdoptionRequest, error) {
	var requestModels []*model.AdoptionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list adoption requests by pet")
	}

	return toRequestDomainSlice(requestModels), nil
}

// Create persists a new adoption request.
func (repo *adoptionRequestRepository) Create(ctx context.Context, request *entity.AdoptionRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPetNotFound.WrapMessage("pet or user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create adoption request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// Update modifies an existing adoption request.
func (repo *adoptionRequestRepository) Update(ctx context.Context, request *entity.AdoptionRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Save(requestM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update adoption request")
	}

	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// UpdateStatusIf performs a conditional status transition keyed on the
// request's current status, reporting whether a row was touched.
func (repo *adoptionRequestRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AdoptionRequestModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update request status")
	}

	return result.RowsAffected > 0, nil
}

// RejectOtherPending transitions every pending request for the pet except
// the given one to rejected, returning the number of requests touched.
func (repo *adoptionRequestRepository) RejectOtherPending(ctx context.Context, petID, exceptID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AdoptionRequestModel{}).
		Where("pet_id = ? AND status = ? AND id <> ?", petID, entity.RequestStatusPending.String(), exceptID).
		Updates(map[string]any{
			"status":     entity.RequestStatusRejected.String(),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to reject competing requests")
	}

	return result.RowsAffected, nil
}

// Delete removes an adoption request by its ID.
func (repo *adoptionRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AdoptionRequestModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete adoption request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// DeleteByPet removes every request referencing a pet.
func (repo *adoptionRequestRepository) DeleteByPet(ctx context.Context, petID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Delete(&model.AdoptionRequestModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete adoption requests by pet")
	}

	return result.RowsAffected, nil
}

// DeleteByPets removes every request referencing any of the given pets.
func (repo *adoptionRequestRepository) DeleteByPets(ctx context.Context, petIDs []uuid.UUID) (int64, error) {
	if len(petIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("pet_id IN ?", petIDs).
		Delete(&model.AdoptionRequestModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete adoption requests by pets")
	}

	return result.RowsAffected, nil
}

// CountByStatus returns the number of requests currently in the given status.
func (repo *adoptionRequestRepository) CountByStatus(ctx context.Context, status entity.RequestStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AdoptionRequestModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count adoption requests by status")
	}

	return count, nil
}

// CountCreatedBetween returns the number of requests submitted in [from, to).
func (repo *adoptionRequestRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AdoptionRequestModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count adoption requests by creation time")
	}

	return count, nil
}

// --- Mapper Functions ---

func toRequestDomain(data *model.AdoptionRequestModel) *entity.AdoptionRequest {
	if data == nil {
		return nil
	}

	return &entity.AdoptionRequest{
		ID:                 data.ID,
		PetID:              data.PetID,
		RequesterID:        data.RequesterID,
		OwnerID:            data.OwnerID,
		FullName:           data.FullName,
		Email:              data.Email,
		PhoneNumber:        data.PhoneNumber,
		Address:            data.Address,
		PreviousExperience: data.PreviousExperience,
		AdoptionReason:     data.AdoptionReason,
		Status:             entity.RequestStatus(data.Status),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toRequestDomainSlice(models []*model.AdoptionRequestModel) []*entity.AdoptionRequest {
	requests := make([]*entity.AdoptionRequest, 0, len(models))
	for _, requestM := range models {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

func fromRequestDomain(data *entity.AdoptionRequest) *model.AdoptionRequestModel {
	if data == nil {
		return nil
	}

	return &model.AdoptionRequestModel{
		ID:                 data.ID,
		PetID:              data.PetID,
		RequesterID:        data.RequesterID,
		OwnerID:            data.OwnerID,
		FullName:           data.FullName,
		Email:              data.Email,
		PhoneNumber:        data.PhoneNumber,
		Address:            data.Address,
		PreviousExperience: data.PreviousExperience,
		AdoptionReason:     data.AdoptionReason,
		Status:             data.Status.String(),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
