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

// petRepository implements the repository.PetRepository interface using GORM.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

// FindByID retrieves a single pet by its unique ID.
func (repo *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&petM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by id")
	}

	return toPetDomain(&petM), nil
}

// List retrieves pets matching the given filter, newest first.
func (repo *petRepository) List(ctx context.Context, filter repository.PetFilter) ([]*entity.Pet, error) {
	query := repo.db.WithContext(ctx).Model(&model.PetModel{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR breed ILIKE ? OR species ILIKE ?", like, like, like)
	}
	if filter.Species != "" {
		query = query.Where("species = ?", filter.Species.String())
	}
	if filter.Breed != "" {
		query = query.Where("breed = ?", filter.Breed)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender.String())
	}
	if filter.Size != "" {
		query = query.Where("size = ?", filter.Size.String())
	}
	if filter.Status != "" {
		query = query.Where("adoption_status = ?", filter.Status.String())
	}
	if filter.ExcludeAdopted {
		query = query.Where("adoption_status <> ?", entity.AdoptionStatusAdopted.String())
	}
	if filter.MinAge != nil {
		query = query.Where("age >= ?", *filter.MinAge)
	}
	if filter.MaxAge != nil {
		query = query.Where("age <= ?", *filter.MaxAge)
	}
	if filter.ExcludeOwnerID != nil {
		query = query.Where("owner_id <> ?", *filter.ExcludeOwnerID)
	}

	var petModels []*model.PetModel
	if err := query.Order("created_at DESC").Find(&petModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	pets := make([]*entity.Pet, 0, len(petModels))
	for _, petM := range petModels {
		pets = append(pets, toPetDomain(petM))
	}

	return pets, nil
}

// FindByOwner retrieves all pets currently owned by a user, newest first.
func (repo *petRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error) {
	var petModels []*model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&petModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pets by owner")
	}

	pets := make([]*entity.Pet, 0, len(petModels))
	for _, petM := range petModels {
		pets = append(pets, toPetDomain(petM))
	}

	return pets, nil
}

// Create persists a new pet entity to the database.
func (repo *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pet information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// Update modifies an existing pet entity in the database.
func (repo *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Save(petM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pet information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update pet")
	}

	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// UpdateStatusIf performs a conditional update of the pet's adoption status.
// The WHERE clause keys on the current status, so a concurrent transition
// simply matches zero rows instead of overwriting the newer state.
func (repo *petRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.AdoptionStatus, adopter *uuid.UUID) (bool, error) {
	updates := map[string]any{
		"adoption_status": to.String(),
		"is_adopted":      to == entity.AdoptionStatusAdopted,
		"updated_at":      time.Now(),
	}
	if adopter != nil {
		updates["owner_id"] = *adopter
		updates["adopted_by"] = *adopter
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("id = ? AND adoption_status = ?", id, from.String()).
		Updates(updates)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update pet status")
	}

	return result.RowsAffected > 0, nil
}

// Delete removes a pet by its ID.
func (repo *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PetModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// DeleteByOwner removes every pet owned by a user and returns the deleted IDs
// so dependent records can be cascaded by the caller.
func (repo *petRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to collect pets by owner")
	}

	if len(ids) == 0 {
		return nil, nil
	}

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.PetModel{}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete pets by owner")
	}

	return ids, nil
}

// Count returns the total number of pets.
func (repo *petRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pets")
	}

	return count, nil
}

// CountCreatedBetween returns the number of pets listed in [from, to).
func (repo *petRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pets by creation time")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPetDomain converts a GORM PetModel to a domain Pet entity.
func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:               data.ID,
		Name:             data.Name,
		Species:          entity.Species(data.Species),
		Breed:            data.Breed,
		Age:              data.Age,
		Gender:           entity.Gender(data.Gender),
		Size:             entity.Size(data.Size),
		Description:      data.Description,
		PhotoURL:         data.PhotoURL,
		AdditionalPhotos: data.AdditionalPhotos,
		OwnerID:          data.OwnerID,
		AdoptionStatus:   entity.AdoptionStatus(data.AdoptionStatus),
		IsAdopted:        data.IsAdopted,
		AdoptedBy:        data.AdoptedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromPetDomain converts a domain Pet entity to a GORM PetModel for persistence.
func fromPetDomain(data *entity.Pet) *model.PetModel {
	if data == nil {
		return nil
	}

	return &model.PetModel{
		ID:               data.ID,
		Name:             data.Name,
		Species:          data.Species.String(),
		Breed:            data.Breed,
		Age:              data.Age,
		Gender:           data.Gender.String(),
		Size:             data.Size.String(),
		Description:      data.Description,
		PhotoURL:         data.PhotoURL,
		AdditionalPhotos: data.AdditionalPhotos,
		OwnerID:          data.OwnerID,
		AdoptionStatus:   data.AdoptionStatus.String(),
		IsAdopted:        data.IsAdopted,
		AdoptedBy:        data.AdoptedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
