package impl

import (
	"context"
	"log/slog"
	"strings"
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

// petService implements the PetUsecase interface.
type petService struct {
	txManager     repository.TransactionManager
	petRepo       repository.PetRepository
	userRepo      repository.UserRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// PetServiceParams holds dependencies for PetService, injected by Fx.
type PetServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PetRepo       repository.PetRepository
	UserRepo      repository.UserRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(params PetServiceParams) usecase.PetUsecase {
	return &petService{
		txManager:     params.TxManager,
		petRepo:       params.PetRepo,
		userRepo:      params.UserRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// ListPets returns the adoptable-pet listing for the given filters.
func (srv *petService) ListPets(ctx context.Context, input *usecase.ListPetsInput) ([]*entity.Pet, error) {
	filter, err := buildPetFilter(input)
	if err != nil {
		return nil, err
	}

	pets, err := srv.petRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	return pets, nil
}

// GetPet retrieves a single pet by ID.
func (srv *petService) GetPet(ctx context.Context, petID uuid.UUID) (*entity.Pet, error) {
	pet, err := srv.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPetNotFound, "pet not found")
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	return pet, nil
}

// GetPetsByOwner retrieves every pet currently owned by a user.
func (srv *petService) GetPetsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error) {
	pets, err := srv.petRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets by owner")
	}

	return pets, nil
}

// AddPet lists a new pet owned by the actor.
func (srv *petService) AddPet(ctx context.Context, input *usecase.AddPetInput, actor usecase.Actor) (*entity.Pet, error) {
	srv.logger.Info("Adding pet",
		slog.String("ownerID", actor.UserID.String()),
		slog.String("name", input.Name))

	// 1. Validate the listing fields
	if err := validatePetFields(input); err != nil {
		return nil, err
	}

	status := entity.AdoptionStatusAvailable
	if input.Status != "" {
		status = entity.AdoptionStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown adoption status: " + input.Status)
		}
	}

	// 2. Verify the owner account exists
	if _, err := srv.userRepo.FindByID(ctx, actor.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "owner not found")
		}

		return nil, errors.Wrap(err, "failed to find owner")
	}

	// 3. Persist the listing
	now := time.Now()
	pet := &entity.Pet{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(input.Name),
		Species:          entity.Species(input.Species),
		Breed:            strings.TrimSpace(input.Breed),
		Age:              input.Age,
		Gender:           entity.Gender(input.Gender),
		Size:             entity.Size(input.Size),
		Description:      strings.TrimSpace(input.Description),
		PhotoURL:         input.PhotoURL,
		AdditionalPhotos: input.AdditionalPhotos,
		OwnerID:          actor.UserID,
		AdoptionStatus:   status,
		IsAdopted:        status == entity.AdoptionStatusAdopted,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := srv.petRepo.Create(ctx, pet); err != nil {
		return nil, errors.Wrap(err, "failed to create pet")
	}

	return pet, nil
}

// UpdatePet edits a pet's details; owner or admin only.
func (srv *petService) UpdatePet(ctx context.Context, petID uuid.UUID, input *usecase.UpdatePetInput, actor usecase.Actor) (*entity.Pet, error) {
	pet, err := srv.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPetNotFound, "pet not found")
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	if pet.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner may edit a pet")
	}

	if err := applyPetUpdate(pet, input); err != nil {
		return nil, err
	}
	pet.UpdatedAt = time.Now()

	if err := srv.petRepo.Update(ctx, pet); err != nil {
		return nil, errors.Wrap(err, "failed to update pet")
	}

	return pet, nil
}

// AdoptPet directly marks a pet adopted by the actor, bypassing the request
// workflow. The handover is keyed on the pet's loaded status so a concurrent
// adoption surfaces as a conflict instead of silently overwriting it.
func (srv *petService) AdoptPet(ctx context.Context, petID uuid.UUID, actor usecase.Actor) error {
	pet, err := srv.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return errors.Wrap(domainerrors.ErrPetNotFound, "pet not found")
		}

		return errors.Wrap(err, "failed to find pet")
	}

	if pet.OwnerID == actor.UserID {
		return errors.Wrap(domainerrors.ErrOwnRequestForbidden, "cannot adopt your own pet")
	}

	if pet.AdoptionStatus == entity.AdoptionStatusAdopted || pet.AdoptionStatus == entity.AdoptionStatusOwned {
		return errors.Wrap(domainerrors.ErrPetAlreadyAdopted, "pet is not up for adoption")
	}

	applied, err := srv.petRepo.UpdateStatusIf(ctx, pet.ID, pet.AdoptionStatus, entity.AdoptionStatusAdopted, &actor.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to update pet status")
	}
	if !applied {
		return errors.Wrap(domainerrors.ErrConflict, "pet status changed while adopting")
	}

	srv.logger.Info("Pet adopted directly",
		slog.String("petID", pet.ID.String()),
		slog.String("adopterID", actor.UserID.String()))

	return nil
}

// DeletePet removes a pet together with every adoption request referencing
// it, so no request is left pointing at a missing pet.
func (srv *petService) DeletePet(ctx context.Context, petID uuid.UUID, actor usecase.Actor) error {
	pet, err := srv.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return errors.Wrap(domainerrors.ErrPetNotFound, "pet not found")
		}

		return errors.Wrap(err, "failed to find pet")
	}

	if pet.OwnerID != actor.UserID && !actor.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "only the owner may delete a pet")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Drop the requests referencing the pet
		deleted, err := repoFactory.AdoptionRequestRepo().DeleteByPet(ctx, pet.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete adoption requests for pet")
		}
		if deleted > 0 {
			srv.logger.Info("Cascaded adoption request deletion",
				slog.String("petID", pet.ID.String()),
				slog.Int64("count", deleted))
		}

		// 2. Drop the pet itself
		if err := repoFactory.PetRepo().Delete(ctx, pet.ID); err != nil {
			return errors.Wrap(err, "failed to delete pet")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete pet with its requests")
	}

	return nil
}

// PetShareQR renders a QR code linking to the pet's public listing.
func (srv *petService) PetShareQR(ctx context.Context, petID uuid.UUID) ([]byte, error) {
	if _, err := srv.petRepo.FindByID(ctx, petID); err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPetNotFound, "pet not found")
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	png, err := srv.qrcodeService.GeneratePetQR(petID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pet QR code")
	}

	return png, nil
}

// buildPetFilter translates the listing query into a repository filter.
// Empty strings and the "all" sentinel leave a field unconstrained; adopted
// pets and the caller's own pets are excluded unless a status is asked for.
func buildPetFilter(input *usecase.ListPetsInput) (repository.PetFilter, error) {
	filter := repository.PetFilter{
		Search:         strings.TrimSpace(input.Search),
		Breed:          strings.TrimSpace(input.Breed),
		ExcludeOwnerID: input.CallerID,
	}

	if v := input.Species; v != "" && v != usecase.FilterAll {
		species := entity.Species(v)
		if !species.IsValid() {
			return repository.PetFilter{}, domainerrors.ErrValidationFailed.WithDetails("unknown species: " + v)
		}
		filter.Species = species
	}

	if v := input.Gender; v != "" && v != usecase.FilterAll {
		gender := entity.Gender(v)
		if !gender.IsValid() {
			return repository.PetFilter{}, domainerrors.ErrValidationFailed.WithDetails("unknown gender: " + v)
		}
		filter.Gender = gender
	}

	if v := input.Size; v != "" && v != usecase.FilterAll {
		size := entity.Size(v)
		if !size.IsValid() {
			return repository.PetFilter{}, domainerrors.ErrValidationFailed.WithDetails("unknown size: " + v)
		}
		filter.Size = size
	}

	if v := input.Status; v != "" && v != usecase.FilterAll {
		status := entity.AdoptionStatus(v)
		if !status.IsValid() {
			return repository.PetFilter{}, domainerrors.ErrValidationFailed.WithDetails("unknown adoption status: " + v)
		}
		filter.Status = status
	} else {
		filter.ExcludeAdopted = true
	}

	if v := input.Age; v != "" && v != usecase.FilterAll {
		minAge, maxAge, ok := usecase.AgeBucket(v).Range()
		if !ok {
			return repository.PetFilter{}, domainerrors.ErrValidationFailed.WithDetails("unknown age bucket: " + v)
		}
		filter.MinAge = &minAge
		filter.MaxAge = maxAge
	}

	return filter, nil
}

// validatePetFields checks the required listing fields.
func validatePetFields(input *usecase.AddPetInput) error {
	var details []string

	if strings.TrimSpace(input.Name) == "" {
		details = append(details, "name must not be empty")
	}
	if !entity.Species(input.Species).IsValid() {
		details = append(details, "unknown species: "+input.Species)
	}
	if strings.TrimSpace(input.Breed) == "" {
		details = append(details, "breed must not be empty")
	}
	if input.Age < 0 {
		details = append(details, "age must not be negative")
	}
	if !entity.Gender(input.Gender).IsValid() {
		details = append(details, "unknown gender: "+input.Gender)
	}
	if !entity.Size(input.Size).IsValid() {
		details = append(details, "unknown size: "+input.Size)
	}
	if strings.TrimSpace(input.PhotoURL) == "" {
		details = append(details, "photo_url must not be empty")
	}

	if len(details) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
	}

	return nil
}

// applyPetUpdate copies the allow-listed fields onto the pet, validating
// enum values as they are set. The adopted flag tracks the status field.
func applyPetUpdate(pet *entity.Pet, input *usecase.UpdatePetInput) error {
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		pet.Name = strings.TrimSpace(*input.Name)
	}
	if input.Species != nil {
		species := entity.Species(*input.Species)
		if !species.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown species: " + *input.Species)
		}
		pet.Species = species
	}
	if input.Breed != nil {
		pet.Breed = strings.TrimSpace(*input.Breed)
	}
	if input.Age != nil {
		if *input.Age < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("age must not be negative")
		}
		pet.Age = *input.Age
	}
	if input.Gender != nil {
		gender := entity.Gender(*input.Gender)
		if !gender.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown gender: " + *input.Gender)
		}
		pet.Gender = gender
	}
	if input.Size != nil {
		size := entity.Size(*input.Size)
		if !size.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown size: " + *input.Size)
		}
		pet.Size = size
	}
	if input.Description != nil {
		pet.Description = strings.TrimSpace(*input.Description)
	}
	if input.PhotoURL != nil {
		pet.PhotoURL = *input.PhotoURL
	}
	if input.AdditionalPhotos != nil {
		pet.AdditionalPhotos = input.AdditionalPhotos
	}
	if input.Status != nil {
		status := entity.AdoptionStatus(*input.Status)
		if !status.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown adoption status: " + *input.Status)
		}
		pet.AdoptionStatus = status
		pet.IsAdopted = status == entity.AdoptionStatusAdopted
	}

	return nil
}
