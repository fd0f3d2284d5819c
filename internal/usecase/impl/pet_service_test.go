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

// petServiceFixtures holds all test dependencies for pet service tests.
type petServiceFixtures struct {
	service       usecase.PetUsecase
	txManager     *mockRepo.MockTransactionManager
	petRepo       *mockRepo.MockPetRepository
	userRepo      *mockRepo.MockUserRepository
	qrcodeService *mockService.MockQRCodeService
}

func createTestPetService(t *testing.T) petServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPetService(PetServiceParams{
		TxManager:     txManager,
		PetRepo:       petRepo,
		UserRepo:      userRepo,
		QRCodeService: qrcodeService,
		Logger:        logger,
	})

	return petServiceFixtures{
		service:       service,
		txManager:     txManager,
		petRepo:       petRepo,
		userRepo:      userRepo,
		qrcodeService: qrcodeService,
	}
}

func validAddPetInput() *usecase.AddPetInput {
	return &usecase.AddPetInput{
		Name:     "  Mochi ",
		Species:  "Cat",
		Breed:    "Mixed",
		Age:      2,
		Gender:   "Female",
		Size:     "Small",
		PhotoURL: "https://example.com/mochi.png",
	}
}

func TestPetService_ListPets_DefaultFilter(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	callerID := uuid.New()
	input := &usecase.ListPetsInput{CallerID: &callerID}

	expectedFilter := repository.PetFilter{
		ExcludeOwnerID: &callerID,
		ExcludeAdopted: true,
	}
	pets := []*entity.Pet{availablePet(uuid.New())}
	fx.petRepo.EXPECT().List(ctx, expectedFilter).Return(pets, nil)

	got, err := fx.service.ListPets(ctx, input)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPetService_ListPets_FullFilter(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	input := &usecase.ListPetsInput{
		Search:  " corgi ",
		Species: "Dog",
		Breed:   "Corgi",
		Age:     "4-6",
		Size:    "Small",
		Gender:  "Female",
		Status:  "available",
	}

	minAge := 4
	maxAge := 6
	expectedFilter := repository.PetFilter{
		Search:  "corgi",
		Species: entity.SpeciesDog,
		Breed:   "Corgi",
		Gender:  entity.GenderFemale,
		Size:    entity.SizeSmall,
		Status:  entity.AdoptionStatusAvailable,
		MinAge:  &minAge,
		MaxAge:  &maxAge,
	}
	fx.petRepo.EXPECT().List(ctx, expectedFilter).Return([]*entity.Pet{}, nil)

	_, err := fx.service.ListPets(ctx, input)
	require.NoError(t, err)
}

func TestPetService_ListPets_AllSentinelUnconstrained(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	input := &usecase.ListPetsInput{
		Species: usecase.FilterAll,
		Age:     usecase.FilterAll,
		Size:    usecase.FilterAll,
		Gender:  usecase.FilterAll,
		Status:  usecase.FilterAll,
	}

	// "all" still means the default view, which hides adopted pets.
	expectedFilter := repository.PetFilter{ExcludeAdopted: true}
	fx.petRepo.EXPECT().List(ctx, expectedFilter).Return([]*entity.Pet{}, nil)

	_, err := fx.service.ListPets(ctx, input)
	require.NoError(t, err)
}

func TestPetService_ListPets_OpenEndedAgeBucket(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	input := &usecase.ListPetsInput{Age: "10+"}

	minAge := 10
	expectedFilter := repository.PetFilter{
		MinAge:         &minAge,
		ExcludeAdopted: true,
	}
	fx.petRepo.EXPECT().List(ctx, expectedFilter).Return([]*entity.Pet{}, nil)

	_, err := fx.service.ListPets(ctx, input)
	require.NoError(t, err)
}

func TestPetService_ListPets_InvalidFilterValues(t *testing.T) {
	fx := createTestPetService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.ListPetsInput
	}{
		{"Unknown species", &usecase.ListPetsInput{Species: "Hamster"}},
		{"Unknown gender", &usecase.ListPetsInput{Gender: "unknown"}},
		{"Unknown size", &usecase.ListPetsInput{Size: "XL"}},
		{"Unknown status", &usecase.ListPetsInput{Status: "lost"}},
		{"Unknown age bucket", &usecase.ListPetsInput{Age: "5-7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.ListPets(ctx, tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestPetService_AddPet_Success(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New()}
	input := validAddPetInput()

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(&entity.User{ID: actor.UserID}, nil)
	fx.petRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Pet")).Return(nil)

	pet, err := fx.service.AddPet(ctx, input, actor)
	require.NoError(t, err)
	require.NotNil(t, pet)
	assert.Equal(t, "Mochi", pet.Name) // trimmed
	assert.Equal(t, entity.SpeciesCat, pet.Species)
	assert.Equal(t, actor.UserID, pet.OwnerID)
	assert.Equal(t, entity.AdoptionStatusAvailable, pet.AdoptionStatus)
	assert.False(t, pet.IsAdopted)
}

func TestPetService_AddPet_ExplicitStatus(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New()}
	input := validAddPetInput()
	input.Status = "owned"

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(&entity.User{ID: actor.UserID}, nil)
	fx.petRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Pet")).Return(nil)

	pet, err := fx.service.AddPet(ctx, input, actor)
	require.NoError(t, err)
	assert.Equal(t, entity.AdoptionStatusOwned, pet.AdoptionStatus)
}

func TestPetService_AddPet_ValidationFailures(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New()}
	input := &usecase.AddPetInput{
		Name:    "   ",
		Species: "Dragon",
		Age:     -1,
		Gender:  "Female",
		Size:    "Small",
	}

	_, err := fx.service.AddPet(ctx, input, actor)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "name must not be empty")
	assert.Contains(t, appErr.Details(), "unknown species: Dragon")
	assert.Contains(t, appErr.Details(), "breed must not be empty")
	assert.Contains(t, appErr.Details(), "age must not be negative")
	assert.Contains(t, appErr.Details(), "photo_url must not be empty")
}

func TestPetService_AddPet_OwnerNotFound(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	actor := usecase.Actor{UserID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.AddPet(ctx, validAddPetInput(), actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPetService_UpdatePet_Success(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	pet := availablePet(ownerID)
	actor := usecase.Actor{UserID: ownerID}

	newName := "  Biscuit "
	newStatus := "owned"
	input := &usecase.UpdatePetInput{
		Name:   &newName,
		Status: &newStatus,
	}

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	fx.petRepo.EXPECT().Update(ctx, pet).Return(nil)

	updated, err := fx.service.UpdatePet(ctx, pet.ID, input, actor)
	require.NoError(t, err)
	assert.Equal(t, "Biscuit", updated.Name)
	assert.Equal(t, entity.AdoptionStatusOwned, updated.AdoptionStatus)
	assert.False(t, updated.IsAdopted)
}

func TestPetService_UpdatePet_NonOwnerForbidden(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	pet := availablePet(uuid.New())
	stranger := usecase.Actor{UserID: uuid.New()}

	name := "Biscuit"
	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

	_, err := fx.service.UpdatePet(ctx, pet.ID, &usecase.UpdatePetInput{Name: &name}, stranger)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPetService_UpdatePet_AdminAllowed(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	pet := availablePet(uuid.New())
	admin := usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	desc := "Very good dog"
	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	fx.petRepo.EXPECT().Update(ctx, pet).Return(nil)

	updated, err := fx.service.UpdatePet(ctx, pet.ID, &usecase.UpdatePetInput{Description: &desc}, admin)
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)
}

func TestPetService_AdoptPet_Success(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	pet := availablePet(uuid.New())
	actor := usecase.Actor{UserID: uuid.New()}

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	fx.petRepo.EXPECT().
		UpdateStatusIf(ctx, pet.ID, entity.AdoptionStatusAvailable, entity.AdoptionStatusAdopted, &actor.UserID).
		Return(true, nil)

	err := fx.service.AdoptPet(ctx, pet.ID, actor)
	require.NoError(t, err)
}

func TestPetService_AdoptPet_OwnPet(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	pet := availablePet(ownerID)

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

	err := fx.service.AdoptPet(ctx, pet.ID, usecase.Actor{UserID: ownerID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnRequestForbidden)
}

func TestPetService_AdoptPet_AlreadyAdopted(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	pet := availablePet(uuid.New())
	pet.AdoptionStatus = entity.AdoptionStatusAdopted

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

	err := fx.service.AdoptPet(ctx, pet.ID, usecase.Actor{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPetAlreadyAdopted)
}

func TestPetService_AdoptPet_ConcurrentConflict(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	pet := availablePet(uuid.New())
	actor := usecase.Actor{UserID: uuid.New()}

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	fx.petRepo.EXPECT().
		UpdateStatusIf(ctx, pet.ID, entity.AdoptionStatusAvailable, entity.AdoptionStatusAdopted, &actor.UserID).
		Return(false, nil)

	err := fx.service.AdoptPet(ctx, pet.ID, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestPetService_DeletePet_CascadesRequests(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	pet := availablePet(ownerID)
	actor := usecase.Actor{UserID: ownerID}

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

	txRequestRepo := mockRepo.NewMockAdoptionRequestRepository(t)
	txPetRepo := mockRepo.NewMockPetRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AdoptionRequestRepo().Return(txRequestRepo)
	factory.EXPECT().PetRepo().Return(txPetRepo)

	txRequestRepo.EXPECT().DeleteByPet(ctx, pet.ID).Return(int64(3), nil)
	txPetRepo.EXPECT().Delete(ctx, pet.ID).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := fx.service.DeletePet(ctx, pet.ID, actor)
	require.NoError(t, err)
}

func TestPetService_DeletePet_NonOwnerForbidden(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	pet := availablePet(uuid.New())

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

	err := fx.service.DeletePet(ctx, pet.ID, usecase.Actor{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPetService_PetShareQR(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	pet := availablePet(uuid.New())
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	fx.qrcodeService.EXPECT().GeneratePetQR(pet.ID).Return(png, nil)

	got, err := fx.service.PetShareQR(ctx, pet.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestPetService_PetShareQR_PetNotFound(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	petID := uuid.New()

	fx.petRepo.EXPECT().FindByID(ctx, petID).Return(nil, repository.ErrPetNotFound)

	_, err := fx.service.PetShareQR(ctx, petID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}
