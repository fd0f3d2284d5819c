package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pethub/internal/domain/entity"
	domainerrors "pethub/internal/domain/errors"
	"pethub/internal/domain/repository"
	mockRepo "pethub/internal/mocks/repository"
	mockService "pethub/internal/mocks/service"
	mockUsecase "pethub/internal/mocks/usecase"
	"pethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adoptionServiceFixtures holds all test dependencies for adoption service tests.
type adoptionServiceFixtures struct {
	service     usecase.AdoptionUsecase
	txManager   *mockRepo.MockTransactionManager
	petRepo     *mockRepo.MockPetRepository
	requestRepo *mockRepo.MockAdoptionRequestRepository
	userRepo    *mockRepo.MockUserRepository
	notifier    *mockUsecase.MockNotificationUsecase
	publisher   *mockService.MockEventPublisher
}

func createTestAdoptionService(t *testing.T) adoptionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	requestRepo := mockRepo.NewMockAdoptionRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockUsecase.NewMockNotificationUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdoptionService(AdoptionServiceParams{
		TxManager:   txManager,
		PetRepo:     petRepo,
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
		Notifier:    notifier,
		Publisher:   publisher,
		Logger:      logger,
	})

	return adoptionServiceFixtures{
		service:     service,
		txManager:   txManager,
		petRepo:     petRepo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		publisher:   publisher,
	}
}

func availablePet(ownerID uuid.UUID) *entity.Pet {
	return &entity.Pet{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Name:           "Bijou",
		Species:        entity.SpeciesDog,
		Breed:          "Corgi",
		Age:            3,
		Gender:         entity.GenderFemale,
		Size:           entity.SizeSmall,
		PhotoURL:       "https://example.com/bijou.png",
		AdoptionStatus: entity.AdoptionStatusAvailable,
	}
}

func pendingRequest(petID, requesterID, ownerID uuid.UUID) *entity.AdoptionRequest {
	now := time.Now()

	return &entity.AdoptionRequest{
		ID:             uuid.New(),
		PetID:          petID,
		RequesterID:    requesterID,
		OwnerID:        ownerID,
		FullName:       "Jamie Lin",
		Email:          "jamie@example.com",
		PhoneNumber:    "0912345678",
		Address:        "1 Main St",
		AdoptionReason: "Lifelong dog person",
		Status:         entity.RequestStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func submitInput(petID, requesterID uuid.UUID) *usecase.SubmitRequestInput {
	return &usecase.SubmitRequestInput{
		PetID:          petID,
		RequesterID:    requesterID,
		FullName:       "  Jamie Lin  ",
		Email:          "jamie@example.com",
		PhoneNumber:    "0912345678",
		Address:        "1 Main St",
		AdoptionReason: "Lifelong dog person",
	}
}

func TestAdoptionService_Submit_Success(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requesterID := uuid.New()
	pet := availablePet(ownerID)
	input := submitInput(pet.ID, requesterID)

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)
	fx.userRepo.EXPECT().FindByID(ctx, requesterID).Return(&entity.User{ID: requesterID}, nil)
	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdoptionRequest")).
		Return(nil)
	fx.notifier.EXPECT().
		NotifyUser(ctx, ownerID, entity.NotificationTypeRequestSubmitted, mock.AnythingOfType("string")).
		Return()
	fx.notifier.EXPECT().
		NotifyAdmins(ctx, entity.NotificationTypeRequestSubmitted, mock.AnythingOfType("string")).
		Return()
	fx.publisher.EXPECT().
		PublishAdoptionEvent(ctx, mock.AnythingOfType("*service.AdoptionEvent")).
		Return(nil)

	request, err := fx.service.Submit(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, pet.ID, request.PetID)
	assert.Equal(t, requesterID, request.RequesterID)
	assert.Equal(t, ownerID, request.OwnerID)
	assert.Equal(t, "Jamie Lin", request.FullName) // trimmed
	assert.Equal(t, entity.RequestStatusPending, request.Status)
}

func TestAdoptionService_Submit_OwnPetForbidden(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	pet := availablePet(ownerID)
	input := submitInput(pet.ID, ownerID)

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

	request, err := fx.service.Submit(ctx, input)
	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrOwnRequestForbidden)
}

func TestAdoptionService_Submit_PetNotAvailable(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	pet := availablePet(uuid.New())
	pet.AdoptionStatus = entity.AdoptionStatusAdopted
	input := submitInput(pet.ID, uuid.New())

	fx.petRepo.EXPECT().FindByID(ctx, pet.ID).Return(pet, nil)

	_, err := fx.service.Submit(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPetNotAvailable)
}

func TestAdoptionService_Submit_PetNotFound(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	petID := uuid.New()
	input := submitInput(petID, uuid.New())

	fx.petRepo.EXPECT().FindByID(ctx, petID).Return(nil, repository.ErrPetNotFound)

	_, err := fx.service.Submit(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}

func TestAdoptionService_Submit_MissingFields(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	input := &usecase.SubmitRequestInput{
		PetID:       uuid.New(),
		RequesterID: uuid.New(),
		FullName:    "Jamie Lin",
		Email:       "   ", // whitespace only
	}

	_, err := fx.service.Submit(ctx, input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	// Missing fields are reported sorted for stable messages.
	assert.Equal(t, "missing required fields: address, adoption_reason, email, phone_number", appErr.Details())
}

func TestAdoptionService_Resolve_Accept_Success(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requesterID := uuid.New()
	pet := availablePet(ownerID)
	request := pendingRequest(pet.ID, requesterID, ownerID)
	actor := usecase.Actor{UserID: ownerID}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	txRequestRepo := mockRepo.NewMockAdoptionRequestRepository(t)
	txPetRepo := mockRepo.NewMockPetRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AdoptionRequestRepo().Return(txRequestRepo)
	factory.EXPECT().PetRepo().Return(txPetRepo)

	txRequestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	txPetRepo.EXPECT().
		UpdateStatusIf(ctx, pet.ID, entity.AdoptionStatusAvailable, entity.AdoptionStatusAdopted, &request.RequesterID).
		Return(true, nil)
	txRequestRepo.EXPECT().
		UpdateStatusIf(ctx, request.ID, entity.RequestStatusPending, entity.RequestStatusAccepted).
		Return(true, nil)
	txRequestRepo.EXPECT().RejectOtherPending(ctx, pet.ID, request.ID).Return(int64(2), nil)

	adoptedPet := *pet
	adoptedPet.AdoptionStatus = entity.AdoptionStatusAdopted
	adoptedPet.AdoptedBy = &requesterID
	txPetRepo.EXPECT().FindByID(ctx, pet.ID).Return(&adoptedPet, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fx.notifier.EXPECT().
		NotifyUser(ctx, requesterID, entity.NotificationTypeRequestAccepted, mock.AnythingOfType("string")).
		Return()
	fx.notifier.EXPECT().
		NotifyAdmins(ctx, entity.NotificationTypeRequestAccepted, mock.AnythingOfType("string")).
		Return()
	fx.publisher.EXPECT().
		PublishAdoptionEvent(ctx, mock.AnythingOfType("*service.AdoptionEvent")).
		Return(nil)

	resolved, err := fx.service.Resolve(ctx, request.ID, usecase.ResolveActionAccept, actor)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, entity.RequestStatusAccepted, resolved.Status)
}

func TestAdoptionService_Resolve_Accept_Forbidden(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	request := pendingRequest(uuid.New(), uuid.New(), uuid.New())
	stranger := usecase.Actor{UserID: uuid.New()}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.Resolve(ctx, request.ID, usecase.ResolveActionAccept, stranger)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdoptionService_Resolve_Accept_ConcurrentConflict(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	request := pendingRequest(uuid.New(), uuid.New(), ownerID)
	actor := usecase.Actor{UserID: ownerID}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	// Both attempts lose the conditional pet update to a concurrent adoption.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errPetStatusChanged).
		Twice()

	_, err := fx.service.Resolve(ctx, request.ID, usecase.ResolveActionAccept, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPetNotAvailable)
}

func TestAdoptionService_Resolve_Accept_RequestAlreadyResolved(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	request := pendingRequest(uuid.New(), uuid.New(), ownerID)
	actor := usecase.Actor{UserID: ownerID}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	resolved := *request
	resolved.Status = entity.RequestStatusRejected

	txRequestRepo := mockRepo.NewMockAdoptionRequestRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AdoptionRequestRepo().Return(txRequestRepo)
	factory.EXPECT().PetRepo().Return(mockRepo.NewMockPetRepository(t))
	txRequestRepo.EXPECT().FindByID(ctx, request.ID).Return(&resolved, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := fx.service.Resolve(ctx, request.ID, usecase.ResolveActionAccept, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotPending)
}

func TestAdoptionService_Resolve_Reject_Success(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requesterID := uuid.New()
	request := pendingRequest(uuid.New(), requesterID, ownerID)
	actor := usecase.Actor{UserID: ownerID}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.requestRepo.EXPECT().
		UpdateStatusIf(ctx, request.ID, entity.RequestStatusPending, entity.RequestStatusRejected).
		Return(true, nil)
	fx.notifier.EXPECT().
		NotifyUser(ctx, requesterID, entity.NotificationTypeRequestRejected, mock.AnythingOfType("string")).
		Return()
	fx.publisher.EXPECT().
		PublishAdoptionEvent(ctx, mock.AnythingOfType("*service.AdoptionEvent")).
		Return(nil)

	resolved, err := fx.service.Resolve(ctx, request.ID, usecase.ResolveActionReject, actor)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, resolved.Status)
}

func TestAdoptionService_Resolve_Reject_AlreadyResolved(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	request := pendingRequest(uuid.New(), uuid.New(), ownerID)
	actor := usecase.Actor{UserID: ownerID}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.requestRepo.EXPECT().
		UpdateStatusIf(ctx, request.ID, entity.RequestStatusPending, entity.RequestStatusRejected).
		Return(false, nil)

	_, err := fx.service.Resolve(ctx, request.ID, usecase.ResolveActionReject, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotPending)
}

func TestAdoptionService_Resolve_Cancel_Success(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requesterID := uuid.New()
	request := pendingRequest(uuid.New(), requesterID, ownerID)
	actor := usecase.Actor{UserID: requesterID}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.requestRepo.EXPECT().Delete(ctx, request.ID).Return(nil)
	fx.notifier.EXPECT().
		NotifyUser(ctx, ownerID, entity.NotificationTypeRequestDeleted, mock.AnythingOfType("string")).
		Return()
	fx.publisher.EXPECT().
		PublishAdoptionEvent(ctx, mock.AnythingOfType("*service.AdoptionEvent")).
		Return(nil)

	resolved, err := fx.service.Resolve(ctx, request.ID, usecase.ResolveActionCancel, actor)
	require.NoError(t, err)
	assert.Equal(t, request.ID, resolved.ID)
}

func TestAdoptionService_Resolve_Cancel_OnlyRequester(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	request := pendingRequest(uuid.New(), uuid.New(), ownerID)
	// The pet owner cannot withdraw someone else's application.
	actor := usecase.Actor{UserID: ownerID}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.Resolve(ctx, request.ID, usecase.ResolveActionCancel, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdoptionService_Resolve_UnknownAction(t *testing.T) {
	fx := createTestAdoptionService(t)

	_, err := fx.service.Resolve(context.Background(), uuid.New(), usecase.ResolveAction("approve"), usecase.Actor{UserID: uuid.New()})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAdoptionService_Update_Success(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	request := pendingRequest(uuid.New(), requesterID, uuid.New())
	actor := usecase.Actor{UserID: requesterID}

	newPhone := " 0987654321 "
	newReason := "We moved to a house with a yard"
	input := &usecase.UpdateRequestInput{
		PhoneNumber:    &newPhone,
		AdoptionReason: &newReason,
	}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.requestRepo.EXPECT().Update(ctx, request).Return(nil)

	updated, err := fx.service.Update(ctx, request.ID, input, actor)
	require.NoError(t, err)
	assert.Equal(t, "0987654321", updated.PhoneNumber)
	assert.Equal(t, newReason, updated.AdoptionReason)
	assert.Equal(t, "Jamie Lin", updated.FullName) // untouched
}

func TestAdoptionService_Update_EmptyRequiredField(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	request := pendingRequest(uuid.New(), requesterID, uuid.New())
	actor := usecase.Actor{UserID: requesterID}

	empty := "   "
	input := &usecase.UpdateRequestInput{Email: &empty}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.Update(ctx, request.ID, input, actor)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email must not be empty", appErr.Details())
}

func TestAdoptionService_Update_NotPending(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	request := pendingRequest(uuid.New(), requesterID, uuid.New())
	request.Status = entity.RequestStatusAccepted
	actor := usecase.Actor{UserID: requesterID}

	name := "New Name"
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.Update(ctx, request.ID, &usecase.UpdateRequestInput{FullName: &name}, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotPending)
}

func TestAdoptionService_Get_PartyAccess(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	ownerID := uuid.New()
	request := pendingRequest(uuid.New(), requesterID, ownerID)

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil).Times(3)

	// Requester, owner and admin may read the request.
	for _, actor := range []usecase.Actor{
		{UserID: requesterID},
		{UserID: ownerID},
		{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}},
	} {
		got, err := fx.service.Get(ctx, request.ID, actor)
		require.NoError(t, err)
		assert.Equal(t, request.ID, got.ID)
	}
}

func TestAdoptionService_Get_StrangerForbidden(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	request := pendingRequest(uuid.New(), uuid.New(), uuid.New())

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.Get(ctx, request.ID, usecase.Actor{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdoptionService_List_AdminOnly(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()

	_, err := fx.service.List(ctx, usecase.Actor{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	admin := usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
	requests := []*entity.AdoptionRequest{pendingRequest(uuid.New(), uuid.New(), uuid.New())}
	fx.requestRepo.EXPECT().List(ctx).Return(requests, nil)

	got, err := fx.service.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAdoptionService_Delete_AdminCascade(t *testing.T) {
	fx := createTestAdoptionService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	ownerID := uuid.New()
	request := pendingRequest(uuid.New(), requesterID, ownerID)
	admin := usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.requestRepo.EXPECT().Delete(ctx, request.ID).Return(nil)
	fx.notifier.EXPECT().
		NotifyUser(ctx, requesterID, entity.NotificationTypeRequestDeleted, mock.AnythingOfType("string")).
		Return()
	fx.notifier.EXPECT().
		NotifyUser(ctx, ownerID, entity.NotificationTypeRequestDeleted, mock.AnythingOfType("string")).
		Return()
	fx.publisher.EXPECT().
		PublishAdoptionEvent(ctx, mock.AnythingOfType("*service.AdoptionEvent")).
		Return(nil)

	err := fx.service.Delete(ctx, request.ID, admin)
	require.NoError(t, err)
}

func TestAdoptionService_Delete_NonAdminForbidden(t *testing.T) {
	fx := createTestAdoptionService(t)

	err := fx.service.Delete(context.Background(), uuid.New(), usecase.Actor{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
