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
	"pethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	petRepo     *mockRepo.MockPetRepository
	requestRepo *mockRepo.MockAdoptionRequestRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	requestRepo := mockRepo.NewMockAdoptionRequestRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(AdminServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		PetRepo:     petRepo,
		RequestRepo: requestRepo,
		Logger:      logger,
	})

	return adminServiceFixtures{
		service:     service,
		txManager:   txManager,
		userRepo:    userRepo,
		petRepo:     petRepo,
		requestRepo: requestRepo,
	}
}

func adminActor() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
}

func TestAdminService_ListUsers(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	_, err := fx.service.ListUsers(ctx, usecase.Actor{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	users := []*entity.User{verifiedUser("a@example.com"), verifiedUser("b@example.com")}
	fx.userRepo.EXPECT().List(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx, adminActor())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAdminService_UpdateUserRole_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	user := verifiedUser("a@example.com")

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.UpdateUserRole(ctx, user.ID, "shelter", adminActor())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleShelter, updated.Role)
}

func TestAdminService_UpdateUserRole_UnknownRole(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.UpdateUserRole(context.Background(), uuid.New(), "superuser", adminActor())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "unknown role: superuser", appErr.Details())
}

func TestAdminService_UpdateUserRole_NonAdminForbidden(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.UpdateUserRole(context.Background(), uuid.New(), "shelter", usecase.Actor{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_DeleteUser_Cascade(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	user := verifiedUser("a@example.com")
	petIDs := []uuid.UUID{uuid.New(), uuid.New()}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPetRepo := mockRepo.NewMockPetRepository(t)
	txRequestRepo := mockRepo.NewMockAdoptionRequestRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().PetRepo().Return(txPetRepo)
	factory.EXPECT().AdoptionRequestRepo().Return(txRequestRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)

	txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	txPetRepo.EXPECT().DeleteByOwner(ctx, user.ID).Return(petIDs, nil)
	txRequestRepo.EXPECT().DeleteByPets(ctx, petIDs).Return(int64(4), nil)
	txNotificationRepo.EXPECT().DeleteByUser(ctx, user.ID).Return(nil)
	txUserRepo.EXPECT().Delete(ctx, user.ID).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := fx.service.DeleteUser(ctx, user.ID, adminActor())
	require.NoError(t, err)
}

func TestAdminService_DeleteUser_NoPetsSkipsRequestCascade(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	user := verifiedUser("a@example.com")

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPetRepo := mockRepo.NewMockPetRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().PetRepo().Return(txPetRepo)
	factory.EXPECT().AdoptionRequestRepo().Return(mockRepo.NewMockAdoptionRequestRepository(t))
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)

	txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	txPetRepo.EXPECT().DeleteByOwner(ctx, user.ID).Return(nil, nil)
	txNotificationRepo.EXPECT().DeleteByUser(ctx, user.ID).Return(nil)
	txUserRepo.EXPECT().Delete(ctx, user.ID).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := fx.service.DeleteUser(ctx, user.ID, adminActor())
	require.NoError(t, err)
}

func TestAdminService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().PetRepo().Return(mockRepo.NewMockPetRepository(t))
	factory.EXPECT().AdoptionRequestRepo().Return(mockRepo.NewMockAdoptionRequestRepository(t))
	factory.EXPECT().NotificationRepo().Return(mockRepo.NewMockNotificationRepository(t))

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := fx.service.DeleteUser(ctx, userID, adminActor())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminService_GetPlatformStats(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().Count(ctx).Return(int64(120), nil)
	fx.petRepo.EXPECT().Count(ctx).Return(int64(45), nil)
	fx.requestRepo.EXPECT().CountByStatus(ctx, entity.RequestStatusPending).Return(int64(7), nil)
	fx.requestRepo.EXPECT().CountByStatus(ctx, entity.RequestStatusAccepted).Return(int64(30), nil)

	// This month vs last month.
	fx.userRepo.EXPECT().
		CountCreatedBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(int64(15), nil).Once()
	fx.userRepo.EXPECT().
		CountCreatedBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(int64(10), nil).Once()
	fx.petRepo.EXPECT().
		CountCreatedBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(int64(5), nil).Once()
	fx.petRepo.EXPECT().
		CountCreatedBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(int64(0), nil).Once()
	fx.requestRepo.EXPECT().
		CountCreatedBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(int64(0), nil).Once()
	fx.requestRepo.EXPECT().
		CountCreatedBetween(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(int64(8), nil).Once()

	stats, err := fx.service.GetPlatformStats(ctx, adminActor())
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(45), stats.TotalPets)
	assert.Equal(t, int64(7), stats.PendingRequests)
	assert.Equal(t, int64(30), stats.AcceptedRequests)
	assert.InDelta(t, 50.0, stats.UserChangePercent, 0.001)  // 10 -> 15
	assert.InDelta(t, 100.0, stats.PetChangePercent, 0.001)  // 0 -> 5
	assert.InDelta(t, -100.0, stats.RequestChangePercent, 0.001) // 8 -> 0
}

func TestAdminService_GetPlatformStats_NonAdminForbidden(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.GetPlatformStats(context.Background(), usecase.Actor{UserID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPercentChange(t *testing.T) {
	assert.InDelta(t, 0.0, percentChange(0, 0), 0.001)
	assert.InDelta(t, 100.0, percentChange(0, 3), 0.001)
	assert.InDelta(t, 50.0, percentChange(10, 15), 0.001)
	assert.InDelta(t, -25.0, percentChange(4, 3), 0.001)
}
