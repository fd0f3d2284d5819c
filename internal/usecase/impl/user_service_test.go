package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pethub/config"
	"pethub/internal/domain/entity"
	domainerrors "pethub/internal/domain/errors"
	"pethub/internal/domain/repository"
	"pethub/internal/domain/service"
	mockRepo "pethub/internal/mocks/repository"
	mockService "pethub/internal/mocks/service"
	"pethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service           usecase.UserUsecase
	txManager         *mockRepo.MockTransactionManager
	userRepo          *mockRepo.MockUserRepository
	hasher            *mockService.MockPasswordHasher
	tokenService      *mockService.MockTokenService
	verificationStore *mockService.MockVerificationStore
	publisher         *mockService.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	verificationStore := mockService.NewMockVerificationStore(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		VerificationStore: verificationStore,
		Publisher:         publisher,
		Logger:            logger,
	})

	return userServiceFixtures{
		service:           service,
		txManager:         txManager,
		userRepo:          userRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		verificationStore: verificationStore,
		publisher:         publisher,
	}
}

func verifiedUser(email string) *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		Email:         email,
		FullName:      "Jamie Lin",
		PasswordHash:  "$2a$10$hash",
		Role:          entity.RoleIndividual,
		IsActive:      true,
		EmailVerified: true,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName: " Jamie Lin ",
		Email:    " Jamie@Example.com ",
		Password: "StrongPass123!",
		Role:     "shelter",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("StrongPass123!").Return(nil)
	fx.hasher.EXPECT().Hash("StrongPass123!").Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	txUserRepo.EXPECT().FindByEmail(ctx, "jamie@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fx.verificationStore.EXPECT().
		SaveCode(ctx, "jamie@example.com", mock.AnythingOfType("string"), defaultVerificationTTL).
		Return(nil)
	fx.publisher.EXPECT().
		PublishUserEvent(ctx, mock.AnythingOfType("*service.UserEvent")).
		Return(nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "jamie@example.com", output.User.Email) // normalized
	assert.Equal(t, "Jamie Lin", output.User.FullName)      // trimmed
	assert.Equal(t, entity.RoleShelter, output.User.Role)
	assert.Equal(t, "hashed", output.User.PasswordHash)
	assert.True(t, output.User.IsActive)
	assert.False(t, output.User.EmailVerified)
}

func TestUserService_Register_DeliversVerificationCode(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName: "Jamie Lin",
		Email:    "jamie@example.com",
		Password: "StrongPass123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("StrongPass123!").Return(nil)
	fx.hasher.EXPECT().Hash("StrongPass123!").Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	txUserRepo.EXPECT().FindByEmail(ctx, "jamie@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	var storedCode string
	fx.verificationStore.EXPECT().
		SaveCode(ctx, "jamie@example.com", mock.AnythingOfType("string"), defaultVerificationTTL).
		Run(func(_ context.Context, _, code string, _ time.Duration) {
			storedCode = code
		}).
		Return(nil)

	var published *service.UserEvent
	fx.publisher.EXPECT().
		PublishUserEvent(ctx, mock.AnythingOfType("*service.UserEvent")).
		Run(func(_ context.Context, event *service.UserEvent) {
			published = event
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)

	// The event must carry the same code that was stored, so the mail
	// pipeline can deliver exactly what VerifyEmail will accept.
	require.NotNil(t, published)
	assert.Equal(t, entity.UserEventTypeVerificationIssued, published.EventType)
	assert.Equal(t, output.User.ID.String(), published.UserID)
	assert.Equal(t, "jamie@example.com", published.Email)
	assert.NotEmpty(t, storedCode)
	assert.Equal(t, storedCode, published.Code)
	assert.Equal(t, defaultVerificationTTL.String(), published.ExpiresIn)
}

func TestUserService_Register_PublishFailureSurfaces(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName: "Jamie Lin",
		Email:    "jamie@example.com",
		Password: "StrongPass123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("StrongPass123!").Return(nil)
	fx.hasher.EXPECT().Hash("StrongPass123!").Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	txUserRepo.EXPECT().FindByEmail(ctx, "jamie@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fx.verificationStore.EXPECT().
		SaveCode(ctx, "jamie@example.com", mock.AnythingOfType("string"), defaultVerificationTTL).
		Return(nil)
	fx.publisher.EXPECT().
		PublishUserEvent(ctx, mock.AnythingOfType("*service.UserEvent")).
		Return(assert.AnError)

	// An undeliverable code would leave the account stuck behind the
	// verification gate, so the failure surfaces to the caller.
	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)
}

func TestUserService_Register_ConfiguredTTL(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	verificationStore := mockService.NewMockVerificationStore(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Verification = &config.VerificationConfig{CodeTTLMinutes: 30}

	svc := NewUserService(UserServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		VerificationStore: verificationStore,
		Publisher:         publisher,
		Config:            cfg,
		Logger:            logger,
	})

	ctx := context.Background()
	hasher.EXPECT().ValidatePasswordStrength("StrongPass123!").Return(nil)
	hasher.EXPECT().Hash("StrongPass123!").Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	txUserRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	verificationStore.EXPECT().
		SaveCode(ctx, "a@example.com", mock.AnythingOfType("string"), 30*time.Minute).
		Return(nil)

	var published *service.UserEvent
	publisher.EXPECT().
		PublishUserEvent(ctx, mock.AnythingOfType("*service.UserEvent")).
		Run(func(_ context.Context, event *service.UserEvent) {
			published = event
		}).
		Return(nil)

	_, err := svc.Register(ctx, &usecase.RegisterInput{
		FullName: "A",
		Email:    "a@example.com",
		Password: "StrongPass123!",
	})
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, (30 * time.Minute).String(), published.ExpiresIn)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName: "Jamie Lin",
		Email:    "jamie@example.com",
		Password: "StrongPass123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("StrongPass123!").Return(nil)
	fx.hasher.EXPECT().Hash("StrongPass123!").Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	txUserRepo.EXPECT().
		FindByEmail(ctx, "jamie@example.com").
		Return(verifiedUser("jamie@example.com"), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_ValidationFailures(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName: "  ",
		Email:    "not-an-email",
		Password: "StrongPass123!",
		Role:     "admin", // cannot be self-registered
	}

	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "full_name must not be empty")
	assert.Contains(t, appErr.Details(), "email is invalid")
	assert.Contains(t, appErr.Details(), "role must be individual or shelter")
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FullName: "Jamie Lin",
		Email:    "jamie@example.com",
		Password: "weak",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength("weak").
		Return(assert.AnError)

	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPasswordStrength.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_VerifyEmail_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := verifiedUser("jamie@example.com")
	user.EmailVerified = false

	fx.verificationStore.EXPECT().ConsumeCode(ctx, "jamie@example.com", "123456").Return(true, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "jamie@example.com").Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{
		Email: " Jamie@Example.com ",
		Code:  " 123456 ",
	})
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)
}

func TestUserService_VerifyEmail_CodeMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.verificationStore.EXPECT().ConsumeCode(ctx, "jamie@example.com", "000000").Return(false, nil)

	err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{
		Email: "jamie@example.com",
		Code:  "000000",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVerificationCodeInvalid)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := verifiedUser("jamie@example.com")

	fx.userRepo.EXPECT().FindByEmail(ctx, "jamie@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("StrongPass123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"individual"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jamie@example.com",
		Password: "StrongPass123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "StrongPass123!",
	})
	require.Error(t, err)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := verifiedUser("jamie@example.com")

	fx.userRepo.EXPECT().FindByEmail(ctx, "jamie@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("WrongPass123!", user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jamie@example.com",
		Password: "WrongPass123!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_EmailNotVerified(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := verifiedUser("jamie@example.com")
	user.EmailVerified = false

	fx.userRepo.EXPECT().FindByEmail(ctx, "jamie@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("StrongPass123!", user.PasswordHash).Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jamie@example.com",
		Password: "StrongPass123!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
}

func TestUserService_Login_DisabledAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := verifiedUser("jamie@example.com")
	user.IsActive = false

	fx.userRepo.EXPECT().FindByEmail(ctx, "jamie@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("StrongPass123!", user.PasswordHash).Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jamie@example.com",
		Password: "StrongPass123!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := verifiedUser("jamie@example.com")

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := verifiedUser("jamie@example.com")

	newName := " Jamie L. "
	newPhone := "0987654321"
	input := &usecase.UpdateProfileInput{
		FullName: &newName,
		Phone:    &newPhone,
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, user.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Jamie L.", updated.FullName)
	assert.Equal(t, "0987654321", updated.Phone)
}

func TestUserService_UpdateProfile_EmptyName(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := verifiedUser("jamie@example.com")

	empty := "  "
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{FullName: &empty})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "full_name must not be empty", appErr.Details())
}
