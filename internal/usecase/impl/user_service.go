package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"pethub/config"
	"pethub/internal/domain/entity"
	domainerrors "pethub/internal/domain/errors"
	"pethub/internal/domain/repository"
	"pethub/internal/domain/service"
	"pethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultVerificationTTL applies when no TTL is configured.
const defaultVerificationTTL = 15 * time.Minute

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	verificationStore service.VerificationStore
	publisher         service.EventPublisher
	verificationTTL   time.Duration
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	VerificationStore service.VerificationStore
	Publisher         service.EventPublisher
	Config            *config.Config
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	verificationTTL := defaultVerificationTTL
	if params.Config != nil && params.Config.Verification != nil && params.Config.Verification.CodeTTLMinutes > 0 {
		verificationTTL = time.Duration(params.Config.Verification.CodeTTLMinutes) * time.Minute
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		verificationStore: params.VerificationStore,
		publisher:         params.Publisher,
		verificationTTL:   verificationTTL,
		logger:            params.Logger,
	}
}

// Register creates a new account and issues a short-lived email verification code.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.logger.Info("Starting registration", slog.String("email", email))

	// 1. Validate the account fields
	if err := validateRegistration(input, email); err != nil {
		return nil, err
	}

	role := entity.RoleIndividual
	if input.Role != "" {
		role = entity.Role(input.Role)
	}

	// 2. Enforce the password policy before hashing
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	// 3. Create the account, guarding email uniqueness inside the transaction
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: hash,
		Role:         role,
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Issue the verification code; the account is unusable until verified
	code, err := generateVerificationCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	if err := srv.verificationStore.SaveCode(ctx, email, code, srv.verificationTTL); err != nil {
		return nil, errors.Wrap(err, "failed to store verification code")
	}

	// 5. Hand the code to the mail pipeline; without delivery the account
	// could never pass the verification gate at login
	event := &service.UserEvent{
		EventType: entity.UserEventTypeVerificationIssued,
		UserID:    user.ID.String(),
		Email:     email,
		Code:      code,
		ExpiresIn: srv.verificationTTL.String(),
	}
	if err := srv.publisher.PublishUserEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to publish verification event")
	}

	srv.logger.Info("Verification code issued",
		slog.String("email", email),
		slog.Duration("ttl", srv.verificationTTL))

	return &usecase.RegisterOutput{User: user}, nil
}

// VerifyEmail consumes a verification code and marks the account verified.
func (srv *userService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) error {
	email := normalizeEmail(input.Email)

	ok, err := srv.verificationStore.ConsumeCode(ctx, email, strings.TrimSpace(input.Code))
	if err != nil {
		return errors.Wrap(err, "failed to consume verification code")
	}
	if !ok {
		return errors.Wrap(domainerrors.ErrVerificationCodeInvalid, "code mismatch or expired")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to find user")
	}

	user.EmailVerified = true
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to mark email verified")
	}

	srv.logger.Info("Email verified", slog.String("email", email))

	return nil
}

// Login authenticates a user and returns an access/refresh token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "account disabled")
	}

	if !user.EmailVerified {
		return nil, errors.Wrap(domainerrors.ErrEmailNotVerified, "email not verified")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.logger.Info("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetProfile retrieves the authenticated user's account data.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile edits the authenticated user's account data.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.FullName != nil {
		if strings.TrimSpace(*input.FullName) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("full_name must not be empty")
		}
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// normalizeEmail lower-cases and trims the login identifier so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegistration checks the required registration fields. Admin
// accounts are provisioned manually and can never be self-registered.
func validateRegistration(input *usecase.RegisterInput, email string) error {
	var details []string

	if strings.TrimSpace(input.FullName) == "" {
		details = append(details, "full_name must not be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		details = append(details, "email is invalid")
	}
	if input.Role != "" {
		role := entity.Role(input.Role)
		if role != entity.RoleIndividual && role != entity.RoleShelter {
			details = append(details, "role must be individual or shelter")
		}
	}

	if len(details) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
	}

	return nil
}

// generateVerificationCode draws a 6-digit numeric code from crypto/rand.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
