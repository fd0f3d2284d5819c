package impl

import (
	"context"
	"log/slog"
	"time"

	"pethub/internal/domain/entity"
	domainerrors "pethub/internal/domain/errors"
	"pethub/internal/domain/repository"
	"pethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	petRepo     repository.PetRepository
	requestRepo repository.AdoptionRequestRepository
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	PetRepo     repository.PetRepository
	RequestRepo repository.AdoptionRequestRepository
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		petRepo:     params.PetRepo,
		requestRepo: params.RequestRepo,
		logger:      params.Logger,
	}
}

// ListUsers returns every registered user.
func (srv *adminService) ListUsers(ctx context.Context, actor usecase.Actor) ([]*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUserRole changes a user's role.
func (srv *adminService) UpdateUserRole(ctx context.Context, userID uuid.UUID, role string, actor usecase.Actor) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	newRole := entity.Role(role)
	if !newRole.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + role)
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	user.Role = newRole
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user role")
	}

	srv.logger.Info("User role updated",
		slog.String("userID", userID.String()),
		slog.String("role", role))

	return user, nil
}

// DeleteUser removes an account together with every pet it owns and every
// adoption request referencing those pets, all inside one transaction.
func (srv *adminService) DeleteUser(ctx context.Context, userID uuid.UUID, actor usecase.Actor) error {
	if !actor.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	srv.logger.Info("Deleting user with cascade", slog.String("userID", userID.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		petRepo := repoFactory.PetRepo()
		requestRepo := repoFactory.AdoptionRequestRepo()
		notificationRepo := repoFactory.NotificationRepo()

		// 1. The user must exist
		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Drop the user's pets and the requests referencing them
		petIDs, err := petRepo.DeleteByOwner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete user's pets")
		}
		if len(petIDs) > 0 {
			deleted, err := requestRepo.DeleteByPets(ctx, petIDs)
			if err != nil {
				return errors.Wrap(err, "failed to delete requests for user's pets")
			}

			srv.logger.Info("Cascaded deletion",
				slog.String("userID", userID.String()),
				slog.Int("pets", len(petIDs)),
				slog.Int64("requests", deleted))
		}

		// 3. Drop notifications addressed to the user
		if err := notificationRepo.DeleteByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user's notifications")
		}

		// 4. Drop the account itself
		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// GetPlatformStats computes the admin dashboard statistics. Change
// percentages compare records created this calendar month against the
// previous one.
func (srv *adminService) GetPlatformStats(ctx context.Context, actor usecase.Actor) (*usecase.PlatformStats, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalPets, err := srv.petRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pets")
	}

	pending, err := srv.requestRepo.CountByStatus(ctx, entity.RequestStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending requests")
	}

	accepted, err := srv.requestRepo.CountByStatus(ctx, entity.RequestStatusAccepted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accepted requests")
	}

	usersThisMonth, err := srv.userRepo.CountCreatedBetween(ctx, monthStart, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users this month")
	}
	usersLastMonth, err := srv.userRepo.CountCreatedBetween(ctx, prevMonthStart, monthStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users last month")
	}

	petsThisMonth, err := srv.petRepo.CountCreatedBetween(ctx, monthStart, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pets this month")
	}
	petsLastMonth, err := srv.petRepo.CountCreatedBetween(ctx, prevMonthStart, monthStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pets last month")
	}

	requestsThisMonth, err := srv.requestRepo.CountCreatedBetween(ctx, monthStart, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count requests this month")
	}
	requestsLastMonth, err := srv.requestRepo.CountCreatedBetween(ctx, prevMonthStart, monthStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count requests last month")
	}

	return &usecase.PlatformStats{
		TotalUsers:           totalUsers,
		TotalPets:            totalPets,
		PendingRequests:      pending,
		AcceptedRequests:     accepted,
		UserChangePercent:    percentChange(usersLastMonth, usersThisMonth),
		PetChangePercent:     percentChange(petsLastMonth, petsThisMonth),
		RequestChangePercent: percentChange(requestsLastMonth, requestsThisMonth),
	}, nil
}

// percentChange reports the relative change from prev to cur. A jump from
// zero counts as a full 100% increase.
func percentChange(prev, cur int64) float64 {
	if prev == 0 {
		if cur > 0 {
			return 100
		}

		return 0
	}

	return float64(cur-prev) / float64(prev) * 100
}
