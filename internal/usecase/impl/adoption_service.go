// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
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

// errPetStatusChanged signals a conditional pet update that matched zero rows
// because another transaction moved the pet first. Retried once before giving up.
var errPetStatusChanged = errors.New("pet status changed concurrently")

// adoptionService implements the AdoptionUsecase interface.
type adoptionService struct {
	txManager   repository.TransactionManager
	petRepo     repository.PetRepository
	requestRepo repository.AdoptionRequestRepository
	userRepo    repository.UserRepository
	notifier    usecase.NotificationUsecase
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// AdoptionServiceParams holds dependencies for AdoptionService, injected by Fx.
type AdoptionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PetRepo     repository.PetRepository
	RequestRepo repository.AdoptionRequestRepository
	UserRepo    repository.UserRepository
	Notifier    usecase.NotificationUsecase
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAdoptionService is the constructor for adoptionService.
func NewAdoptionService(params AdoptionServiceParams) usecase.AdoptionUsecase {
	return &adoptionService{
		txManager:   params.TxManager,
		petRepo:     params.PetRepo,
		requestRepo: params.RequestRepo,
		userRepo:    params.UserRepo,
		notifier:    params.Notifier,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// Submit creates a new pending adoption request for an available pet.
func (srv *adoptionService) Submit(ctx context.Context, input *usecase.SubmitRequestInput) (*entity.AdoptionRequest, error) {
	srv.logger.Info("Submitting adoption request",
		slog.String("petID", input.PetID.String()),
		slog.String("requesterID", input.RequesterID.String()))

	// 1. Validate the applicant fields
	if err := validateApplicantFields(input); err != nil {
		return nil, err
	}

	// 2. Load the pet and guard availability
	pet, err := srv.petRepo.FindByID(ctx, input.PetID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPetNotFound, "pet not found")
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	if pet.OwnerID == input.RequesterID {
		return nil, errors.Wrap(domainerrors.ErrOwnRequestForbidden, "requester owns this pet")
	}

	if !pet.Available() {
		return nil, errors.Wrap(domainerrors.ErrPetNotAvailable, "pet is not open to adoption requests")
	}

	// 3. Verify the requester account exists
	if _, err := srv.userRepo.FindByID(ctx, input.RequesterID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "requester not found")
		}

		return nil, errors.Wrap(err, "failed to find requester")
	}

	// 4. Persist the pending request, capturing the pet's current owner
	now := time.Now()
	request := &entity.AdoptionRequest{
		ID:                 uuid.New(),
		PetID:              pet.ID,
		RequesterID:        input.RequesterID,
		OwnerID:            pet.OwnerID,
		FullName:           strings.TrimSpace(input.FullName),
		Email:              strings.TrimSpace(input.Email),
		PhoneNumber:        strings.TrimSpace(input.PhoneNumber),
		Address:            strings.TrimSpace(input.Address),
		PreviousExperience: strings.TrimSpace(input.PreviousExperience),
		AdoptionReason:     strings.TrimSpace(input.AdoptionReason),
		Status:             entity.RequestStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create adoption request")
	}

	// 5. Best-effort fan-out; failures never surface to the requester
	message := fmt.Sprintf("已收到 %s 的新領養申請", pet.Name)
	srv.notifier.NotifyUser(ctx, pet.OwnerID, entity.NotificationTypeRequestSubmitted, message)
	srv.notifier.NotifyAdmins(ctx, entity.NotificationTypeRequestSubmitted, message)
	srv.publishEvent(ctx, request, pet.Name, entity.NotificationTypeRequestSubmitted, message)

	return request, nil
}

// Resolve applies a terminal action to a pending request.
func (srv *adoptionService) Resolve(ctx context.Context, requestID uuid.UUID, action usecase.ResolveAction, actor usecase.Actor) (*entity.AdoptionRequest, error) {
	if !action.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown action: %s", action))
	}

	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRequestNotFound, "adoption request not found")
		}

		return nil, errors.Wrap(err, "failed to find adoption request")
	}

	switch action {
	case usecase.ResolveActionAccept:
		return srv.accept(ctx, request, actor)
	case usecase.ResolveActionReject:
		return srv.reject(ctx, request, actor)
	case usecase.ResolveActionCancel:
		return srv.cancel(ctx, request, actor)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown action: %s", action))
	}
}

// accept hands the pet over to the requester and closes every competing
// request. The whole handover happens inside one transaction; a concurrent
// accept on the same pet loses the conditional status update and is retried
// once before being reported as a conflict.
func (srv *adoptionService) accept(ctx context.Context, request *entity.AdoptionRequest, actor usecase.Actor) (*entity.AdoptionRequest, error) {
	if request.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the pet owner may accept a request")
	}

	srv.logger.Info("Accepting adoption request",
		slog.String("requestID", request.ID.String()),
		slog.String("petID", request.PetID.String()))

	var (
		pet     *entity.Pet
		lastErr error
	)
	for attempt := range 2 {
		pet, lastErr = srv.acceptOnce(ctx, request)
		if lastErr == nil {
			break
		}
		if !errors.Is(lastErr, errPetStatusChanged) {
			return nil, lastErr
		}

		srv.logger.Warn("Pet status changed during accept, retrying",
			slog.String("requestID", request.ID.String()),
			slog.Int("attempt", attempt+1))
	}

	if lastErr != nil {
		return nil, errors.Wrap(domainerrors.ErrPetNotAvailable, "pet was taken by a concurrent adoption")
	}

	request.Status = entity.RequestStatusAccepted
	request.UpdatedAt = time.Now()

	message := fmt.Sprintf("您對 %s 的領養申請已被接受", pet.Name)
	srv.notifier.NotifyUser(ctx, request.RequesterID, entity.NotificationTypeRequestAccepted, message)
	srv.notifier.NotifyAdmins(ctx, entity.NotificationTypeRequestAccepted,
		fmt.Sprintf("%s 的領養申請已被接受", pet.Name))
	srv.publishEvent(ctx, request, pet.Name, entity.NotificationTypeRequestAccepted, message)

	return request, nil
}

// acceptOnce runs a single transactional accept attempt.
func (srv *adoptionService) acceptOnce(ctx context.Context, request *entity.AdoptionRequest) (*entity.Pet, error) {
	var pet *entity.Pet

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.AdoptionRequestRepo()
		petRepo := repoFactory.PetRepo()

		// 1. The request must still be pending
		current, err := requestRepo.FindByID(ctx, request.ID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotFound, "adoption request disappeared")
			}

			return errors.Wrap(err, "failed to reload adoption request")
		}
		if !current.Status.CanTransitionTo(entity.RequestStatusAccepted) {
			return errors.Wrap(domainerrors.ErrRequestNotPending, "request already resolved")
		}

		// 2. Hand the pet to the requester, keyed on the pet still being available
		applied, err := petRepo.UpdateStatusIf(ctx, request.PetID,
			entity.AdoptionStatusAvailable, entity.AdoptionStatusAdopted, &request.RequesterID)
		if err != nil {
			return errors.Wrap(err, "failed to update pet status")
		}
		if !applied {
			return errPetStatusChanged
		}

		// 3. Mark the request accepted
		applied, err = requestRepo.UpdateStatusIf(ctx, request.ID,
			entity.RequestStatusPending, entity.RequestStatusAccepted)
		if err != nil {
			return errors.Wrap(err, "failed to update request status")
		}
		if !applied {
			return errors.Wrap(domainerrors.ErrRequestNotPending, "request resolved concurrently")
		}

		// 4. Every other pending request on this pet loses
		rejected, err := requestRepo.RejectOtherPending(ctx, request.PetID, request.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reject competing requests")
		}
		if rejected > 0 {
			srv.logger.Info("Rejected competing requests",
				slog.String("petID", request.PetID.String()),
				slog.Int64("count", rejected))
		}

		pet, err = petRepo.FindByID(ctx, request.PetID)
		if err != nil {
			return errors.Wrap(err, "failed to reload pet")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pet, nil
}

// reject closes a single request without touching the pet.
func (srv *adoptionService) reject(ctx context.Context, request *entity.AdoptionRequest, actor usecase.Actor) (*entity.AdoptionRequest, error) {
	if request.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the pet owner may reject a request")
	}

	applied, err := srv.requestRepo.UpdateStatusIf(ctx, request.ID,
		entity.RequestStatusPending, entity.RequestStatusRejected)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update request status")
	}
	if !applied {
		return nil, errors.Wrap(domainerrors.ErrRequestNotPending, "request already resolved")
	}

	request.Status = entity.RequestStatusRejected
	request.UpdatedAt = time.Now()

	message := "您的領養申請已被拒絕"
	srv.notifier.NotifyUser(ctx, request.RequesterID, entity.NotificationTypeRequestRejected, message)
	srv.publishEvent(ctx, request, "", entity.NotificationTypeRequestRejected, message)

	return request, nil
}

// cancel lets the requester withdraw a still-pending request. The record is
// deleted outright rather than moved to a terminal status.
func (srv *adoptionService) cancel(ctx context.Context, request *entity.AdoptionRequest, actor usecase.Actor) (*entity.AdoptionRequest, error) {
	if request.RequesterID != actor.UserID && !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the requester may cancel a request")
	}

	if request.Status.IsTerminal() {
		return nil, errors.Wrap(domainerrors.ErrRequestNotPending, "request already resolved")
	}

	if err := srv.requestRepo.Delete(ctx, request.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete adoption request")
	}

	message := "您的寵物有一筆領養申請已被撤回"
	srv.notifier.NotifyUser(ctx, request.OwnerID, entity.NotificationTypeRequestDeleted, message)
	srv.publishEvent(ctx, request, "", entity.NotificationTypeRequestDeleted, message)

	return request, nil
}

// Update edits applicant fields on a still-pending request.
func (srv *adoptionService) Update(ctx context.Context, requestID uuid.UUID, input *usecase.UpdateRequestInput, actor usecase.Actor) (*entity.AdoptionRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRequestNotFound, "adoption request not found")
		}

		return nil, errors.Wrap(err, "failed to find adoption request")
	}

	if request.RequesterID != actor.UserID && !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the requester may edit a request")
	}

	if request.Status.IsTerminal() {
		return nil, errors.Wrap(domainerrors.ErrRequestNotPending, "request already resolved")
	}

	if err := applyRequestUpdate(request, input); err != nil {
		return nil, err
	}
	request.UpdatedAt = time.Now()

	if err := srv.requestRepo.Update(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to update adoption request")
	}

	return request, nil
}

// Get retrieves a single request for an involved party.
func (srv *adoptionService) Get(ctx context.Context, requestID uuid.UUID, actor usecase.Actor) (*entity.AdoptionRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRequestNotFound, "adoption request not found")
		}

		return nil, errors.Wrap(err, "failed to find adoption request")
	}

	if request.RequesterID != actor.UserID && request.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a party to this request")
	}

	return request, nil
}

// ListForUser returns all requests where the user is requester or owner.
func (srv *adoptionService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.AdoptionRequest, error) {
	requests, err := srv.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list adoption requests by user")
	}

	return requests, nil
}

// List returns every adoption request on the platform.
func (srv *adoptionService) List(ctx context.Context, actor usecase.Actor) ([]*entity.AdoptionRequest, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list adoption requests")
	}

	return requests, nil
}

// Delete removes a request outright, regardless of its status.
func (srv *adoptionService) Delete(ctx context.Context, requestID uuid.UUID, actor usecase.Actor) error {
	if !actor.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return errors.Wrap(domainerrors.ErrRequestNotFound, "adoption request not found")
		}

		return errors.Wrap(err, "failed to find adoption request")
	}

	if err := srv.requestRepo.Delete(ctx, request.ID); err != nil {
		return errors.Wrap(err, "failed to delete adoption request")
	}

	message := "一筆領養申請已由管理員移除"
	srv.notifier.NotifyUser(ctx, request.RequesterID, entity.NotificationTypeRequestDeleted, message)
	srv.notifier.NotifyUser(ctx, request.OwnerID, entity.NotificationTypeRequestDeleted, message)
	srv.publishEvent(ctx, request, "", entity.NotificationTypeRequestDeleted, message)

	return nil
}

// publishEvent pushes a workflow event to the message queue for async
// consumers. Publish failures are logged and swallowed.
func (srv *adoptionService) publishEvent(ctx context.Context, request *entity.AdoptionRequest, petName, eventType, message string) {
	if srv.publisher == nil {
		return
	}

	event := &service.AdoptionEvent{
		RequestID:   request.ID.String(),
		EventType:   eventType,
		PetID:       request.PetID.String(),
		PetName:     petName,
		RequesterID: request.RequesterID.String(),
		OwnerID:     request.OwnerID.String(),
		Message:     message,
	}

	if err := srv.publisher.PublishAdoptionEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish adoption event",
			slog.String("eventType", eventType),
			slog.String("requestID", request.ID.String()),
			slog.Any("error", err))
	}
}

// validateApplicantFields checks the required applicant fields on submission.
func validateApplicantFields(input *usecase.SubmitRequestInput) error {
	var missing []string
	for field, value := range map[string]string{
		"full_name":       input.FullName,
		"email":           input.Email,
		"phone_number":    input.PhoneNumber,
		"address":         input.Address,
		"adoption_reason": input.AdoptionReason,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// applyRequestUpdate copies the allow-listed fields onto the request. A field
// set to an empty string is rejected rather than silently clearing data.
func applyRequestUpdate(request *entity.AdoptionRequest, input *usecase.UpdateRequestInput) error {
	set := func(dst *string, src *string, field string, required bool) error {
		if src == nil {
			return nil
		}
		value := strings.TrimSpace(*src)
		if required && value == "" {
			return domainerrors.ErrValidationFailed.WithDetails(field + " must not be empty")
		}
		*dst = value

		return nil
	}

	if err := set(&request.FullName, input.FullName, "full_name", true); err != nil {
		return err
	}
	if err := set(&request.Email, input.Email, "email", true); err != nil {
		return err
	}
	if err := set(&request.PhoneNumber, input.PhoneNumber, "phone_number", true); err != nil {
		return err
	}
	if err := set(&request.Address, input.Address, "address", true); err != nil {
		return err
	}
	if err := set(&request.PreviousExperience, input.PreviousExperience, "previous_experience", false); err != nil {
		return err
	}
	if err := set(&request.AdoptionReason, input.AdoptionReason, "adoption_reason", true); err != nil {
		return err
	}

	return nil
}
