package handler

import (
	"log/slog"
	"net/http"

	"pethub/internal/delivery/http/middleware"
	"pethub/internal/delivery/http/response"
	"pethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdoptionHandlerParams holds dependencies for AdoptionHandler, injected by Fx.
type AdoptionHandlerParams struct {
	fx.In

	AdoptionUC usecase.AdoptionUsecase
	Logger     *slog.Logger
}

// AdoptionHandler holds dependencies for adoption-request handlers.
type AdoptionHandler struct {
	adoptionUC usecase.AdoptionUsecase
	logger     *slog.Logger
}

// NewAdoptionHandler is the constructor for AdoptionHandler.
func NewAdoptionHandler(params AdoptionHandlerParams) *AdoptionHandler {
	return &AdoptionHandler{
		adoptionUC: params.AdoptionUC,
		logger:     params.Logger,
	}
}

// SubmitRequestRequest represents the request body for submitting an adoption request.
type SubmitRequestRequest struct {
	PetID              uuid.UUID `json:"pet_id" validate:"required"`
	FullName           string    `json:"full_name" validate:"required"`
	Email              string    `json:"email" validate:"required,email"`
	PhoneNumber        string    `json:"phone_number" validate:"required"`
	Address            string    `json:"address" validate:"required"`
	PreviousExperience string    `json:"previous_experience,omitempty"`
	AdoptionReason     string    `json:"adoption_reason" validate:"required"`
}

// ResolveRequestRequest carries the decision applied to a pending request.
type ResolveRequestRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject cancel"`
}

// UpdateRequestRequest represents the editable applicant fields.
type UpdateRequestRequest struct {
	FullName           *string `json:"full_name,omitempty"`
	Email              *string `json:"email,omitempty"`
	PhoneNumber        *string `json:"phone_number,omitempty"`
	Address            *string `json:"address,omitempty"`
	PreviousExperience *string `json:"previous_experience,omitempty"`
	AdoptionReason     *string `json:"adoption_reason,omitempty"`
}

// Submit handles creating a new adoption request for an available pet.
func (h *AdoptionHandler) Submit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubmitRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adoption request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	request, err := h.adoptionUC.Submit(c.Request().Context(), &usecase.SubmitRequestInput{
		PetID:              req.PetID,
		RequesterID:        userID,
		FullName:           req.FullName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		Address:            req.Address,
		PreviousExperience: req.PreviousExperience,
		AdoptionReason:     req.AdoptionReason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Adoption request submitted successfully")
}

// Resolve handles accepting, rejecting or cancelling a pending request.
func (h *AdoptionHandler) Resolve(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	var req ResolveRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolution input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	request, err := h.adoptionUC.Resolve(c.Request().Context(), requestID, usecase.ResolveAction(req.Action), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Adoption request resolved successfully")
}

// Update handles edits to a still-pending request's applicant fields.
func (h *AdoptionHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	var req UpdateRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	request, err := h.adoptionUC.Update(c.Request().Context(), requestID, &usecase.UpdateRequestInput{
		FullName:           req.FullName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		Address:            req.Address,
		PreviousExperience: req.PreviousExperience,
		AdoptionReason:     req.AdoptionReason,
	}, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Adoption request updated successfully")
}

// Get handles retrieving a single adoption request.
func (h *AdoptionHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	request, err := h.adoptionUC.Get(c.Request().Context(), requestID, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Adoption request retrieved successfully")
}

// ListMine handles listing requests where the user is requester or pet owner.
func (h *AdoptionHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.adoptionUC.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Adoption requests retrieved successfully")
}

// List handles listing every adoption request on the platform.
func (h *AdoptionHandler) List(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.adoptionUC.List(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Adoption requests retrieved successfully")
}

// Delete handles removing an adoption request outright.
func (h *AdoptionHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.adoptionUC.Delete(c.Request().Context(), requestID, actor); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Request deleted"}, "Adoption request deleted successfully")
}
