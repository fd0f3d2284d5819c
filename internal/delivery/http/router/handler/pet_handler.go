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

// PetHandlerParams holds dependencies for PetHandler, injected by Fx.
type PetHandlerParams struct {
	fx.In

	PetUC  usecase.PetUsecase
	Logger *slog.Logger
}

// PetHandler holds dependencies for pet-related handlers.
type PetHandler struct {
	petUC  usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler.
func NewPetHandler(params PetHandlerParams) *PetHandler {
	return &PetHandler{
		petUC:  params.PetUC,
		logger: params.Logger,
	}
}

// AddPetRequest represents the request body for listing a new pet.
type AddPetRequest struct {
	Name             string   `json:"name" validate:"required"`
	Species          string   `json:"species" validate:"required"`
	Breed            string   `json:"breed" validate:"required"`
	Age              int      `json:"age" validate:"gte=0"`
	Gender           string   `json:"gender" validate:"required"`
	Size             string   `json:"size" validate:"required"`
	Description      string   `json:"description,omitempty"`
	PhotoURL         string   `json:"photo_url" validate:"required"`
	AdditionalPhotos []string `json:"additional_photos,omitempty"`
	Status           string   `json:"status,omitempty"`
}

// UpdatePetRequest represents the editable pet fields.
type UpdatePetRequest struct {
	Name             *string  `json:"name,omitempty"`
	Species          *string  `json:"species,omitempty"`
	Breed            *string  `json:"breed,omitempty"`
	Age              *int     `json:"age,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	Size             *string  `json:"size,omitempty"`
	Description      *string  `json:"description,omitempty"`
	PhotoURL         *string  `json:"photo_url,omitempty"`
	AdditionalPhotos []string `json:"additional_photos,omitempty"`
	Status           *string  `json:"status,omitempty"`
}

// ListPets handles the adoptable-pet listing with optional filters.
func (h *PetHandler) ListPets(c echo.Context) error {
	input := &usecase.ListPetsInput{
		Search:  c.QueryParam("search"),
		Species: c.QueryParam("species"),
		Breed:   c.QueryParam("breed"),
		Age:     c.QueryParam("age"),
		Size:    c.QueryParam("size"),
		Gender:  c.QueryParam("gender"),
		Status:  c.QueryParam("status"),
	}

	// Exclude the caller's own pets from the default view.
	if userID, ok := middleware.GetUserID(c); ok {
		input.CallerID = &userID
	}

	pets, err := h.petUC.ListPets(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pets, "Pets retrieved successfully")
}

// GetPet handles retrieving a single pet by ID.
func (h *PetHandler) GetPet(c echo.Context) error {
	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet ID")
	}

	pet, err := h.petUC.GetPet(c.Request().Context(), petID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet retrieved successfully")
}

// GetMyPets handles retrieving every pet owned by the authenticated user.
func (h *PetHandler) GetMyPets(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pets, err := h.petUC.GetPetsByOwner(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pets, "Pets retrieved successfully")
}

// AddPet handles listing a new pet owned by the authenticated user.
func (h *PetHandler) AddPet(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddPetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pet, err := h.petUC.AddPet(c.Request().Context(), &usecase.AddPetInput{
		Name:             req.Name,
		Species:          req.Species,
		Breed:            req.Breed,
		Age:              req.Age,
		Gender:           req.Gender,
		Size:             req.Size,
		Description:      req.Description,
		PhotoURL:         req.PhotoURL,
		AdditionalPhotos: req.AdditionalPhotos,
		Status:           req.Status,
	}, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pet, "Pet added successfully")
}

// UpdatePet handles edits to a pet's details.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet ID")
	}

	var req UpdatePetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}

	pet, err := h.petUC.UpdatePet(c.Request().Context(), petID, &usecase.UpdatePetInput{
		Name:             req.Name,
		Species:          req.Species,
		Breed:            req.Breed,
		Age:              req.Age,
		Gender:           req.Gender,
		Size:             req.Size,
		Description:      req.Description,
		PhotoURL:         req.PhotoURL,
		AdditionalPhotos: req.AdditionalPhotos,
		Status:           req.Status,
	}, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet updated successfully")
}

// AdoptPet handles the direct adoption of a pet, bypassing the request workflow.
func (h *PetHandler) AdoptPet(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet ID")
	}

	if err := h.petUC.AdoptPet(c.Request().Context(), petID, actor); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Pet adopted"}, "Pet adopted successfully")
}

// DeletePet handles removing a pet and its adoption requests.
func (h *PetHandler) DeletePet(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet ID")
	}

	if err := h.petUC.DeletePet(c.Request().Context(), petID, actor); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Pet deleted"}, "Pet deleted successfully")
}

// ShareQR renders a QR code PNG linking to the pet's listing.
func (h *PetHandler) ShareQR(c echo.Context) error {
	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pet ID")
	}

	png, err := h.petUC.PetShareQR(c.Request().Context(), petID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
