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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for platform moderation handlers.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// UpdateUserRoleRequest carries the new role for a user.
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=individual shelter admin"`
}

// ListUsers handles listing every registered user.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, result, "Users retrieved successfully")
}

// UpdateUserRole handles changing a user's role.
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.adminUC.UpdateUserRole(c.Request().Context(), userID, req.Role, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User role updated successfully")
}

// DeleteUser handles removing a user and cascading their pets and requests.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), userID, actor); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted"}, "User deleted successfully")
}

// GetPlatformStats handles the admin dashboard statistics request.
func (h *AdminHandler) GetPlatformStats(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.adminUC.GetPlatformStats(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Platform statistics retrieved successfully")
}
