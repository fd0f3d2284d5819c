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

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		uc:     params.NotificationUC,
		logger: params.Logger,
	}
}

// ListMine handles retrieving all notifications for the authenticated user.
func (h *NotificationHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notifications, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// ListAdminChannel handles retrieving the admin notification channel.
func (h *NotificationHandler) ListAdminChannel(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notifications, err := h.uc.ListAdminChannel(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// MarkRead handles flagging one of the caller's notifications as seen.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), notificationID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"}, "Notification marked as read")
}
