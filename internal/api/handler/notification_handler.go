package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmaroc/backend/internal/core/ports"
)

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /notifications.
//
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	notifications, err := h.service.ListByRecipientEmail(c.Request().Context(), id.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkAllRead handles POST /notifications/read-all.
//
// @Summary      Mark all of the caller's notifications as read
// @Tags         notifications
// @Security     BearerAuth
// @Success      204
// @Router       /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.service.MarkAllRead(c.Request().Context(), id.Email); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
