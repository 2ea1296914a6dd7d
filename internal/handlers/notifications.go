package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/texcare/storefront/internal/models"
	"github.com/texcare/storefront/internal/notify"
	"github.com/texcare/storefront/internal/session"
)

// NotificationHandler serves the caller's own notification queue. The owning
// session comes from the cart session cookie; a request without one has no
// notifications.
type NotificationHandler struct {
	Notifier *notify.Notifier
	Sessions *session.Manager
}

func (h *NotificationHandler) List(c echo.Context) error {
	sess := h.Sessions.Read(c)
	if sess.ID == "" {
		return c.JSON(http.StatusOK, []models.Notification{})
	}
	return c.JSON(http.StatusOK, h.Notifier.List(sess.ID))
}

func (h *NotificationHandler) Dismiss(c echo.Context) error {
	sess := h.Sessions.Read(c)
	if sess.ID == "" || !h.Notifier.Dismiss(sess.ID, c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}
	return c.NoContent(http.StatusNoContent)
}
