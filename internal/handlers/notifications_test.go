package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/texcare/storefront/internal/handlers"
	"github.com/texcare/storefront/internal/models"
	"github.com/texcare/storefront/internal/notify"
	"github.com/texcare/storefront/internal/session"
)

func sessionCookie(t *testing.T, m *session.Manager, sess session.Session) *http.Cookie {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, m.Write(c, sess))
	return rec.Result().Cookies()[0]
}

func listNotifications(t *testing.T, h *handlers.NotificationHandler, cookie *http.Cookie) []models.Notification {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(req, rec)))

	var items []models.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	return items
}

func TestNotificationsScopedToSession(t *testing.T) {
	m := session.NewManager([]byte("test-secret"))
	n := notify.New(time.Minute)
	h := &handlers.NotificationHandler{Notifier: n, Sessions: m}

	itemA := n.Push("sid-a", notify.SeveritySuccess, "TC-HOME-500", 2, "added to cart")
	n.Push("sid-b", notify.SeverityError, "TC-PRO-5L", 1, "could not add to cart")

	cookieA := sessionCookie(t, m, session.Session{ID: "sid-a"})

	items := listNotifications(t, h, cookieA)
	require.Len(t, items, 1)
	require.Equal(t, itemA.ID, items[0].ID)
}

func TestNotificationsWithoutSessionAreEmpty(t *testing.T) {
	m := session.NewManager([]byte("test-secret"))
	n := notify.New(time.Minute)
	h := &handlers.NotificationHandler{Notifier: n, Sessions: m}

	n.Push("sid-a", notify.SeveritySuccess, "TC-HOME-500", 2, "added to cart")

	require.Empty(t, listNotifications(t, h, nil))
}

func TestDismissRequiresOwningSession(t *testing.T) {
	m := session.NewManager([]byte("test-secret"))
	n := notify.New(time.Minute)
	h := &handlers.NotificationHandler{Notifier: n, Sessions: m}

	itemB := n.Push("sid-b", notify.SeverityError, "TC-PRO-5L", 1, "could not add to cart")

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/notifications/"+itemB.ID, nil)
	req.AddCookie(sessionCookie(t, m, session.Session{ID: "sid-a"}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(itemB.ID)

	err := h.Dismiss(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.Code)

	// The entry survives for its owner.
	require.Len(t, n.List("sid-b"), 1)
}
