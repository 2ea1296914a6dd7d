package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/texcare/storefront/internal/cart"
	"github.com/texcare/storefront/internal/events"
	"github.com/texcare/storefront/internal/session"
)

type CartHandler struct {
	Cart     *cart.Service
	Sessions *session.Manager
	Producer *events.Producer
}

type addItemRequest struct {
	SKU       string `json:"sku"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// readSession loads the cart session and mints a session id for first-time
// visitors, so notifications pushed during the request have an owner.
func (h *CartHandler) readSession(c echo.Context) session.Session {
	sess := h.Sessions.Read(c)
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	return sess
}

func (h *CartHandler) GetCart(c echo.Context) error {
	sess := h.readSession(c)

	current, sess, err := h.Cart.Refresh(c.Request().Context(), sess)
	if err != nil {
		h.saveSession(c, sess)
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	h.saveSession(c, sess)
	return c.JSON(http.StatusOK, current)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SKU == "" && req.VariantID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sku or variant_id is required")
	}

	ctx := c.Request().Context()
	sess := h.readSession(c)

	var err error
	var current any
	if req.VariantID != "" {
		current, sess, err = h.Cart.AddByVariant(ctx, sess, req.VariantID, req.SKU, req.Quantity)
	} else {
		current, sess, err = h.Cart.AddBySKU(ctx, sess, req.SKU, req.Quantity)
	}
	// The session is written even on failure: error notifications belong to
	// the minted session id and must be retrievable afterwards.
	h.saveSession(c, sess)
	if errors.Is(err, cart.ErrVariantNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	h.publish(c, map[string]any{
		"type":     "cart_item_added",
		"cartID":   sess.CartID,
		"sku":      req.SKU,
		"variant":  req.VariantID,
		"quantity": req.Quantity,
	})
	return c.JSON(http.StatusOK, current)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	lineID := c.Param("id")
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := h.readSession(c)
	current, sess, err := h.Cart.UpdateQuantity(c.Request().Context(), sess, lineID, req.Quantity)
	h.saveSession(c, sess)
	if errors.Is(err, cart.ErrNoCart) {
		return echo.NewHTTPError(http.StatusNotFound, "no cart")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	h.publish(c, map[string]any{
		"type":     "cart_item_updated",
		"cartID":   sess.CartID,
		"lineID":   lineID,
		"quantity": req.Quantity,
	})
	return c.JSON(http.StatusOK, current)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	lineID := c.Param("id")

	sess := h.readSession(c)
	current, sess, err := h.Cart.RemoveLine(c.Request().Context(), sess, lineID)
	h.saveSession(c, sess)
	if errors.Is(err, cart.ErrNoCart) {
		return echo.NewHTTPError(http.StatusNotFound, "no cart")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	h.publish(c, map[string]any{
		"type":   "cart_item_removed",
		"cartID": sess.CartID,
		"lineID": lineID,
	})
	return c.JSON(http.StatusOK, current)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	sess := h.readSession(c)
	current, sess, err := h.Cart.Clear(c.Request().Context(), sess)
	h.saveSession(c, sess)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	h.publish(c, map[string]any{
		"type":   "cart_cleared",
		"cartID": sess.CartID,
	})
	return c.JSON(http.StatusOK, current)
}

func (h *CartHandler) Checkout(c echo.Context) error {
	sess := h.readSession(c)
	url, sess, err := h.Cart.Checkout(c.Request().Context(), sess)
	h.saveSession(c, sess)
	if errors.Is(err, cart.ErrEmptyCart) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "cart is empty"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	h.publish(c, map[string]any{
		"type":   "checkout_started",
		"cartID": sess.CartID,
	})
	return c.JSON(http.StatusOK, echo.Map{"checkout_url": url})
}

func (h *CartHandler) saveSession(c echo.Context, sess session.Session) {
	if sess.IsZero() {
		h.Sessions.Clear(c)
		return
	}
	if err := h.Sessions.Write(c, sess); err != nil {
		c.Logger().Errorf("session write error: %v", err)
	}
}

func (h *CartHandler) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	key, _ := event["cartID"].(string)
	if err := h.Producer.PublishEvent(ctx, "cart_events", key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
