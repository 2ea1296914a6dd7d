package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/texcare/storefront/internal/catalog"
	"github.com/texcare/storefront/internal/hash"
)

type AdminHandler struct {
	Catalog *catalog.Service
	KeyHash string
}

// RefreshCatalog forces a re-sync of the catalog cache from the Admin API.
// Guarded by the operator key; no key hash configured means the endpoint is
// disabled.
func (h *AdminHandler) RefreshCatalog(c echo.Context) error {
	key := c.Request().Header.Get("X-Admin-Key")
	if h.KeyHash == "" || key == "" || !hash.CheckKey(h.KeyHash, key) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin key")
	}

	if err := h.Catalog.Refresh(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "catalog refreshed"})
}
