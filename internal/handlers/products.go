package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/texcare/storefront/internal/catalog"
	"github.com/texcare/storefront/internal/util"
)

type ProductHandler struct {
	Catalog *catalog.Service
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	products := h.Catalog.List(c.Request().Context())
	total := len(products)

	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	items := products[offset:end]

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + limit - 1) / limit,
			"has_prev":    page > 1,
			"has_next":    end < total,
		},
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	sku := c.Param("sku")
	product, ok := h.Catalog.BySKU(c.Request().Context(), sku)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}
