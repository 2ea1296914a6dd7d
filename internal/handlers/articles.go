package handlers

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/texcare/storefront/internal/content"
	"github.com/texcare/storefront/internal/util"
)

type ArticleHandler struct {
	Store *content.Store
	ES    *elasticsearch.Client
	Index string
}

func (h *ArticleHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.List())
}

func (h *ArticleHandler) Get(c echo.Context) error {
	article, ok := h.Store.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "article not found")
	}
	return c.JSON(http.StatusOK, article)
}

// Search uses the index when available and falls back to the in-memory
// filter, so the endpoint works without Elasticsearch.
func (h *ArticleHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query error")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	if h.ES != nil {
		total, articles, err := content.Search(c.Request().Context(), h.ES, h.Index, q, from, size)
		if err == nil {
			return c.JSON(http.StatusOK, echo.Map{"total": total, "articles": articles})
		}
		c.Logger().Warnf("es search failed, using in-memory filter: %v", err)
	}

	articles := h.Store.Filter(q)
	return c.JSON(http.StatusOK, echo.Map{"total": len(articles), "articles": articles})
}
