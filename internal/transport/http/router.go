package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/texcare/storefront/internal/handlers"
)

type Deps struct {
	CartHandler         *handlers.CartHandler
	ProductHandler      *handlers.ProductHandler
	ArticleHandler      *handlers.ArticleHandler
	ContactHandler      *handlers.ContactHandler
	AdminHandler        *handlers.AdminHandler
	NotificationHandler *handlers.NotificationHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:sku", d.ProductHandler.GetProduct)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.POST("/items", d.CartHandler.AddItem)
	cart.PATCH("/items/:id", d.CartHandler.UpdateItem)
	cart.DELETE("/items/:id", d.CartHandler.RemoveItem)
	cart.POST("/checkout", d.CartHandler.Checkout)

	v1.GET("/notifications", d.NotificationHandler.List)
	v1.DELETE("/notifications/:id", d.NotificationHandler.Dismiss)

	v1.POST("/contact", d.ContactHandler.Submit)

	articles := v1.Group("/articles")
	articles.GET("", d.ArticleHandler.List)
	articles.GET("/search", d.ArticleHandler.Search)
	articles.GET("/:id", d.ArticleHandler.Get)

	admin := v1.Group("/admin")
	admin.POST("/catalog/refresh", d.AdminHandler.RefreshCatalog)
}
