package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/handler"
)

type Handlers struct {
	Product  *handler.ProductHandler
	Favorite *handler.FavoriteHandler
	Cart     *handler.CartHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Product.RegisterRoutes(e)
	h.Favorite.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
}
