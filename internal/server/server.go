package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"storefront/internal/middleware"
)

// New はミドルウェアとルートを組んだechoインスタンスを返す
func New(feURL string, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	if feURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{feURL},
			AllowCredentials: true,
		}))
	}
	e.Use(middleware.ClientToken())

	RegisterRoutes(e, h)
	return e
}

func Start(addr string, feURL string, h Handlers) error {
	return New(feURL, h).Start(addr)
}
