package server

import (
	mw "github.com/Wasif581-create/Jdbanks/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func New(logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(mw.RequestLogger(logger))

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
