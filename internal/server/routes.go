package server

import (
	"github.com/Wasif581-create/Jdbanks/internal/config"
	"github.com/Wasif581-create/Jdbanks/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	checkoutH *handler.CheckoutHandler,
	authH *handler.AuthHandler,
	adminH *handler.AdminProductHandler,
) {
	productH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	checkoutH.RegisterRoutes(e)
	authH.RegisterRoutes(e)
	adminH.RegisterRoutes(e, cfg)
}
