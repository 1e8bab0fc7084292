package server

import (
	"kiosk/internal/handler"
	"kiosk/internal/middleware"
	repo "kiosk/internal/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func Start(
	addr string,
	logger *zap.Logger,
	gateway repo.BackendGateway,
	catalogH *handler.CatalogHandler,
	cartH *handler.CartHandler,
	txH *handler.TransactionHandler,
	adminH *handler.AdminHandler,
	userH *handler.UserHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Session())

	catalogH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	txH.RegisterRoutes(e)
	adminH.RegisterRoutes(e, gateway)
	userH.RegisterRoutes(e)

	return e.Start(addr)
}
