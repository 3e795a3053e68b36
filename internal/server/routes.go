package server

import (
	"minishop/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health     *handler.HealthHandler
	Users      *handler.UserHandler
	Categories *handler.CategoryHandler
	Products   *handler.ProductHandler
	Orders     *handler.OrderHandler
	Reports    *handler.ReportHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Health.RegisterRoutes(e)
	h.Users.RegisterRoutes(e)
	h.Categories.RegisterRoutes(e)
	h.Products.RegisterRoutes(e)
	h.Orders.RegisterRoutes(e)
	h.Reports.RegisterRoutes(e)
}
