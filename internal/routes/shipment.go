package routes

import (
	"github.com/labstack/echo/v4"

	"uyumplast-system/internal/controllers"
	"uyumplast-system/pkg/middleware"
)

func runShipmentRouter(secureGroup *echo.Group, ctrl *controllers.ShipmentController, authMW *middleware.AuthMiddleware) {
	secureGroup.POST("/shipments", ctrl.Schedule, authMW.RequirePermission("shipments:manage"))
	secureGroup.PATCH("/shipments/:id/status", ctrl.UpdateStatus, authMW.RequirePermission("shipments:manage"))
}
