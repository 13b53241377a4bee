package routes

import (
	"github.com/labstack/echo/v4"

	"uyumplast-system/internal/controllers"
	"uyumplast-system/pkg/middleware"
)

func runReportRouter(secureGroup *echo.Group, ctrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/reports/orders", ctrl.ExportOrders, authMW.RequirePermission("reports:view"))
}
