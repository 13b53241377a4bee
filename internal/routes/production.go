package routes

import (
	"github.com/labstack/echo/v4"

	"uyumplast-system/internal/controllers"
	"uyumplast-system/pkg/middleware"
)

func runProductionRouter(secureGroup *echo.Group, ctrl *controllers.CuttingJobController, authMW *middleware.AuthMiddleware) {
	secureGroup.POST("/cutting-jobs", ctrl.CreateJob, authMW.RequirePermission("production:manage"))
	secureGroup.POST("/cutting-jobs/:id/production", ctrl.RecordProduction, authMW.RequirePermission("production:manage"))
	secureGroup.POST("/cutting-jobs/:id/cancel", ctrl.CancelJob, authMW.RequirePermission("production:manage"))
}
