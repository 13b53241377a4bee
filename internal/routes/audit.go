package routes

import (
	"github.com/labstack/echo/v4"

	"uyumplast-system/internal/controllers"
	"uyumplast-system/pkg/middleware"
)

func runAuditRouter(secureGroup *echo.Group, ctrl *controllers.AuditController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/audit/:table/:recordID", ctrl.RecordTimeline, authMW.RequirePermission("audit:view"))
}
