package routes

import (
	"github.com/labstack/echo/v4"

	"uyumplast-system/internal/controllers"
	"uyumplast-system/pkg/middleware"
)

func runVirtualTableRouter(secureGroup *echo.Group, ctrl *controllers.VirtualTableController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/virtual/:table", ctrl.List, authMW.RequirePermission("virtual:manage"))
	secureGroup.GET("/virtual/:table/:recordID", ctrl.Get, authMW.RequirePermission("virtual:manage"))
	secureGroup.POST("/virtual/:table", ctrl.Insert, authMW.RequirePermission("virtual:manage"))
	secureGroup.PATCH("/virtual/:table/:recordID", ctrl.Update, authMW.RequirePermission("virtual:manage"))
	secureGroup.DELETE("/virtual/:table/:recordID", ctrl.Delete, authMW.RequirePermission("virtual:manage"))
}
