package routes

import (
	"github.com/labstack/echo/v4"

	"uyumplast-system/internal/controllers"
	"uyumplast-system/pkg/middleware"
)

func runRoleRouter(secureGroup *echo.Group, ctrl *controllers.RoleController, authMW *middleware.AuthMiddleware) {
	secureGroup.GET("/roles", ctrl.ListRoles, authMW.RequirePermission("rbac:view"))
	secureGroup.GET("/permissions", ctrl.ListPermissions, authMW.RequirePermission("rbac:view"))
}
