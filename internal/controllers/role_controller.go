package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"uyumplast-system/internal/services"
	"uyumplast-system/pkg/utils"
)

type RoleController struct {
	roleService services.RoleServiceInterface
	logger      *zap.Logger
}

func NewRoleController(roleService services.RoleServiceInterface, logger *zap.Logger) *RoleController {
	return &RoleController{roleService: roleService, logger: logger}
}

// ListRoles - GET /roles
func (ctrl *RoleController) ListRoles(c echo.Context) error {
	roles, err := ctrl.roleService.ListRoles(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, roles, "Список ролей", http.StatusOK)
}

// ListPermissions - GET /permissions
func (ctrl *RoleController) ListPermissions(c echo.Context) error {
	permissions, err := ctrl.roleService.ListPermissions(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, permissions, "Список привилегий", http.StatusOK)
}
