package routes

import (
	"github.com/labstack/echo/v4"

	"uyumplast-system/internal/controllers"
	"uyumplast-system/pkg/middleware"
)

func runWarehouseRouter(secureGroup *echo.Group, ctrl *controllers.StockReceiptController, authMW *middleware.AuthMiddleware) {
	secureGroup.POST("/stock-receipts", ctrl.CreateReceipt, authMW.RequirePermission("warehouse:manage"))
}
