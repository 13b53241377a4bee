package routes

import (
	"github.com/labstack/echo/v4"

	"uyumplast-system/internal/controllers"
	"uyumplast-system/pkg/middleware"
)

func runOrderRouter(
	secureGroup *echo.Group,
	orderCtrl *controllers.OrderController,
	jobCtrl *controllers.CuttingJobController,
	receiptCtrl *controllers.StockReceiptController,
	shipmentCtrl *controllers.ShipmentController,
	commentCtrl *controllers.OrderCommentController,
	authMW *middleware.AuthMiddleware,
) {
	secureGroup.GET("/orders", orderCtrl.GetOrders, authMW.RequirePermission("orders:view"))
	secureGroup.GET("/orders/:id", orderCtrl.FindOrder, authMW.RequirePermission("orders:view"))
	secureGroup.POST("/orders", orderCtrl.CreateOrder, authMW.RequirePermission("orders:manage"))
	secureGroup.PUT("/orders/:id", orderCtrl.UpdateOrder, authMW.RequirePermission("orders:manage"))
	secureGroup.PATCH("/orders/:id/status", orderCtrl.ChangeStatus, authMW.RequirePermission("orders:manage"))
	secureGroup.DELETE("/orders/:id", orderCtrl.DeleteOrder, authMW.RequirePermission("orders:manage"))

	// Вложенные списки по заказу.
	secureGroup.GET("/orders/:id/cutting-jobs", jobCtrl.ListByOrder, authMW.RequirePermission("production:view"))
	secureGroup.GET("/orders/:id/stock-receipts", receiptCtrl.ListByOrder, authMW.RequirePermission("warehouse:view"))
	secureGroup.GET("/orders/:id/shipments", shipmentCtrl.ListByOrder, authMW.RequirePermission("shipments:view"))
	secureGroup.GET("/orders/:id/comments", commentCtrl.ListByOrder, authMW.RequirePermission("orders:view"))
	secureGroup.POST("/orders/:id/comments", commentCtrl.AddComment, authMW.RequirePermission("orders:view"))
}
