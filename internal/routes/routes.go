package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"uyumplast-system/internal/controllers"
	"uyumplast-system/internal/repositories"
	"uyumplast-system/internal/services"
	"uyumplast-system/internal/virtualtable"
	"uyumplast-system/pkg/config"
	"uyumplast-system/pkg/eventbus"
	"uyumplast-system/pkg/middleware"
	"uyumplast-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	jwtSvc service.JWTService,
	authPermissionService services.AuthPermissionServiceInterface,
	bus *eventbus.Bus,
	cfg *config.Config,
	logger *zap.Logger,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, authPermissionService, logger)

	// --- РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn)
	orderRepo := repositories.NewOrderRepository(dbConn)
	cuttingJobRepo := repositories.NewCuttingJobRepository(dbConn)
	stockReceiptRepo := repositories.NewStockReceiptRepository(dbConn)
	shipmentRepo := repositories.NewShipmentRepository(dbConn)
	commentRepo := repositories.NewOrderCommentRepository(dbConn)
	auditRepo := repositories.NewAuditLogRepository(dbConn)
	roleRepo := repositories.NewRoleRepository(dbConn)
	permissionRepo := repositories.NewPermissionRepository(dbConn)

	// --- СЕРВИСЫ ---
	vstore := virtualtable.NewStore(auditRepo, cfg.Audit.ReplayLimit, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	orderService := services.NewOrderService(orderRepo, cuttingJobRepo, stockReceiptRepo, auditRepo, userRepo, bus, logger)
	productionService := services.NewProductionService(cuttingJobRepo, orderService, logger)
	warehouseService := services.NewWarehouseService(stockReceiptRepo, orderService, logger)
	shipmentService := services.NewShipmentService(shipmentRepo, orderService, vstore, logger)
	commentService := services.NewOrderCommentService(commentRepo, orderService, bus, logger)
	auditService := services.NewAuditService(auditRepo, logger)
	roleService := services.NewRoleService(roleRepo, permissionRepo, logger)

	// --- КОНТРОЛЛЕРЫ ---
	authController := controllers.NewAuthController(authService, logger)
	orderController := controllers.NewOrderController(orderService, logger)
	cuttingJobController := controllers.NewCuttingJobController(productionService, logger)
	stockReceiptController := controllers.NewStockReceiptController(warehouseService, logger)
	shipmentController := controllers.NewShipmentController(shipmentService, logger)
	commentController := controllers.NewOrderCommentController(commentService, logger)
	auditController := controllers.NewAuditController(auditService, logger)
	virtualController := controllers.NewVirtualTableController(vstore, logger)
	reportController := controllers.NewReportController(orderService, logger)
	roleController := controllers.NewRoleController(roleService, logger)

	// --- РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController)
	runOrderRouter(secureGroup, orderController, cuttingJobController, stockReceiptController, shipmentController, commentController, authMW)
	runProductionRouter(secureGroup, cuttingJobController, authMW)
	runWarehouseRouter(secureGroup, stockReceiptController, authMW)
	runShipmentRouter(secureGroup, shipmentController, authMW)
	runAuditRouter(secureGroup, auditController, authMW)
	runVirtualTableRouter(secureGroup, virtualController, authMW)
	runReportRouter(secureGroup, reportController, authMW)
	runRoleRouter(secureGroup, roleController, authMW)
}
