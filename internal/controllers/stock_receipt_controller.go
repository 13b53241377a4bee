package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/services"
	"uyumplast-system/pkg/utils"
)

type StockReceiptController struct {
	warehouseService services.WarehouseServiceInterface
	logger           *zap.Logger
}

func NewStockReceiptController(warehouseService services.WarehouseServiceInterface, logger *zap.Logger) *StockReceiptController {
	return &StockReceiptController{warehouseService: warehouseService, logger: logger}
}

// ListByOrder - GET /orders/:id/stock-receipts
func (ctrl *StockReceiptController) ListByOrder(c echo.Context) error {
	orderID, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	receipts, err := ctrl.warehouseService.ListByOrder(c.Request().Context(), orderID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, receipts, "Приходы на склад", http.StatusOK)
}

func (ctrl *StockReceiptController) CreateReceipt(c echo.Context) error {
	var receiptData dto.CreateStockReceiptDTO
	if err := c.Bind(&receiptData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&receiptData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	receipt, err := ctrl.warehouseService.CreateReceipt(c.Request().Context(), receiptData)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, receipt, "Приход оформлен", http.StatusCreated)
}
