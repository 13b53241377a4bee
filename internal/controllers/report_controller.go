package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"uyumplast-system/internal/services"
	"uyumplast-system/pkg/utils"
)

type ReportController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewReportController(orderService services.OrderServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{orderService: orderService, logger: logger}
}

// ExportOrders - GET /reports/orders. Выгружает заказы с готовностью в xlsx,
// фильтры те же, что у списка заказов.
func (ctrl *ReportController) ExportOrders(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())
	filter.WithPagination = false

	orders, _, err := ctrl.orderService.GetOrders(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			ctrl.logger.Warn("Не удалось закрыть xlsx-файл", zap.Error(err))
		}
	}()

	const sheet = "Заказы"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Клиент", "Продукция", "Кол-во", "Ед.", "Источник",
		"Склад, кг", "Производство, кг", "Готовность, %", "Готов", "Статус", "Создан"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, order := range orders {
		ready := "нет"
		if order.Ready.IsReady {
			ready = "да"
		}
		values := []interface{}{
			order.ID, order.CustomerName, order.ProductName, order.Quantity, order.Unit,
			order.SourceType, order.StockReadyKg, order.ProductionReadyKg,
			fmt.Sprintf("%.1f", order.Ready.ReadyPercent), ready, order.Status, order.CreatedAt,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	if err := f.Write(c.Response().Writer); err != nil {
		ctrl.logger.Error("Ошибка записи xlsx-отчёта", zap.Error(err))
		return err
	}
	return nil
}
