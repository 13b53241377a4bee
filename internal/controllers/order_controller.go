package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/services"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewOrderController(orderService services.OrderServiceInterface, logger *zap.Logger) *OrderController {
	return &OrderController{orderService: orderService, logger: logger}
}

func (ctrl *OrderController) GetOrders(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	orders, total, err := ctrl.orderService.GetOrders(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, orders, "Список заказов", http.StatusOK, total)
}

func (ctrl *OrderController) FindOrder(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	order, err := ctrl.orderService.FindOrder(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, order, "Заказ", http.StatusOK)
}

func (ctrl *OrderController) CreateOrder(c echo.Context) error {
	var orderData dto.CreateOrderDTO
	if err := c.Bind(&orderData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&orderData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	order, err := ctrl.orderService.CreateOrder(c.Request().Context(), orderData)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, order, "Заказ создан", http.StatusCreated)
}

func (ctrl *OrderController) UpdateOrder(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var orderData dto.UpdateOrderDTO
	if err := c.Bind(&orderData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&orderData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	order, err := ctrl.orderService.UpdateOrder(c.Request().Context(), id, orderData)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, order, "Заказ обновлён", http.StatusOK)
}

func (ctrl *OrderController) ChangeStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var statusData dto.ChangeOrderStatusDTO
	if err := c.Bind(&statusData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&statusData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	order, err := ctrl.orderService.ChangeStatus(c.Request().Context(), id, statusData)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, order, "Статус заказа изменён", http.StatusOK)
}

func (ctrl *OrderController) DeleteOrder(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.orderService.DeleteOrder(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Заказ удалён", http.StatusOK)
}

// parseIDParam читает числовой :id из пути.
func parseIDParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrBadRequest
	}
	return id, nil
}
