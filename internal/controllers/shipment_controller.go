package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/services"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/utils"
)

type ShipmentController struct {
	shipmentService services.ShipmentServiceInterface
	logger          *zap.Logger
}

func NewShipmentController(shipmentService services.ShipmentServiceInterface, logger *zap.Logger) *ShipmentController {
	return &ShipmentController{shipmentService: shipmentService, logger: logger}
}

// ListByOrder - GET /orders/:id/shipments
func (ctrl *ShipmentController) ListByOrder(c echo.Context) error {
	orderID, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	shipments, err := ctrl.shipmentService.ListByOrder(c.Request().Context(), orderID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, shipments, "Отгрузки", http.StatusOK)
}

func (ctrl *ShipmentController) Schedule(c echo.Context) error {
	var shipmentData dto.CreateShipmentDTO
	if err := c.Bind(&shipmentData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&shipmentData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	shipment, err := ctrl.shipmentService.Schedule(c.Request().Context(), shipmentData)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, shipment, "Отгрузка запланирована", http.StatusCreated)
}

// UpdateStatus - PATCH /shipments/:id/status. id строковый: числовой для
// реальной таблицы, uuid для виртуальной.
func (ctrl *ShipmentController) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	var statusData dto.UpdateShipmentStatusDTO
	if err := c.Bind(&statusData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&statusData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	shipment, err := ctrl.shipmentService.UpdateStatus(c.Request().Context(), id, statusData)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, shipment, "Статус отгрузки изменён", http.StatusOK)
}
