package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/services"
	"uyumplast-system/pkg/utils"
)

type CuttingJobController struct {
	productionService services.ProductionServiceInterface
	logger            *zap.Logger
}

func NewCuttingJobController(productionService services.ProductionServiceInterface, logger *zap.Logger) *CuttingJobController {
	return &CuttingJobController{productionService: productionService, logger: logger}
}

// ListByOrder - GET /orders/:id/cutting-jobs
func (ctrl *CuttingJobController) ListByOrder(c echo.Context) error {
	orderID, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	jobs, err := ctrl.productionService.ListByOrder(c.Request().Context(), orderID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, jobs, "Задания на резку", http.StatusOK)
}

func (ctrl *CuttingJobController) CreateJob(c echo.Context) error {
	var jobData dto.CreateCuttingJobDTO
	if err := c.Bind(&jobData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&jobData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	job, err := ctrl.productionService.CreateJob(c.Request().Context(), jobData)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, job, "Задание создано", http.StatusCreated)
}

// RecordProduction - POST /cutting-jobs/:id/production
func (ctrl *CuttingJobController) RecordProduction(c echo.Context) error {
	jobID, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var data dto.RecordProductionDTO
	if err := c.Bind(&data); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&data); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	job, err := ctrl.productionService.RecordProduction(c.Request().Context(), jobID, data)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, job, "Выработка учтена", http.StatusOK)
}

func (ctrl *CuttingJobController) CancelJob(c echo.Context) error {
	jobID, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	job, err := ctrl.productionService.CancelJob(c.Request().Context(), jobID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, job, "Задание отменено", http.StatusOK)
}
