package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"uyumplast-system/internal/services"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/utils"
)

type AuditController struct {
	auditService services.AuditServiceInterface
	logger       *zap.Logger
}

func NewAuditController(auditService services.AuditServiceInterface, logger *zap.Logger) *AuditController {
	return &AuditController{auditService: auditService, logger: logger}
}

// RecordTimeline - GET /audit/:table/:recordID
func (ctrl *AuditController) RecordTimeline(c echo.Context) error {
	tableName := c.Param("table")
	recordID := c.Param("recordID")
	if tableName == "" || recordID == "" {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	limit, _ := strconv.ParseUint(c.QueryParam("limit"), 10, 64)

	timeline, err := ctrl.auditService.RecordTimeline(c.Request().Context(), tableName, recordID, limit)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, timeline, "История изменений", http.StatusOK)
}
