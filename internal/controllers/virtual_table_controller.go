package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"uyumplast-system/internal/virtualtable"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/utils"
)

// Таблицы, которые разрешено обслуживать поверх журнала аудита. Произвольное
// имя из URL сюда не попадает.
var allowedVirtualTables = map[string]bool{
	"shipments":         true,
	"order_attachments": true,
	"price_quotes":      true,
}

// VirtualTableController - универсальный CRUD по виртуальным таблицам.
// Данные живут только в журнале аудита и пересобираются на каждый запрос.
type VirtualTableController struct {
	store  *virtualtable.Store
	logger *zap.Logger
}

func NewVirtualTableController(store *virtualtable.Store, logger *zap.Logger) *VirtualTableController {
	return &VirtualTableController{store: store, logger: logger}
}

func (ctrl *VirtualTableController) tableParam(c echo.Context) (string, error) {
	tableName := c.Param("table")
	if !allowedVirtualTables[tableName] {
		return "", apperrors.ErrTableNotAllowed
	}
	return tableName, nil
}

// List - GET /virtual/:table. Query-параметры вида filter[field]=value
// превращаются в фильтр равенства.
func (ctrl *VirtualTableController) List(c echo.Context) error {
	tableName, err := ctrl.tableParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	filterReq := utils.ParseFilterFromQuery(c.Request().URL.Query())

	// limit ограничивает чтение журнала, 0 - лимит стора.
	limit, _ := strconv.ParseUint(c.QueryParam("limit"), 10, 64)

	rows, err := ctrl.store.List(c.Request().Context(), tableName, filterReq.Filter, limit)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, rows, "Записи виртуальной таблицы", http.StatusOK)
}

// Get - GET /virtual/:table/:recordID
func (ctrl *VirtualTableController) Get(c echo.Context) error {
	tableName, err := ctrl.tableParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	row, err := ctrl.store.Get(c.Request().Context(), tableName, c.Param("recordID"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, row, "Запись виртуальной таблицы", http.StatusOK)
}

// Insert - POST /virtual/:table
func (ctrl *VirtualTableController) Insert(c echo.Context) error {
	tableName, err := ctrl.tableParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var row virtualtable.VirtualRow
	if err := c.Bind(&row); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	stored, err := ctrl.store.Insert(c.Request().Context(), tableName, userID, row)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, stored, "Запись создана", http.StatusCreated)
}

// Update - PATCH /virtual/:table/:recordID
func (ctrl *VirtualTableController) Update(c echo.Context) error {
	tableName, err := ctrl.tableParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var patch virtualtable.VirtualRow
	if err := c.Bind(&patch); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}

	updated, err := ctrl.store.Update(c.Request().Context(), tableName, userID, c.Param("recordID"), patch)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, updated, "Запись обновлена", http.StatusOK)
}

// Delete - DELETE /virtual/:table/:recordID
func (ctrl *VirtualTableController) Delete(c echo.Context) error {
	tableName, err := ctrl.tableParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	deleted, err := ctrl.store.Delete(c.Request().Context(), tableName, userID, c.Param("recordID"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, deleted, "Запись удалена", http.StatusOK)
}
