package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/services"
	"uyumplast-system/pkg/utils"
)

type OrderCommentController struct {
	commentService services.OrderCommentServiceInterface
	logger         *zap.Logger
}

func NewOrderCommentController(commentService services.OrderCommentServiceInterface, logger *zap.Logger) *OrderCommentController {
	return &OrderCommentController{commentService: commentService, logger: logger}
}

// ListByOrder - GET /orders/:id/comments
func (ctrl *OrderCommentController) ListByOrder(c echo.Context) error {
	orderID, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	limit, _ := strconv.ParseUint(c.QueryParam("limit"), 10, 64)
	offset, _ := strconv.ParseUint(c.QueryParam("offset"), 10, 64)

	comments, err := ctrl.commentService.ListByOrder(c.Request().Context(), orderID, limit, offset)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, comments, "Комментарии к заказу", http.StatusOK)
}

// AddComment - POST /orders/:id/comments
func (ctrl *OrderCommentController) AddComment(c echo.Context) error {
	orderID, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var commentData dto.CreateOrderCommentDTO
	if err := c.Bind(&commentData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&commentData); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	comment, err := ctrl.commentService.AddComment(c.Request().Context(), orderID, commentData)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, comment, "Комментарий добавлен", http.StatusCreated)
}
