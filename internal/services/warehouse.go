package services

import (
	"context"

	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/entities"
	"uyumplast-system/internal/repositories"
	"uyumplast-system/pkg/constants"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/utils"
)

type WarehouseServiceInterface interface {
	ListByOrder(ctx context.Context, orderID uint64) ([]dto.StockReceiptResponseDTO, error)
	CreateReceipt(ctx context.Context, receiptData dto.CreateStockReceiptDTO) (*dto.StockReceiptResponseDTO, error)
}

// WarehouseService - приходы материала на склад. Каждый приход добавляет
// килограммы в готовность заказа.
type WarehouseService struct {
	stockReceiptRepo repositories.StockReceiptRepositoryInterface
	orderService     OrderServiceInterface
	logger           *zap.Logger
}

func NewWarehouseService(
	stockReceiptRepo repositories.StockReceiptRepositoryInterface,
	orderService OrderServiceInterface,
	logger *zap.Logger,
) WarehouseServiceInterface {
	return &WarehouseService{
		stockReceiptRepo: stockReceiptRepo,
		orderService:     orderService,
		logger:           logger,
	}
}

func (s *WarehouseService) ListByOrder(ctx context.Context, orderID uint64) ([]dto.StockReceiptResponseDTO, error) {
	receipts, err := s.stockReceiptRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.StockReceiptResponseDTO, 0, len(receipts))
	for i := range receipts {
		result = append(result, receiptToDTO(&receipts[i]))
	}
	return result, nil
}

func (s *WarehouseService) CreateReceipt(ctx context.Context, receiptData dto.CreateStockReceiptDTO) (*dto.StockReceiptResponseDTO, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orderService.FindOrder(ctx, receiptData.OrderID)
	if err != nil {
		return nil, err
	}
	if constants.IsTerminalStatus(order.Status) {
		return nil, apperrors.NewInvalidInputError(
			"заказ %d в статусе %q, приход невозможен", order.ID, order.Status)
	}

	receipt := &entities.StockReceipt{
		OrderID:   receiptData.OrderID,
		Warehouse: receiptData.Warehouse,
		Kg:        receiptData.Kg,
		Note:      receiptData.Note,
		UserID:    actorID,
	}

	newID, err := s.stockReceiptRepo.Create(ctx, receipt)
	if err != nil {
		s.logger.Error("Ошибка создания прихода", zap.Error(err))
		return nil, err
	}
	receipt.ID = newID

	if err := s.orderService.RecomputeReadiness(ctx, receiptData.OrderID, actorID); err != nil {
		return nil, err
	}

	s.logger.Info("Приход на склад оформлен",
		zap.Uint64("receiptID", newID),
		zap.Uint64("orderID", receiptData.OrderID),
		zap.Float64("kg", receiptData.Kg),
	)

	resp := receiptToDTO(receipt)
	return &resp, nil
}

func receiptToDTO(rec *entities.StockReceipt) dto.StockReceiptResponseDTO {
	resp := dto.StockReceiptResponseDTO{
		ID:        rec.ID,
		OrderID:   rec.OrderID,
		Warehouse: rec.Warehouse,
		Kg:        rec.Kg,
		Note:      rec.Note,
		UserID:    rec.UserID,
	}
	if rec.CreatedAt != nil {
		resp.CreatedAt = rec.CreatedAt.Local().Format("2006-01-02 15:04:05")
	}
	return resp
}
