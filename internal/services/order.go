package services

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/entities"
	"uyumplast-system/internal/events"
	"uyumplast-system/internal/readiness"
	"uyumplast-system/internal/repositories"
	"uyumplast-system/internal/virtualtable"
	"uyumplast-system/pkg/constants"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/eventbus"
	"uyumplast-system/pkg/types"
	"uyumplast-system/pkg/utils"
)

type OrderServiceInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]dto.OrderResponseDTO, uint64, error)
	FindOrder(ctx context.Context, id uint64) (*dto.OrderResponseDTO, error)
	CreateOrder(ctx context.Context, orderData dto.CreateOrderDTO) (*dto.OrderResponseDTO, error)
	UpdateOrder(ctx context.Context, id uint64, orderData dto.UpdateOrderDTO) (*dto.OrderResponseDTO, error)
	ChangeStatus(ctx context.Context, id uint64, statusData dto.ChangeOrderStatusDTO) (*dto.OrderResponseDTO, error)
	DeleteOrder(ctx context.Context, id uint64) error
	RecomputeReadiness(ctx context.Context, orderID uint64, actorID uint64) error
	MarkShipped(ctx context.Context, orderID uint64, actorID uint64, delivered bool) error
}

type OrderService struct {
	orderRepo        repositories.OrderRepositoryInterface
	cuttingJobRepo   repositories.CuttingJobRepositoryInterface
	stockReceiptRepo repositories.StockReceiptRepositoryInterface
	auditRepo        repositories.AuditLogRepositoryInterface
	userRepo         repositories.UserRepositoryInterface
	bus              *eventbus.Bus
	logger           *zap.Logger
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	cuttingJobRepo repositories.CuttingJobRepositoryInterface,
	stockReceiptRepo repositories.StockReceiptRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:        orderRepo,
		cuttingJobRepo:   cuttingJobRepo,
		stockReceiptRepo: stockReceiptRepo,
		auditRepo:        auditRepo,
		userRepo:         userRepo,
		bus:              bus,
		logger:           logger,
	}
}

func (s *OrderService) GetOrders(ctx context.Context, filter types.Filter) ([]dto.OrderResponseDTO, uint64, error) {
	orders, total, err := s.orderRepo.GetOrders(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		result = append(result, *s.toResponseDTO(ctx, &orders[i]))
	}
	return result, total, nil
}

func (s *OrderService) FindOrder(ctx context.Context, id uint64) (*dto.OrderResponseDTO, error) {
	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponseDTO(ctx, order), nil
}

func (s *OrderService) CreateOrder(ctx context.Context, orderData dto.CreateOrderDTO) (*dto.OrderResponseDTO, error) {
	creatorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	order := &entities.Order{
		CustomerName: orderData.CustomerName,
		ProductName:  orderData.ProductName,
		Quantity:     orderData.Quantity,
		Unit:         orderData.Unit,
		SourceType:   orderData.SourceType,
		Status:       constants.StatusDraft,
		Notes:        orderData.Notes,
		CreatorID:    creatorID,
	}

	newID, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Ошибка создания заказа", zap.Error(err))
		return nil, err
	}
	order.ID = newID

	s.appendAudit(ctx, creatorID, constants.ActionInsert, newID, nil, orderToMap(order))

	s.bus.Publish(ctx, events.OrderCreatedEvent{
		OrderID:      newID,
		CustomerName: order.CustomerName,
		ProductName:  order.ProductName,
		ActorID:      creatorID,
	})

	s.logger.Info("Заказ создан", zap.Uint64("orderID", newID), zap.Uint64("creatorID", creatorID))
	return s.FindOrder(ctx, newID)
}

func (s *OrderService) UpdateOrder(ctx context.Context, id uint64, orderData dto.UpdateOrderDTO) (*dto.OrderResponseDTO, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	oldState := orderToMap(order)

	if orderData.CustomerName != nil {
		order.CustomerName = *orderData.CustomerName
	}
	if orderData.ProductName != nil {
		order.ProductName = *orderData.ProductName
	}
	if orderData.Quantity != nil {
		order.Quantity = *orderData.Quantity
	}
	if orderData.Unit != nil {
		order.Unit = *orderData.Unit
	}
	if orderData.SourceType != nil {
		order.SourceType = *orderData.SourceType
	}
	if orderData.Notes.Valid {
		order.Notes = utils.StringPtr(orderData.Notes.String)
	}

	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.appendAudit(ctx, actorID, constants.ActionUpdate, id, oldState, orderToMap(order))

	// Количество или источник могли измениться - готовность пересчитывается.
	if orderData.Quantity != nil || orderData.SourceType != nil {
		if err := s.RecomputeReadiness(ctx, id, actorID); err != nil {
			return nil, err
		}
	}

	return s.FindOrder(ctx, id)
}

// ChangeStatus - ручные переходы: подтверждение, отмена, закрытие.
func (s *OrderService) ChangeStatus(ctx context.Context, id uint64, statusData dto.ChangeOrderStatusDTO) (*dto.OrderResponseDTO, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if constants.IsTerminalStatus(order.Status) {
		return nil, apperrors.NewInvalidInputError(
			"заказ в финальном статусе %q, смена статуса невозможна", order.Status)
	}
	if order.Status == statusData.Status {
		return s.toResponseDTO(ctx, order), nil
	}

	oldStatus := order.Status
	if err := s.orderRepo.UpdateStatus(ctx, id, statusData.Status); err != nil {
		return nil, err
	}

	s.appendAudit(ctx, actorID, constants.ActionUpdate, id,
		map[string]interface{}{"status": oldStatus},
		map[string]interface{}{"status": statusData.Status})

	s.bus.Publish(ctx, events.OrderStatusChangedEvent{
		OrderID:   id,
		OldStatus: oldStatus,
		NewStatus: statusData.Status,
		ActorID:   actorID,
	})

	return s.FindOrder(ctx, id)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return err
	}

	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.DeleteOrder(ctx, id); err != nil {
		return err
	}

	s.appendAudit(ctx, actorID, constants.ActionDelete, id, orderToMap(order), nil)
	return nil
}

// RecomputeReadiness пересобирает ready-килограммы заказа из приходов склада
// и выполненных заданий, выводит следующий статус и сохраняет результат.
func (s *OrderService) RecomputeReadiness(ctx context.Context, orderID uint64, actorID uint64) error {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return err
	}

	stockKg, err := s.stockReceiptRepo.SumKgByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	productionKg, err := s.cuttingJobRepo.SumProducedKgByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	metrics := readiness.CalculateReadyMetrics(order.Quantity, stockKg, productionKg)
	nextStatus := readiness.DeriveOrderStatus(order.Status, order.SourceType, metrics.IsReady)

	if err := s.orderRepo.UpdateReadiness(ctx, orderID, stockKg, productionKg, nextStatus); err != nil {
		return err
	}

	if nextStatus != order.Status {
		s.appendAudit(ctx, actorID, constants.ActionUpdate, orderID,
			map[string]interface{}{"status": order.Status},
			map[string]interface{}{"status": nextStatus, "ready_percent": metrics.ReadyPercent})

		s.bus.Publish(ctx, events.OrderStatusChangedEvent{
			OrderID:      orderID,
			OldStatus:    order.Status,
			NewStatus:    nextStatus,
			ReadyPercent: metrics.ReadyPercent,
			ActorID:      actorID,
		})

		s.logger.Info("Статус заказа пересчитан",
			zap.Uint64("orderID", orderID),
			zap.String("old", order.Status),
			zap.String("new", nextStatus),
			zap.Float64("readyPercent", metrics.ReadyPercent),
		)
	}

	return nil
}

// MarkShipped переводит заказ в отгружен/доставлен из потока отгрузок.
// Единственный путь в эти финальные статусы.
func (s *OrderService) MarkShipped(ctx context.Context, orderID uint64, actorID uint64, delivered bool) error {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return err
	}

	newStatus := constants.StatusShipped
	if delivered {
		newStatus = constants.StatusDelivered
	}
	if order.Status == newStatus {
		return nil
	}
	if order.Status == constants.StatusCancelled || order.Status == constants.StatusClosed {
		return apperrors.NewInvalidInputError("заказ %d отменён или закрыт, отгрузка невозможна", orderID)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return err
	}

	s.appendAudit(ctx, actorID, constants.ActionUpdate, orderID,
		map[string]interface{}{"status": order.Status},
		map[string]interface{}{"status": newStatus})

	s.bus.Publish(ctx, events.OrderStatusChangedEvent{
		OrderID:   orderID,
		OldStatus: order.Status,
		NewStatus: newStatus,
		ActorID:   actorID,
	})
	return nil
}

func (s *OrderService) toResponseDTO(ctx context.Context, order *entities.Order) *dto.OrderResponseDTO {
	metrics := readiness.CalculateReadyMetrics(order.Quantity, order.StockReadyKg, order.ProductionReadyKg)

	creator := dto.ShortUserDTO{ID: order.CreatorID}
	if user, err := s.userRepo.FindUserByID(ctx, order.CreatorID); err == nil {
		creator.Fio = user.Fio
	}

	resp := &dto.OrderResponseDTO{
		ID:                order.ID,
		CustomerName:      order.CustomerName,
		ProductName:       order.ProductName,
		Quantity:          order.Quantity,
		Unit:              order.Unit,
		SourceType:        order.SourceType,
		StockReadyKg:      order.StockReadyKg,
		ProductionReadyKg: order.ProductionReadyKg,
		Status:            order.Status,
		Notes:             order.Notes,
		Creator:           creator,
		Ready: dto.ReadyMetricsDTO{
			TotalReadyKg: metrics.TotalReadyKg,
			ReadyPercent: metrics.ReadyPercent,
			IsReady:      metrics.IsReady,
		},
	}
	if order.CreatedAt != nil {
		resp.CreatedAt = order.CreatedAt.Local().Format("2006-01-02 15:04:05")
	}
	if order.UpdatedAt != nil {
		resp.UpdatedAt = order.UpdatedAt.Local().Format("2006-01-02 15:04:05")
	}
	return resp
}

// appendAudit пишет событие в журнал. Отказ журнала не валит основную
// операцию - только лог.
func (s *OrderService) appendAudit(ctx context.Context, actorID uint64, action string, orderID uint64, oldData, newData map[string]interface{}) {
	event := &virtualtable.Event{
		UserID:    actorID,
		Action:    action,
		TableName: "orders",
		RecordID:  strconv.FormatUint(orderID, 10),
		OldData:   oldData,
		NewData:   newData,
	}
	if err := s.auditRepo.AppendEvent(ctx, event); err != nil {
		s.logger.Error("Не удалось записать событие аудита",
			zap.String("action", action), zap.Uint64("orderID", orderID), zap.Error(err))
	}
}

func orderToMap(order *entities.Order) map[string]interface{} {
	m := map[string]interface{}{
		"customer_name":       order.CustomerName,
		"product_name":        order.ProductName,
		"quantity":            order.Quantity,
		"unit":                order.Unit,
		"source_type":         order.SourceType,
		"stock_ready_kg":      order.StockReadyKg,
		"production_ready_kg": order.ProductionReadyKg,
		"status":              order.Status,
		"creator_id":          order.CreatorID,
	}
	if order.Notes != nil {
		m["notes"] = *order.Notes
	}
	if order.CreatedAt != nil {
		m["created_at"] = order.CreatedAt.UTC().Format(time.RFC3339)
	}
	return m
}
