package services

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/entities"
	"uyumplast-system/internal/repositories"
	"uyumplast-system/internal/virtualtable"
	"uyumplast-system/pkg/constants"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/utils"
)

const shipmentsTable = "shipments"

type ShipmentServiceInterface interface {
	ListByOrder(ctx context.Context, orderID uint64) ([]dto.ShipmentResponseDTO, error)
	Schedule(ctx context.Context, shipmentData dto.CreateShipmentDTO) (*dto.ShipmentResponseDTO, error)
	UpdateStatus(ctx context.Context, id string, statusData dto.UpdateShipmentStatusDTO) (*dto.ShipmentResponseDTO, error)
}

// ShipmentService - отгрузки по заказу. На стендах без таблицы shipments
// (42P01) сервис прозрачно уходит в виртуальную таблицу поверх журнала
// аудита, поэтому id отгрузки наружу всегда строка.
type ShipmentService struct {
	shipmentRepo repositories.ShipmentRepositoryInterface
	orderService OrderServiceInterface
	vstore       *virtualtable.Store
	logger       *zap.Logger
}

func NewShipmentService(
	shipmentRepo repositories.ShipmentRepositoryInterface,
	orderService OrderServiceInterface,
	vstore *virtualtable.Store,
	logger *zap.Logger,
) ShipmentServiceInterface {
	return &ShipmentService{
		shipmentRepo: shipmentRepo,
		orderService: orderService,
		vstore:       vstore,
		logger:       logger,
	}
}

func (s *ShipmentService) ListByOrder(ctx context.Context, orderID uint64) ([]dto.ShipmentResponseDTO, error) {
	shipments, err := s.shipmentRepo.ListByOrder(ctx, orderID)
	if err != nil {
		if !utils.IsUndefinedTable(err) {
			return nil, err
		}
		return s.listVirtual(ctx, orderID)
	}

	result := make([]dto.ShipmentResponseDTO, 0, len(shipments))
	for i := range shipments {
		result = append(result, shipmentToDTO(&shipments[i]))
	}
	return result, nil
}

func (s *ShipmentService) Schedule(ctx context.Context, shipmentData dto.CreateShipmentDTO) (*dto.ShipmentResponseDTO, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orderService.FindOrder(ctx, shipmentData.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status == constants.StatusCancelled || order.Status == constants.StatusClosed {
		return nil, apperrors.NewInvalidInputError(
			"заказ %d отменён или закрыт, отгрузка не планируется", order.ID)
	}

	scheduledDate, err := time.Parse("2006-01-02", shipmentData.ScheduledDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("неверная дата отгрузки: %v", err)
	}

	shipment := &entities.Shipment{
		OrderID:       shipmentData.OrderID,
		Vehicle:       shipmentData.Vehicle,
		Driver:        shipmentData.Driver,
		ScheduledDate: scheduledDate,
		Status:        constants.ShipmentScheduled,
	}

	newID, err := s.shipmentRepo.Create(ctx, shipment)
	if err != nil {
		if !utils.IsUndefinedTable(err) {
			s.logger.Error("Ошибка создания отгрузки", zap.Error(err))
			return nil, err
		}
		return s.scheduleVirtual(ctx, actorID, shipmentData)
	}

	s.logger.Info("Отгрузка запланирована",
		zap.String("shipmentID", strconv.FormatUint(newID, 10)),
		zap.Uint64("orderID", shipmentData.OrderID))

	created, err := s.shipmentRepo.FindByID(ctx, newID)
	if err != nil {
		return nil, err
	}
	resp := shipmentToDTO(created)
	return &resp, nil
}

// UpdateStatus меняет статус отгрузки. Переходы shipped/delivered -
// единственный путь заказа в одноимённые финальные статусы.
func (s *ShipmentService) UpdateStatus(ctx context.Context, id string, statusData dto.UpdateShipmentStatusDTO) (*dto.ShipmentResponseDTO, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	numericID, parseErr := strconv.ParseUint(id, 10, 64)
	if parseErr != nil {
		// Нечисловой id бывает только у виртуальных записей.
		return s.updateStatusVirtual(ctx, actorID, id, statusData.Status)
	}

	shipment, err := s.shipmentRepo.FindByID(ctx, numericID)
	if err != nil {
		if !utils.IsUndefinedTable(err) {
			return nil, err
		}
		return s.updateStatusVirtual(ctx, actorID, id, statusData.Status)
	}

	if shipment.Status == constants.ShipmentDelivered || shipment.Status == constants.ShipmentCancelled {
		return nil, apperrors.NewInvalidInputError(
			"отгрузка %s в статусе %q, смена невозможна", id, shipment.Status)
	}

	if err := s.shipmentRepo.UpdateStatus(ctx, numericID, statusData.Status); err != nil {
		return nil, err
	}
	shipment.Status = statusData.Status

	if err := s.propagateToOrder(ctx, shipment.OrderID, actorID, statusData.Status); err != nil {
		return nil, err
	}

	resp := shipmentToDTO(shipment)
	return &resp, nil
}

// propagateToOrder переводит заказ в shipped/delivered вслед за отгрузкой.
func (s *ShipmentService) propagateToOrder(ctx context.Context, orderID, actorID uint64, shipmentStatus string) error {
	switch shipmentStatus {
	case constants.ShipmentShipped:
		return s.orderService.MarkShipped(ctx, orderID, actorID, false)
	case constants.ShipmentDelivered:
		return s.orderService.MarkShipped(ctx, orderID, actorID, true)
	}
	return nil
}

func (s *ShipmentService) listVirtual(ctx context.Context, orderID uint64) ([]dto.ShipmentResponseDTO, error) {
	// order_id хранится как float64 - так его возвращает JSON журнала.
	rows, err := s.vstore.List(ctx, shipmentsTable, map[string]interface{}{
		"order_id": float64(orderID),
	}, 0)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ShipmentResponseDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, virtualRowToShipmentDTO(row))
	}
	return result, nil
}

func (s *ShipmentService) scheduleVirtual(ctx context.Context, actorID uint64, shipmentData dto.CreateShipmentDTO) (*dto.ShipmentResponseDTO, error) {
	s.logger.Warn("Таблица shipments отсутствует, отгрузка пишется в виртуальную таблицу",
		zap.Uint64("orderID", shipmentData.OrderID))

	row := virtualtable.VirtualRow{
		"order_id":       float64(shipmentData.OrderID),
		"vehicle":        shipmentData.Vehicle,
		"scheduled_date": shipmentData.ScheduledDate,
		"status":         constants.ShipmentScheduled,
	}
	if shipmentData.Driver != nil {
		row["driver"] = *shipmentData.Driver
	}

	stored, err := s.vstore.Insert(ctx, shipmentsTable, actorID, row)
	if err != nil {
		return nil, err
	}
	resp := virtualRowToShipmentDTO(stored)
	return &resp, nil
}

func (s *ShipmentService) updateStatusVirtual(ctx context.Context, actorID uint64, id, status string) (*dto.ShipmentResponseDTO, error) {
	current, err := s.vstore.Get(ctx, shipmentsTable, id)
	if err != nil {
		return nil, err
	}
	if cur, _ := current["status"].(string); cur == constants.ShipmentDelivered || cur == constants.ShipmentCancelled {
		return nil, apperrors.NewInvalidInputError("отгрузка %s в статусе %q, смена невозможна", id, cur)
	}

	updated, err := s.vstore.Update(ctx, shipmentsTable, actorID, id, virtualtable.VirtualRow{"status": status})
	if err != nil {
		return nil, err
	}

	if orderID, ok := updated["order_id"].(float64); ok {
		if err := s.propagateToOrder(ctx, uint64(orderID), actorID, status); err != nil {
			return nil, err
		}
	}

	resp := virtualRowToShipmentDTO(updated)
	return &resp, nil
}

func shipmentToDTO(sh *entities.Shipment) dto.ShipmentResponseDTO {
	resp := dto.ShipmentResponseDTO{
		ID:            strconv.FormatUint(sh.ID, 10),
		OrderID:       sh.OrderID,
		Vehicle:       sh.Vehicle,
		Driver:        sh.Driver,
		ScheduledDate: sh.ScheduledDate.Format("2006-01-02"),
		Status:        sh.Status,
	}
	if sh.CreatedAt != nil {
		resp.CreatedAt = sh.CreatedAt.Local().Format("2006-01-02 15:04:05")
	}
	return resp
}

func virtualRowToShipmentDTO(row virtualtable.VirtualRow) dto.ShipmentResponseDTO {
	resp := dto.ShipmentResponseDTO{}
	if id, ok := row["id"].(string); ok {
		resp.ID = id
	}
	if orderID, ok := row["order_id"].(float64); ok {
		resp.OrderID = uint64(orderID)
	}
	if vehicle, ok := row["vehicle"].(string); ok {
		resp.Vehicle = vehicle
	}
	if driver, ok := row["driver"].(string); ok {
		resp.Driver = utils.StringPtr(driver)
	}
	if date, ok := row["scheduled_date"].(string); ok {
		resp.ScheduledDate = date
	}
	if status, ok := row["status"].(string); ok {
		resp.Status = status
	}
	if createdAt, ok := row["created_at"].(string); ok {
		resp.CreatedAt = createdAt
	}
	return resp
}
