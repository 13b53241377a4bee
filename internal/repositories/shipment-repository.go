package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"uyumplast-system/internal/entities"
	apperrors "uyumplast-system/pkg/errors"
)

type ShipmentRepositoryInterface interface {
	FindByID(ctx context.Context, id uint64) (*entities.Shipment, error)
	ListByOrder(ctx context.Context, orderID uint64) ([]entities.Shipment, error)
	Create(ctx context.Context, shipment *entities.Shipment) (uint64, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
}

type ShipmentRepository struct {
	storage *pgxpool.Pool
}

func NewShipmentRepository(storage *pgxpool.Pool) ShipmentRepositoryInterface {
	return &ShipmentRepository{storage: storage}
}

const shipmentColumns = `id, order_id, vehicle, driver, scheduled_date, status, created_at, updated_at`

func (r *ShipmentRepository) FindByID(ctx context.Context, id uint64) (*entities.Shipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM shipments WHERE id = $1`, shipmentColumns)

	var s entities.Shipment
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.OrderID, &s.Vehicle, &s.Driver, &s.ScheduledDate, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования отгрузки: %w", err)
	}
	return &s, nil
}

func (r *ShipmentRepository) ListByOrder(ctx context.Context, orderID uint64) ([]entities.Shipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM shipments WHERE order_id = $1 ORDER BY scheduled_date ASC`, shipmentColumns)

	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения отгрузок по заказу: %w", err)
	}
	defer rows.Close()

	shipments := make([]entities.Shipment, 0)
	for rows.Next() {
		var s entities.Shipment
		if err := rows.Scan(
			&s.ID, &s.OrderID, &s.Vehicle, &s.Driver, &s.ScheduledDate, &s.Status,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования отгрузки в списке: %w", err)
		}
		shipments = append(shipments, s)
	}
	return shipments, rows.Err()
}

func (r *ShipmentRepository) Create(ctx context.Context, shipment *entities.Shipment) (uint64, error) {
	query := `
		INSERT INTO shipments (order_id, vehicle, driver, scheduled_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id`

	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		shipment.OrderID, shipment.Vehicle, shipment.Driver, shipment.ScheduledDate, shipment.Status,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания отгрузки: %w", err)
	}
	return newID, nil
}

func (r *ShipmentRepository) UpdateStatus(ctx context.Context, id uint64, status string) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE shipments SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("ошибка смены статуса отгрузки: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
