package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"uyumplast-system/internal/entities"
)

type StockReceiptRepositoryInterface interface {
	Create(ctx context.Context, receipt *entities.StockReceipt) (uint64, error)
	ListByOrder(ctx context.Context, orderID uint64) ([]entities.StockReceipt, error)
	SumKgByOrder(ctx context.Context, orderID uint64) (float64, error)
}

type StockReceiptRepository struct {
	storage *pgxpool.Pool
}

func NewStockReceiptRepository(storage *pgxpool.Pool) StockReceiptRepositoryInterface {
	return &StockReceiptRepository{storage: storage}
}

func (r *StockReceiptRepository) Create(ctx context.Context, receipt *entities.StockReceipt) (uint64, error) {
	query := `
		INSERT INTO stock_receipts (order_id, warehouse, kg, note, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id`

	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		receipt.OrderID, receipt.Warehouse, receipt.Kg, receipt.Note, receipt.UserID,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания прихода на склад: %w", err)
	}
	return newID, nil
}

func (r *StockReceiptRepository) ListByOrder(ctx context.Context, orderID uint64) ([]entities.StockReceipt, error) {
	query := `
		SELECT id, order_id, warehouse, kg, note, user_id, created_at, updated_at
		FROM stock_receipts
		WHERE order_id = $1
		ORDER BY created_at ASC`

	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения приходов по заказу: %w", err)
	}
	defer rows.Close()

	receipts := make([]entities.StockReceipt, 0)
	for rows.Next() {
		var rec entities.StockReceipt
		if err := rows.Scan(
			&rec.ID, &rec.OrderID, &rec.Warehouse, &rec.Kg, &rec.Note, &rec.UserID,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования прихода: %w", err)
		}
		receipts = append(receipts, rec)
	}
	return receipts, rows.Err()
}

// SumKgByOrder - складская часть ready-килограммов заказа.
func (r *StockReceiptRepository) SumKgByOrder(ctx context.Context, orderID uint64) (float64, error) {
	var sum float64
	err := r.storage.QueryRow(ctx,
		`SELECT COALESCE(SUM(kg), 0) FROM stock_receipts WHERE order_id = $1`, orderID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("ошибка суммирования складских кг: %w", err)
	}
	return sum, nil
}
