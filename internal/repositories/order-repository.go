package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	db "uyumplast-system/internal/infrastructure/bd"
	"uyumplast-system/internal/entities"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/types"
)

type OrderRepositoryInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error)
	FindOrder(ctx context.Context, id uint64) (*entities.Order, error)
	CreateOrder(ctx context.Context, order *entities.Order) (uint64, error)
	UpdateOrder(ctx context.Context, order *entities.Order) error
	UpdateReadiness(ctx context.Context, id uint64, stockKg, productionKg float64, status string) error
	UpdateStatus(ctx context.Context, id uint64, status string) error
	DeleteOrder(ctx context.Context, id uint64) error
}

type OrderRepository struct {
	storage *pgxpool.Pool
}

func NewOrderRepository(storage *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{storage: storage}
}

// Поля, разрешённые в filter[...] и sort[...] списка заказов.
var orderAllowedFields = map[string]string{
	"status":      "ord.status",
	"source_type": "ord.source_type",
	"customer":    "ord.customer_name",
	"created_at":  "ord.created_at",
	"quantity":    "ord.quantity",
}

const orderColumns = `ord.id, ord.customer_name, ord.product_name, ord.quantity, ord.unit,
	ord.source_type, ord.stock_ready_kg, ord.production_ready_kg, ord.status,
	ord.notes, ord.creator_id, ord.created_at, ord.updated_at`

// applyOrderSearch накладывает поиск по клиенту и продукции. Обязателен и
// для списка, и для подсчёта - иначе пагинация расходится с выборкой.
func applyOrderSearch(builder sq.SelectBuilder, search string) sq.SelectBuilder {
	if search == "" {
		return builder
	}
	pattern := "%" + search + "%"
	return builder.Where(sq.Or{
		sq.ILike{"ord.customer_name": pattern},
		sq.ILike{"ord.product_name": pattern},
	})
}

func orderCountBuilder(filter types.Filter) sq.SelectBuilder {
	builder := sq.Select("COUNT(*)").From("orders ord").
		Where(sq.Eq{"ord.deleted_at": nil}).
		PlaceholderFormat(sq.Dollar)
	builder = applyOrderSearch(builder, filter.Search)
	return db.ApplyListParams(builder, types.Filter{Filter: filter.Filter}, orderAllowedFields)
}

func orderListBuilder(filter types.Filter) sq.SelectBuilder {
	builder := sq.Select(orderColumns).From("orders ord").
		Where(sq.Eq{"ord.deleted_at": nil}).
		PlaceholderFormat(sq.Dollar)
	builder = applyOrderSearch(builder, filter.Search)
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("ord.created_at DESC")
	}
	return db.ApplyListParams(builder, filter, orderAllowedFields)
}

func (r *OrderRepository) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	countQuery, countArgs, err := orderCountBuilder(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса подсчёта заказов: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта заказов: %w", err)
	}

	query, args, err := orderListBuilder(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса списка заказов: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка заказов: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		var order entities.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders ord WHERE ord.id = $1 AND ord.deleted_at IS NULL`, orderColumns)

	var order entities.Order
	row := r.storage.QueryRow(ctx, query, id)
	if err := scanOrderRow(row, &order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования заказа: %w", err)
	}
	return &order, nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *entities.Order) (uint64, error) {
	query := `
		INSERT INTO orders (customer_name, product_name, quantity, unit, source_type,
			stock_ready_kg, production_ready_kg, status, notes, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id`

	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		order.CustomerName, order.ProductName, order.Quantity, order.Unit, order.SourceType,
		order.StockReadyKg, order.ProductionReadyKg, order.Status, order.Notes, order.CreatorID,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания заказа: %w", err)
	}
	return newID, nil
}

func (r *OrderRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	query := `
		UPDATE orders SET
			customer_name = $1, product_name = $2, quantity = $3, unit = $4,
			source_type = $5, notes = $6, status = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL`

	tag, err := r.storage.Exec(ctx, query,
		order.CustomerName, order.ProductName, order.Quantity, order.Unit,
		order.SourceType, order.Notes, order.Status, order.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления заказа: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateReadiness пишет пересчитанные килограммы и производный статус
// одним запросом.
func (r *OrderRepository) UpdateReadiness(ctx context.Context, id uint64, stockKg, productionKg float64, status string) error {
	query := `
		UPDATE orders SET stock_ready_kg = $1, production_ready_kg = $2, status = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL`

	tag, err := r.storage.Exec(ctx, query, stockKg, productionKg, status, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления готовности заказа: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint64, status string) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("ошибка смены статуса заказа: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE orders SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления заказа: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanOrder(rows pgx.Rows, order *entities.Order) error {
	err := rows.Scan(
		&order.ID, &order.CustomerName, &order.ProductName, &order.Quantity, &order.Unit,
		&order.SourceType, &order.StockReadyKg, &order.ProductionReadyKg, &order.Status,
		&order.Notes, &order.CreatorID, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка сканирования заказа в списке: %w", err)
	}
	return nil
}

func scanOrderRow(row pgx.Row, order *entities.Order) error {
	return row.Scan(
		&order.ID, &order.CustomerName, &order.ProductName, &order.Quantity, &order.Unit,
		&order.SourceType, &order.StockReadyKg, &order.ProductionReadyKg, &order.Status,
		&order.Notes, &order.CreatorID, &order.CreatedAt, &order.UpdatedAt,
	)
}
