package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"uyumplast-system/internal/entities"
)

// OrderCommentItem - комментарий, обогащённый ФИО автора.
type OrderCommentItem struct {
	entities.OrderComment
	AuthorFio sql.NullString `db:"author_fio"`
}

type OrderCommentRepositoryInterface interface {
	Create(ctx context.Context, comment *entities.OrderComment) (uint64, error)
	ListByOrder(ctx context.Context, orderID uint64, limit, offset uint64) ([]OrderCommentItem, error)
}

type OrderCommentRepository struct {
	storage *pgxpool.Pool
}

func NewOrderCommentRepository(storage *pgxpool.Pool) OrderCommentRepositoryInterface {
	return &OrderCommentRepository{storage: storage}
}

func (r *OrderCommentRepository) Create(ctx context.Context, comment *entities.OrderComment) (uint64, error) {
	query := `
		INSERT INTO order_comments (order_id, user_id, message, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id`

	var newID uint64
	err := r.storage.QueryRow(ctx, query, comment.OrderID, comment.UserID, comment.Message).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания комментария: %w", err)
	}
	return newID, nil
}

func (r *OrderCommentRepository) ListByOrder(ctx context.Context, orderID uint64, limit, offset uint64) ([]OrderCommentItem, error) {
	query := `
		SELECT c.id, c.order_id, c.user_id, c.message, c.created_at,
			u.fio AS author_fio
		FROM order_comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.order_id = $1
		ORDER BY c.created_at ASC
		LIMIT $2 OFFSET $3`

	rows, err := r.storage.Query(ctx, query, orderID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения комментариев: %w", err)
	}
	defer rows.Close()

	comments := make([]OrderCommentItem, 0)
	for rows.Next() {
		var c OrderCommentItem
		if err := rows.Scan(&c.ID, &c.OrderID, &c.UserID, &c.Message, &c.CreatedAt, &c.AuthorFio); err != nil {
			return nil, fmt.Errorf("ошибка сканирования комментария: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
