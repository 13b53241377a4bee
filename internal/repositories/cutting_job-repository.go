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

type CuttingJobRepositoryInterface interface {
	FindByID(ctx context.Context, id uint64) (*entities.CuttingJob, error)
	ListByOrder(ctx context.Context, orderID uint64) ([]entities.CuttingJob, error)
	Create(ctx context.Context, job *entities.CuttingJob) (uint64, error)
	UpdateProgress(ctx context.Context, id uint64, producedKg float64, status string) error
	SumProducedKgByOrder(ctx context.Context, orderID uint64) (float64, error)
}

type CuttingJobRepository struct {
	storage *pgxpool.Pool
}

func NewCuttingJobRepository(storage *pgxpool.Pool) CuttingJobRepositoryInterface {
	return &CuttingJobRepository{storage: storage}
}

const cuttingJobColumns = `id, order_id, machine, operator, planned_kg, produced_kg, status, created_at, updated_at`

func (r *CuttingJobRepository) FindByID(ctx context.Context, id uint64) (*entities.CuttingJob, error) {
	query := fmt.Sprintf(`SELECT %s FROM cutting_jobs WHERE id = $1`, cuttingJobColumns)

	var job entities.CuttingJob
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.OrderID, &job.Machine, &job.Operator,
		&job.PlannedKg, &job.ProducedKg, &job.Status, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования задания на резку: %w", err)
	}
	return &job, nil
}

func (r *CuttingJobRepository) ListByOrder(ctx context.Context, orderID uint64) ([]entities.CuttingJob, error) {
	query := fmt.Sprintf(`SELECT %s FROM cutting_jobs WHERE order_id = $1 ORDER BY created_at ASC`, cuttingJobColumns)

	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения заданий по заказу: %w", err)
	}
	defer rows.Close()

	jobs := make([]entities.CuttingJob, 0)
	for rows.Next() {
		var job entities.CuttingJob
		if err := rows.Scan(
			&job.ID, &job.OrderID, &job.Machine, &job.Operator,
			&job.PlannedKg, &job.ProducedKg, &job.Status, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования задания в списке: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *CuttingJobRepository) Create(ctx context.Context, job *entities.CuttingJob) (uint64, error) {
	query := `
		INSERT INTO cutting_jobs (order_id, machine, operator, planned_kg, produced_kg, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id`

	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		job.OrderID, job.Machine, job.Operator, job.PlannedKg, job.ProducedKg, job.Status,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания задания на резку: %w", err)
	}
	return newID, nil
}

func (r *CuttingJobRepository) UpdateProgress(ctx context.Context, id uint64, producedKg float64, status string) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE cutting_jobs SET produced_kg = $1, status = $2, updated_at = NOW() WHERE id = $3`,
		producedKg, status, id,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления прогресса задания: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SumProducedKgByOrder - производственная часть ready-килограммов заказа.
func (r *CuttingJobRepository) SumProducedKgByOrder(ctx context.Context, orderID uint64) (float64, error) {
	var sum float64
	err := r.storage.QueryRow(ctx,
		`SELECT COALESCE(SUM(produced_kg), 0) FROM cutting_jobs WHERE order_id = $1 AND status != 'cancelled'`,
		orderID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("ошибка суммирования произведённых кг: %w", err)
	}
	return sum, nil
}
