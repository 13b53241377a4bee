package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"uyumplast-system/internal/virtualtable"
)

// AuditLogItem - событие журнала, обогащённое ФИО автора для таймлайна.
type AuditLogItem struct {
	virtualtable.Event
	ActorFio sql.NullString `db:"actor_fio"`
}

// AuditLogRepositoryInterface - журнал аудита. Реализует также
// virtualtable.EventStore, поэтому один и тот же журнал обслуживает и
// таймлайны, и виртуальные таблицы.
type AuditLogRepositoryInterface interface {
	virtualtable.EventStore
	FindByRecord(ctx context.Context, tableName, recordID string, limit uint64) ([]AuditLogItem, error)
}

type AuditLogRepository struct {
	storage *pgxpool.Pool
}

func NewAuditLogRepository(storage *pgxpool.Pool) AuditLogRepositoryInterface {
	return &AuditLogRepository{storage: storage}
}

func (r *AuditLogRepository) AppendEvent(ctx context.Context, event *virtualtable.Event) error {
	oldData, newData, err := marshalEventData(event)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO audit_log (user_id, action, table_name, record_id, old_data, new_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at`
	err = r.storage.QueryRow(ctx, query,
		event.UserID, event.Action, event.TableName, event.RecordID, oldData, newData,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка записи в журнал аудита: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) QueryEvents(ctx context.Context, tableName string, limit uint64) ([]virtualtable.Event, error) {
	query := `
		SELECT id, user_id, action, table_name, record_id, old_data, new_data, created_at
		FROM audit_log
		WHERE table_name = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2`

	rows, err := r.storage.Query(ctx, query, tableName, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения журнала аудита: %w", err)
	}
	defer rows.Close()

	var events []virtualtable.Event
	for rows.Next() {
		var e virtualtable.Event
		var oldData, newData []byte
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.TableName, &e.RecordID, &oldData, &newData, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования события аудита: %w", err)
		}
		if err := unmarshalEventData(&e, oldData, newData); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *AuditLogRepository) FindByRecord(ctx context.Context, tableName, recordID string, limit uint64) ([]AuditLogItem, error) {
	query := `
		SELECT
			a.id, a.user_id, a.action, a.table_name, a.record_id, a.old_data, a.new_data, a.created_at,
			u.fio AS actor_fio
		FROM audit_log a
		LEFT JOIN users u ON a.user_id = u.id
		WHERE a.table_name = $1 AND a.record_id = $2
		ORDER BY a.created_at ASC, a.id ASC
		LIMIT $3`

	rows, err := r.storage.Query(ctx, query, tableName, recordID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таймлайна записи: %w", err)
	}
	defer rows.Close()

	var items []AuditLogItem
	for rows.Next() {
		var item AuditLogItem
		var oldData, newData []byte
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Action, &item.TableName, &item.RecordID,
			&oldData, &newData, &item.CreatedAt, &item.ActorFio,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования таймлайна: %w", err)
		}
		if err := unmarshalEventData(&item.Event, oldData, newData); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func marshalEventData(event *virtualtable.Event) (oldData, newData []byte, err error) {
	if event.OldData != nil {
		oldData, err = json.Marshal(event.OldData)
		if err != nil {
			return nil, nil, fmt.Errorf("ошибка сериализации old_data: %w", err)
		}
	}
	if event.NewData != nil {
		newData, err = json.Marshal(event.NewData)
		if err != nil {
			return nil, nil, fmt.Errorf("ошибка сериализации new_data: %w", err)
		}
	}
	return oldData, newData, nil
}

func unmarshalEventData(e *virtualtable.Event, oldData, newData []byte) error {
	if len(oldData) > 0 {
		if err := json.Unmarshal(oldData, &e.OldData); err != nil {
			return fmt.Errorf("ошибка десериализации old_data события %d: %w", e.ID, err)
		}
	}
	if len(newData) > 0 {
		if err := json.Unmarshal(newData, &e.NewData); err != nil {
			return fmt.Errorf("ошибка десериализации new_data события %d: %w", e.ID, err)
		}
	}
	return nil
}
