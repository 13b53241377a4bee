// Пакет virtualtable даёт CRUD-доступ к "виртуальной" таблице, состояние
// которой целиком восстанавливается сворачиванием журнала аудита. Используется
// как запасной путь, когда настоящей таблицы в конкретной инсталляции ещё нет.
//
// Известное ограничение: Update/Delete читают текущее состояние и затем
// дописывают событие без какой-либо блокировки. Два конкурентных обновления
// одной записи могут прочитать одно и то же "текущее" - выигрывает событие,
// дописанное позже (last-write-wins).
package virtualtable

import (
	"context"
	"time"
)

// Event - одна строка журнала аудита. Журнал append-only, события читаются
// в порядке возрастания created_at.
type Event struct {
	ID        uint64                 `json:"id" db:"id"`
	UserID    uint64                 `json:"user_id" db:"user_id"`
	Action    string                 `json:"action" db:"action"`
	TableName string                 `json:"table_name" db:"table_name"`
	RecordID  string                 `json:"record_id" db:"record_id"`
	OldData   map[string]interface{} `json:"old_data" db:"old_data"`
	NewData   map[string]interface{} `json:"new_data" db:"new_data"`
	CreatedAt time.Time              `json:"created_at" db:"created_at"`
}

// VirtualRow - восстановленная запись произвольной формы.
type VirtualRow = map[string]interface{}

// EventStore - внешнее хранилище журнала. Внедряется зависимостью, чтобы в
// тестах подставлять in-memory реализацию.
type EventStore interface {
	AppendEvent(ctx context.Context, event *Event) error
	QueryEvents(ctx context.Context, tableName string, limit uint64) ([]Event, error)
}
