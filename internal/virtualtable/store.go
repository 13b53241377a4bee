package virtualtable

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uyumplast-system/pkg/constants"
	apperrors "uyumplast-system/pkg/errors"
)

// DefaultReplayLimit ограничивает чтение журнала, если вызывающий не задал
// свой лимит.
const DefaultReplayLimit = 1000

type Store struct {
	events      EventStore
	replayLimit uint64
	logger      *zap.Logger
}

func NewStore(events EventStore, replayLimit uint64, logger *zap.Logger) *Store {
	if replayLimit == 0 {
		replayLimit = DefaultReplayLimit
	}
	return &Store{events: events, replayLimit: replayLimit, logger: logger}
}

// List возвращает записи виртуальной таблицы, отфильтрованные по равенству
// именованных полей. limit ограничивает чтение журнала; 0 - лимит стора.
func (s *Store) List(ctx context.Context, tableName string, filter map[string]interface{}, limit uint64) ([]VirtualRow, error) {
	state, err := s.replay(ctx, tableName, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]VirtualRow, 0, len(state))
	for _, row := range state {
		if MatchesFilter(row, filter) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Get возвращает запись по id или apperrors.ErrNotFound.
func (s *Store) Get(ctx context.Context, tableName, id string) (VirtualRow, error) {
	state, err := s.replay(ctx, tableName, 0)
	if err != nil {
		return nil, err
	}
	row, ok := state[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return row, nil
}

// Insert дописывает INSERT-событие и возвращает сохранённую запись.
// id и created_at/updated_at проставляются, если их нет в нагрузке.
func (s *Store) Insert(ctx context.Context, tableName string, userID uint64, row VirtualRow) (VirtualRow, error) {
	stored := make(VirtualRow, len(row)+3)
	for k, v := range row {
		stored[k] = v
	}

	id, ok := stored["id"].(string)
	if !ok || id == "" {
		id = uuid.NewString()
	}
	stored["id"] = id

	now := time.Now().UTC().Format(time.RFC3339)
	if _, ok := stored["created_at"]; !ok {
		stored["created_at"] = now
	}
	if _, ok := stored["updated_at"]; !ok {
		stored["updated_at"] = now
	}

	event := &Event{
		UserID:    userID,
		Action:    constants.ActionInsert,
		TableName: tableName,
		RecordID:  id,
		NewData:   stored,
	}
	if err := s.events.AppendEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("ошибка записи INSERT-события для виртуальной таблицы %q: %w", tableName, err)
	}

	s.logger.Info("Виртуальная таблица: запись создана",
		zap.String("table", tableName), zap.String("recordID", id))
	return stored, nil
}

// Update накладывает patch на текущее состояние записи и дописывает
// UPDATE-событие со старым и новым состоянием.
func (s *Store) Update(ctx context.Context, tableName string, userID uint64, id string, patch VirtualRow) (VirtualRow, error) {
	current, err := s.Get(ctx, tableName, id)
	if err != nil {
		return nil, err
	}

	next := make(VirtualRow, len(current)+len(patch))
	for k, v := range current {
		next[k] = v
	}
	for k, v := range patch {
		next[k] = v
	}
	next["id"] = id
	next["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	event := &Event{
		UserID:    userID,
		Action:    constants.ActionUpdate,
		TableName: tableName,
		RecordID:  id,
		OldData:   current,
		NewData:   next,
	}
	if err := s.events.AppendEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("ошибка записи UPDATE-события для виртуальной таблицы %q: %w", tableName, err)
	}

	return next, nil
}

// Delete дописывает DELETE-событие и возвращает удалённую запись - вызывающему
// она нужна для каскадных эффектов.
func (s *Store) Delete(ctx context.Context, tableName string, userID uint64, id string) (VirtualRow, error) {
	current, err := s.Get(ctx, tableName, id)
	if err != nil {
		return nil, err
	}

	event := &Event{
		UserID:    userID,
		Action:    constants.ActionDelete,
		TableName: tableName,
		RecordID:  id,
		OldData:   current,
		NewData:   nil,
	}
	if err := s.events.AppendEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("ошибка записи DELETE-события для виртуальной таблицы %q: %w", tableName, err)
	}

	s.logger.Info("Виртуальная таблица: запись удалена",
		zap.String("table", tableName), zap.String("recordID", id))
	return current, nil
}

func (s *Store) replay(ctx context.Context, tableName string, limit uint64) (map[string]VirtualRow, error) {
	if limit == 0 {
		limit = s.replayLimit
	}
	events, err := s.events.QueryEvents(ctx, tableName, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения журнала для виртуальной таблицы %q: %w", tableName, err)
	}
	return Replay(events), nil
}
