package virtualtable

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"uyumplast-system/pkg/constants"
	apperrors "uyumplast-system/pkg/errors"
)

// fakeEventStore - in-memory журнал для тестов.
type fakeEventStore struct {
	events    []Event
	nextID    uint64
	failAll   bool
	clockStep time.Duration
	now       time.Time
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{
		nextID:    1,
		clockStep: time.Millisecond,
		now:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeEventStore) AppendEvent(_ context.Context, event *Event) error {
	if f.failAll {
		return errors.New("хранилище недоступно")
	}
	stored := *event
	stored.ID = f.nextID
	f.nextID++
	f.now = f.now.Add(f.clockStep)
	stored.CreatedAt = f.now
	f.events = append(f.events, stored)
	return nil
}

func (f *fakeEventStore) QueryEvents(_ context.Context, tableName string, limit uint64) ([]Event, error) {
	if f.failAll {
		return nil, errors.New("хранилище недоступно")
	}
	var out []Event
	for _, e := range f.events {
		if e.TableName == tableName {
			out = append(out, e)
		}
		if uint64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func newTestStore(t *testing.T) (*Store, *fakeEventStore) {
	t.Helper()
	fake := newFakeEventStore()
	return NewStore(fake, 0, zap.NewNop()), fake
}

func TestStore_InsertThenGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	row, err := store.Insert(ctx, "pallets", 7, VirtualRow{"label": "A-12", "kg": 450.0})
	require.NoError(t, err)
	require.NotEmpty(t, row["id"])
	assert.NotEmpty(t, row["created_at"])

	got, err := store.Get(ctx, "pallets", row["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, row, got)
}

func TestStore_InsertKeepsProvidedID(t *testing.T) {
	store, fake := newTestStore(t)
	ctx := context.Background()

	row, err := store.Insert(ctx, "pallets", 7, VirtualRow{"id": "pal-1", "label": "B-3"})
	require.NoError(t, err)
	assert.Equal(t, "pal-1", row["id"])
	require.Len(t, fake.events, 1)
	assert.Equal(t, constants.ActionInsert, fake.events[0].Action)
	assert.Equal(t, "pal-1", fake.events[0].RecordID)
	assert.Equal(t, uint64(7), fake.events[0].UserID)
}

func TestStore_UpdateMergesPatch(t *testing.T) {
	store, fake := newTestStore(t)
	ctx := context.Background()

	row, err := store.Insert(ctx, "pallets", 1, VirtualRow{"label": "C-1", "kg": 100.0, "warehouse": "main"})
	require.NoError(t, err)
	id := row["id"].(string)

	updated, err := store.Update(ctx, "pallets", 2, id, VirtualRow{"kg": 250.0})
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated["kg"])
	assert.Equal(t, "main", updated["warehouse"], "не тронутые поля сохраняются")

	got, err := store.Get(ctx, "pallets", id)
	require.NoError(t, err)
	assert.Equal(t, 250.0, got["kg"])
	assert.Equal(t, "C-1", got["label"])

	last := fake.events[len(fake.events)-1]
	assert.Equal(t, constants.ActionUpdate, last.Action)
	assert.Equal(t, 100.0, last.OldData["kg"])
	assert.Equal(t, 250.0, last.NewData["kg"])
}

func TestStore_UpdateMissingRow(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Update(context.Background(), "pallets", 1, "нет-такой", VirtualRow{"kg": 1.0})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_DeleteThenGet(t *testing.T) {
	store, fake := newTestStore(t)
	ctx := context.Background()

	row, err := store.Insert(ctx, "pallets", 1, VirtualRow{"label": "D-9"})
	require.NoError(t, err)
	id := row["id"].(string)

	deleted, err := store.Delete(ctx, "pallets", 3, id)
	require.NoError(t, err)
	assert.Equal(t, "D-9", deleted["label"])

	_, err = store.Get(ctx, "pallets", id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	last := fake.events[len(fake.events)-1]
	assert.Equal(t, constants.ActionDelete, last.Action)
	assert.Nil(t, last.NewData)
}

func TestStore_ListWithFilter(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, "pallets", 1, VirtualRow{"warehouse": "main", "label": "1"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "pallets", 1, VirtualRow{"warehouse": "reserve", "label": "2"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "pallets", 1, VirtualRow{"label": "3"})
	require.NoError(t, err)

	all, err := store.List(ctx, "pallets", nil, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	main, err := store.List(ctx, "pallets", map[string]interface{}{"warehouse": "main"}, 0)
	require.NoError(t, err)
	require.Len(t, main, 1)
	assert.Equal(t, "1", main[0]["label"])

	// Отсутствующее в записи поле сравнивается как nil.
	missing, err := store.List(ctx, "pallets", map[string]interface{}{"warehouse": nil}, 0)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	assert.Equal(t, "3", missing[0]["label"])
}

func TestStore_ListStringFilterMatchesTypedFields(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, "pallets", 1, VirtualRow{"order_id": 5.0, "urgent": true, "label": "1"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "pallets", 1, VirtualRow{"order_id": 6.0, "urgent": false, "label": "2"})
	require.NoError(t, err)

	// Значения из query-строки приходят строками, записи после JSON
	// хранят числа и булевы типизированно.
	byOrder, err := store.List(ctx, "pallets", map[string]interface{}{"order_id": "5"}, 0)
	require.NoError(t, err)
	require.Len(t, byOrder, 1)
	assert.Equal(t, "1", byOrder[0]["label"])

	byFlag, err := store.List(ctx, "pallets", map[string]interface{}{"urgent": "false"}, 0)
	require.NoError(t, err)
	require.Len(t, byFlag, 1)
	assert.Equal(t, "2", byFlag[0]["label"])

	none, err := store.List(ctx, "pallets", map[string]interface{}{"order_id": "не число"}, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_ListLimitTruncatesReplay(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, "pallets", 1, VirtualRow{"label": "1"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, "pallets", 1, VirtualRow{"label": "2"})
	require.NoError(t, err)

	// Лимит режет чтение журнала, а не готовый список.
	rows, err := store.List(ctx, "pallets", nil, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0]["label"])
}

func TestStore_TablesAreIsolated(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, "pallets", 1, VirtualRow{"label": "x"})
	require.NoError(t, err)

	rows, err := store.List(ctx, "racks", nil, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_StoreFailurePropagates(t *testing.T) {
	store, fake := newTestStore(t)
	fake.failAll = true

	_, err := store.List(context.Background(), "pallets", nil, 0)
	assert.Error(t, err)

	_, err = store.Insert(context.Background(), "pallets", 1, VirtualRow{"label": "x"})
	assert.Error(t, err)
}

func TestReplay_OrderOfEventsWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []Event{
		{ID: 1, Action: constants.ActionInsert, TableName: "t", RecordID: "r1",
			NewData: VirtualRow{"v": 1.0}, CreatedAt: base},
		{ID: 2, Action: constants.ActionUpdate, TableName: "t", RecordID: "r1",
			NewData: VirtualRow{"v": 2.0}, CreatedAt: base.Add(time.Second)},
		{ID: 3, Action: constants.ActionDelete, TableName: "t", RecordID: "r1",
			CreatedAt: base.Add(2 * time.Second)},
	}

	state := Replay(events)
	assert.Empty(t, state, "DELETE после UPDATE перекрывает запись")

	// Без DELETE выигрывает последний UPDATE целиком (слияния полей нет).
	state = Replay(events[:2])
	require.Contains(t, state, "r1")
	assert.Equal(t, 2.0, state["r1"]["v"])
}

func TestReplay_UpdateReplacesWholeRow(t *testing.T) {
	events := []Event{
		{ID: 1, Action: constants.ActionInsert, RecordID: "a", NewData: VirtualRow{"x": 1.0, "y": 2.0}},
		{ID: 2, Action: constants.ActionUpdate, RecordID: "a", NewData: VirtualRow{"x": 9.0}},
	}
	state := Replay(events)
	require.Contains(t, state, "a")
	assert.Equal(t, 9.0, state["a"]["x"])
	_, hasY := state["a"]["y"]
	assert.False(t, hasY, "new_data полностью заменяет прежнее состояние")
}

func TestReplay_NilNewDataIgnored(t *testing.T) {
	events := []Event{
		{ID: 1, Action: constants.ActionInsert, RecordID: "a", NewData: VirtualRow{"x": 1.0}},
		{ID: 2, Action: constants.ActionUpdate, RecordID: "a", NewData: nil},
	}
	state := Replay(events)
	require.Contains(t, state, "a")
	assert.Equal(t, 1.0, state["a"]["x"])
}
