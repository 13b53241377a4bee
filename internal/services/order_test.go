package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/entities"
	"uyumplast-system/internal/repositories"
	"uyumplast-system/internal/virtualtable"
	"uyumplast-system/pkg/constants"
	"uyumplast-system/pkg/contextkeys"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/eventbus"
	"uyumplast-system/pkg/types"
)

// --- фейковые репозитории ---

type fakeOrderRepo struct {
	orders map[uint64]*entities.Order
	nextID uint64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint64]*entities.Order), nextID: 1}
}

func (r *fakeOrderRepo) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	result := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, *o)
	}
	return result, uint64(len(result)), nil
}

func (r *fakeOrderRepo) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, order *entities.Order) (uint64, error) {
	id := r.nextID
	r.nextID++
	copied := *order
	copied.ID = id
	r.orders[id] = &copied
	return id, nil
}

func (r *fakeOrderRepo) UpdateOrder(ctx context.Context, order *entities.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return apperrors.ErrNotFound
	}
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) UpdateReadiness(ctx context.Context, id uint64, stockKg, productionKg float64, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	o.StockReadyKg = stockKg
	o.ProductionReadyKg = productionKg
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) DeleteOrder(ctx context.Context, id uint64) error {
	if _, ok := r.orders[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

type fakeCuttingJobRepo struct {
	producedByOrder map[uint64]float64
}

func (r *fakeCuttingJobRepo) FindByID(ctx context.Context, id uint64) (*entities.CuttingJob, error) {
	return nil, apperrors.ErrNotFound
}

func (r *fakeCuttingJobRepo) ListByOrder(ctx context.Context, orderID uint64) ([]entities.CuttingJob, error) {
	return nil, nil
}

func (r *fakeCuttingJobRepo) Create(ctx context.Context, job *entities.CuttingJob) (uint64, error) {
	return 0, nil
}

func (r *fakeCuttingJobRepo) UpdateProgress(ctx context.Context, id uint64, producedKg float64, status string) error {
	return nil
}

func (r *fakeCuttingJobRepo) SumProducedKgByOrder(ctx context.Context, orderID uint64) (float64, error) {
	return r.producedByOrder[orderID], nil
}

type fakeStockReceiptRepo struct {
	kgByOrder map[uint64]float64
}

func (r *fakeStockReceiptRepo) Create(ctx context.Context, receipt *entities.StockReceipt) (uint64, error) {
	return 0, nil
}

func (r *fakeStockReceiptRepo) ListByOrder(ctx context.Context, orderID uint64) ([]entities.StockReceipt, error) {
	return nil, nil
}

func (r *fakeStockReceiptRepo) SumKgByOrder(ctx context.Context, orderID uint64) (float64, error) {
	return r.kgByOrder[orderID], nil
}

type fakeAuditRepo struct {
	events []virtualtable.Event
}

func (r *fakeAuditRepo) AppendEvent(ctx context.Context, event *virtualtable.Event) error {
	event.ID = uint64(len(r.events) + 1)
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeAuditRepo) QueryEvents(ctx context.Context, tableName string, limit uint64) ([]virtualtable.Event, error) {
	return nil, nil
}

func (r *fakeAuditRepo) FindByRecord(ctx context.Context, tableName, recordID string, limit uint64) ([]repositories.AuditLogItem, error) {
	return nil, nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	return &entities.User{ID: id, Fio: "Тестовый Пользователь"}, nil
}

func (r *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, apperrors.ErrNotFound
}

// --- вспомогательная сборка ---

type orderServiceFixture struct {
	svc       OrderServiceInterface
	orderRepo *fakeOrderRepo
	jobRepo   *fakeCuttingJobRepo
	stockRepo *fakeStockReceiptRepo
	auditRepo *fakeAuditRepo
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	t.Helper()
	orderRepo := newFakeOrderRepo()
	jobRepo := &fakeCuttingJobRepo{producedByOrder: make(map[uint64]float64)}
	stockRepo := &fakeStockReceiptRepo{kgByOrder: make(map[uint64]float64)}
	auditRepo := &fakeAuditRepo{}
	logger := zap.NewNop()
	bus := eventbus.New(logger)

	svc := NewOrderService(orderRepo, jobRepo, stockRepo, auditRepo, &fakeUserRepo{}, bus, logger)
	return &orderServiceFixture{
		svc:       svc,
		orderRepo: orderRepo,
		jobRepo:   jobRepo,
		stockRepo: stockRepo,
		auditRepo: auditRepo,
	}
}

func authCtx(userID uint64) context.Context {
	return context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
}

func seedOrder(f *orderServiceFixture, status, sourceType string, quantity float64) uint64 {
	id := f.orderRepo.nextID
	f.orderRepo.nextID++
	f.orderRepo.orders[id] = &entities.Order{
		ID:           id,
		CustomerName: "ООО Полимер",
		ProductName:  "Плёнка 80мкм",
		Quantity:     quantity,
		Unit:         "kg",
		SourceType:   sourceType,
		Status:       status,
		CreatorID:    1,
	}
	return id
}

// --- тесты ---

func TestRecomputeReadinessPromotesToReady(t *testing.T) {
	f := newOrderServiceFixture(t)
	id := seedOrder(f, constants.StatusInProduction, constants.SourceBoth, 1000)
	f.stockRepo.kgByOrder[id] = 500
	f.jobRepo.producedByOrder[id] = 460

	err := f.svc.RecomputeReadiness(authCtx(7), id, 7)
	require.NoError(t, err)

	order := f.orderRepo.orders[id]
	assert.Equal(t, constants.StatusReady, order.Status)
	assert.Equal(t, 500.0, order.StockReadyKg)
	assert.Equal(t, 460.0, order.ProductionReadyKg)

	require.Len(t, f.auditRepo.events, 1)
	assert.Equal(t, constants.ActionUpdate, f.auditRepo.events[0].Action)
	assert.Equal(t, "orders", f.auditRepo.events[0].TableName)
}

func TestRecomputeReadinessBelowThresholdKeepsStatus(t *testing.T) {
	f := newOrderServiceFixture(t)
	id := seedOrder(f, constants.StatusInProduction, constants.SourceProduction, 1000)
	f.jobRepo.producedByOrder[id] = 900

	err := f.svc.RecomputeReadiness(authCtx(7), id, 7)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusInProduction, f.orderRepo.orders[id].Status)
	assert.Empty(t, f.auditRepo.events, "без смены статуса событие аудита не пишется")
}

func TestRecomputeReadinessDropFromReady(t *testing.T) {
	f := newOrderServiceFixture(t)
	id := seedOrder(f, constants.StatusReady, constants.SourceProduction, 1000)
	f.jobRepo.producedByOrder[id] = 500

	err := f.svc.RecomputeReadiness(authCtx(7), id, 7)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusInProduction, f.orderRepo.orders[id].Status)
}

func TestRecomputeReadinessSkipsTerminalOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	id := seedOrder(f, constants.StatusShipped, constants.SourceBoth, 100)
	f.stockRepo.kgByOrder[id] = 100

	err := f.svc.RecomputeReadiness(authCtx(7), id, 7)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusShipped, f.orderRepo.orders[id].Status)
}

func TestChangeStatusRejectsTerminalOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	id := seedOrder(f, constants.StatusCancelled, constants.SourceStock, 100)

	_, err := f.svc.ChangeStatus(authCtx(7), id, dto.ChangeOrderStatusDTO{Status: constants.StatusConfirmed})
	require.Error(t, err)

	var invalidInput *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalidInput)
}

func TestCreateOrderWritesInsertAuditEvent(t *testing.T) {
	f := newOrderServiceFixture(t)

	created, err := f.svc.CreateOrder(authCtx(42), dto.CreateOrderDTO{
		CustomerName: "ИП Рахимов",
		ProductName:  "Труба ПНД 32",
		Quantity:     250,
		Unit:         "kg",
		SourceType:   constants.SourceProduction,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDraft, created.Status)
	assert.Equal(t, uint64(42), created.Creator.ID)
	assert.False(t, created.Ready.IsReady)

	require.Len(t, f.auditRepo.events, 1)
	event := f.auditRepo.events[0]
	assert.Equal(t, constants.ActionInsert, event.Action)
	assert.Equal(t, uint64(42), event.UserID)
	assert.Nil(t, event.OldData)
	assert.Equal(t, "ИП Рахимов", event.NewData["customer_name"])
}

func TestCreateOrderWithoutActorFails(t *testing.T) {
	f := newOrderServiceFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), dto.CreateOrderDTO{
		CustomerName: "ООО Полимер",
		ProductName:  "Плёнка",
		Quantity:     10,
		Unit:         "kg",
		SourceType:   constants.SourceStock,
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestMarkShippedRejectsCancelledOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	id := seedOrder(f, constants.StatusCancelled, constants.SourceStock, 100)

	err := f.svc.MarkShipped(authCtx(7), id, 7, false)
	require.Error(t, err)
}

func TestMarkShippedDelivered(t *testing.T) {
	f := newOrderServiceFixture(t)
	id := seedOrder(f, constants.StatusReady, constants.SourceStock, 100)

	require.NoError(t, f.svc.MarkShipped(authCtx(7), id, 7, false))
	assert.Equal(t, constants.StatusShipped, f.orderRepo.orders[id].Status)

	require.NoError(t, f.svc.MarkShipped(authCtx(7), id, 7, true))
	assert.Equal(t, constants.StatusDelivered, f.orderRepo.orders[id].Status)
}
