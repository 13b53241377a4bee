package listeners

import (
	"context"

	"go.uber.org/zap"

	"uyumplast-system/internal/events"
	"uyumplast-system/internal/services"
	"uyumplast-system/pkg/eventbus"
)

// NotificationListener переводит доменные события шины в уведомления.
type NotificationListener struct {
	notificationService services.NotificationServiceInterface
	logger              *zap.Logger
}

func NewNotificationListener(notificationService services.NotificationServiceInterface, logger *zap.Logger) *NotificationListener {
	return &NotificationListener{
		notificationService: notificationService,
		logger:              logger,
	}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe("order.created", l.handleOrderCreated)
	bus.Subscribe("order.status.changed", l.handleOrderStatusChanged)
	bus.Subscribe("order.comment.added", l.handleCommentAdded)
	l.logger.Info("NotificationListener подписан на события заказов")
}

func (l *NotificationListener) handleOrderCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderCreatedEvent)
	if !ok {
		l.logger.Warn("Неожиданный тип события", zap.String("event", event.Name()))
		return nil
	}
	l.notificationService.NotifyOrderCreated(ctx, e.OrderID, e.CustomerName, e.ProductName)
	return nil
}

func (l *NotificationListener) handleOrderStatusChanged(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderStatusChangedEvent)
	if !ok {
		l.logger.Warn("Неожиданный тип события", zap.String("event", event.Name()))
		return nil
	}
	l.notificationService.NotifyOrderStatusChanged(ctx, e.OrderID, e.OldStatus, e.NewStatus, e.ReadyPercent)
	return nil
}

func (l *NotificationListener) handleCommentAdded(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.OrderCommentAddedEvent)
	if !ok {
		l.logger.Warn("Неожиданный тип события", zap.String("event", event.Name()))
		return nil
	}
	l.notificationService.NotifyCommentAdded(ctx, e.OrderID, e.CommentID, e.Message)
	return nil
}
