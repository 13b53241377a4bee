package services

import (
	"context"

	"go.uber.org/zap"
)

type NotificationServiceInterface interface {
	NotifyOrderCreated(ctx context.Context, orderID uint64, customerName, productName string)
	NotifyOrderStatusChanged(ctx context.Context, orderID uint64, oldStatus, newStatus string, readyPercent float64)
	NotifyCommentAdded(ctx context.Context, orderID, commentID uint64, message string)
}

// NotificationService - заглушка транспорта уведомлений. Реальные каналы
// (SMS, e-mail) не подключены, события фиксируются в логе.
type NotificationService struct {
	logger *zap.Logger
}

func NewNotificationService(logger *zap.Logger) NotificationServiceInterface {
	return &NotificationService{logger: logger}
}

func (s *NotificationService) NotifyOrderCreated(ctx context.Context, orderID uint64, customerName, productName string) {
	s.logger.Info("Уведомление: создан заказ",
		zap.Uint64("orderID", orderID),
		zap.String("customer", customerName),
		zap.String("product", productName),
	)
}

func (s *NotificationService) NotifyOrderStatusChanged(ctx context.Context, orderID uint64, oldStatus, newStatus string, readyPercent float64) {
	s.logger.Info("Уведомление: изменён статус заказа",
		zap.Uint64("orderID", orderID),
		zap.String("old", oldStatus),
		zap.String("new", newStatus),
		zap.Float64("readyPercent", readyPercent),
	)
}

func (s *NotificationService) NotifyCommentAdded(ctx context.Context, orderID, commentID uint64, message string) {
	s.logger.Info("Уведомление: новый комментарий к заказу",
		zap.Uint64("orderID", orderID),
		zap.Uint64("commentID", commentID),
		zap.String("message", message),
	)
}
