package services

import (
	"context"

	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/repositories"
	"uyumplast-system/pkg/utils"
)

type AuditServiceInterface interface {
	RecordTimeline(ctx context.Context, tableName, recordID string, limit uint64) ([]dto.AuditEventDTO, error)
}

// AuditService - таймлайн изменений записи по журналу аудита.
type AuditService struct {
	auditRepo repositories.AuditLogRepositoryInterface
	logger    *zap.Logger
}

func NewAuditService(auditRepo repositories.AuditLogRepositoryInterface, logger *zap.Logger) AuditServiceInterface {
	return &AuditService{auditRepo: auditRepo, logger: logger}
}

func (s *AuditService) RecordTimeline(ctx context.Context, tableName, recordID string, limit uint64) ([]dto.AuditEventDTO, error) {
	if limit == 0 || limit > utils.MaxLimit {
		limit = utils.DefaultLimit
	}

	items, err := s.auditRepo.FindByRecord(ctx, tableName, recordID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AuditEventDTO, 0, len(items))
	for i := range items {
		item := &items[i]
		result = append(result, dto.AuditEventDTO{
			ID:        item.ID,
			Action:    item.Action,
			TableName: item.TableName,
			RecordID:  item.RecordID,
			OldData:   item.OldData,
			NewData:   item.NewData,
			Actor: dto.ShortUserDTO{
				ID:  item.UserID,
				Fio: utils.NullStringToString(item.ActorFio),
			},
			CreatedAt: item.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		})
	}
	return result, nil
}
