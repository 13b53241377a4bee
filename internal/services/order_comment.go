package services

import (
	"context"

	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/entities"
	"uyumplast-system/internal/events"
	"uyumplast-system/internal/repositories"
	"uyumplast-system/pkg/eventbus"
	"uyumplast-system/pkg/utils"
)

type OrderCommentServiceInterface interface {
	ListByOrder(ctx context.Context, orderID uint64, limit, offset uint64) ([]dto.OrderCommentResponseDTO, error)
	AddComment(ctx context.Context, orderID uint64, commentData dto.CreateOrderCommentDTO) (*dto.OrderCommentResponseDTO, error)
}

type OrderCommentService struct {
	commentRepo  repositories.OrderCommentRepositoryInterface
	orderService OrderServiceInterface
	bus          *eventbus.Bus
	logger       *zap.Logger
}

func NewOrderCommentService(
	commentRepo repositories.OrderCommentRepositoryInterface,
	orderService OrderServiceInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) OrderCommentServiceInterface {
	return &OrderCommentService{
		commentRepo:  commentRepo,
		orderService: orderService,
		bus:          bus,
		logger:       logger,
	}
}

func (s *OrderCommentService) ListByOrder(ctx context.Context, orderID uint64, limit, offset uint64) ([]dto.OrderCommentResponseDTO, error) {
	if limit == 0 || limit > utils.MaxLimit {
		limit = utils.DefaultLimit
	}

	comments, err := s.commentRepo.ListByOrder(ctx, orderID, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]dto.OrderCommentResponseDTO, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		result = append(result, dto.OrderCommentResponseDTO{
			ID:      c.ID,
			OrderID: c.OrderID,
			Author: dto.ShortUserDTO{
				ID:  c.UserID,
				Fio: utils.NullStringToString(c.AuthorFio),
			},
			Message:   c.Message,
			CreatedAt: c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		})
	}
	return result, nil
}

func (s *OrderCommentService) AddComment(ctx context.Context, orderID uint64, commentData dto.CreateOrderCommentDTO) (*dto.OrderCommentResponseDTO, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	// Комментарии принимаются только к существующему заказу.
	if _, err := s.orderService.FindOrder(ctx, orderID); err != nil {
		return nil, err
	}

	comment := &entities.OrderComment{
		OrderID: orderID,
		UserID:  actorID,
		Message: commentData.Message,
	}

	newID, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		s.logger.Error("Ошибка создания комментария", zap.Error(err))
		return nil, err
	}

	s.bus.Publish(ctx, events.OrderCommentAddedEvent{
		OrderID:   orderID,
		CommentID: newID,
		ActorID:   actorID,
		Message:   commentData.Message,
	})

	// Список по заказу мал, перечитываем ради ФИО автора.
	comments, err := s.commentRepo.ListByOrder(ctx, orderID, utils.MaxLimit, 0)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		if comments[i].ID == newID {
			c := &comments[i]
			return &dto.OrderCommentResponseDTO{
				ID:      c.ID,
				OrderID: c.OrderID,
				Author: dto.ShortUserDTO{
					ID:  c.UserID,
					Fio: utils.NullStringToString(c.AuthorFio),
				},
				Message:   c.Message,
				CreatedAt: c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			}, nil
		}
	}

	return &dto.OrderCommentResponseDTO{
		ID:      newID,
		OrderID: orderID,
		Author:  dto.ShortUserDTO{ID: actorID},
		Message: commentData.Message,
	}, nil
}
