package services

import (
	"context"

	"go.uber.org/zap"

	"uyumplast-system/internal/dto"
	"uyumplast-system/internal/entities"
	"uyumplast-system/internal/repositories"
	"uyumplast-system/pkg/constants"
	apperrors "uyumplast-system/pkg/errors"
	"uyumplast-system/pkg/utils"
)

type ProductionServiceInterface interface {
	ListByOrder(ctx context.Context, orderID uint64) ([]dto.CuttingJobResponseDTO, error)
	CreateJob(ctx context.Context, jobData dto.CreateCuttingJobDTO) (*dto.CuttingJobResponseDTO, error)
	RecordProduction(ctx context.Context, jobID uint64, data dto.RecordProductionDTO) (*dto.CuttingJobResponseDTO, error)
	CancelJob(ctx context.Context, jobID uint64) (*dto.CuttingJobResponseDTO, error)
}

// ProductionService - задания на резку. Любое изменение произведённых
// килограммов тянет за собой пересчёт готовности заказа.
type ProductionService struct {
	cuttingJobRepo repositories.CuttingJobRepositoryInterface
	orderService   OrderServiceInterface
	logger         *zap.Logger
}

func NewProductionService(
	cuttingJobRepo repositories.CuttingJobRepositoryInterface,
	orderService OrderServiceInterface,
	logger *zap.Logger,
) ProductionServiceInterface {
	return &ProductionService{
		cuttingJobRepo: cuttingJobRepo,
		orderService:   orderService,
		logger:         logger,
	}
}

func (s *ProductionService) ListByOrder(ctx context.Context, orderID uint64) ([]dto.CuttingJobResponseDTO, error) {
	jobs, err := s.cuttingJobRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.CuttingJobResponseDTO, 0, len(jobs))
	for i := range jobs {
		result = append(result, jobToDTO(&jobs[i]))
	}
	return result, nil
}

func (s *ProductionService) CreateJob(ctx context.Context, jobData dto.CreateCuttingJobDTO) (*dto.CuttingJobResponseDTO, error) {
	// Заказ должен существовать и не быть в финальном статусе.
	order, err := s.orderService.FindOrder(ctx, jobData.OrderID)
	if err != nil {
		return nil, err
	}
	if constants.IsTerminalStatus(order.Status) {
		return nil, apperrors.NewInvalidInputError(
			"заказ %d в статусе %q, создание задания невозможно", order.ID, order.Status)
	}

	job := &entities.CuttingJob{
		OrderID:   jobData.OrderID,
		Machine:   jobData.Machine,
		Operator:  jobData.Operator,
		PlannedKg: jobData.PlannedKg,
		Status:    constants.JobPlanned,
	}

	newID, err := s.cuttingJobRepo.Create(ctx, job)
	if err != nil {
		s.logger.Error("Ошибка создания задания на резку", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Задание на резку создано",
		zap.Uint64("jobID", newID), zap.Uint64("orderID", jobData.OrderID))
	return s.findJob(ctx, newID)
}

func (s *ProductionService) RecordProduction(ctx context.Context, jobID uint64, data dto.RecordProductionDTO) (*dto.CuttingJobResponseDTO, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	job, err := s.cuttingJobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == constants.JobCancelled {
		return nil, apperrors.NewInvalidInputError("задание %d отменено, учёт выработки невозможен", jobID)
	}

	producedKg := job.ProducedKg + data.ProducedKg
	status := constants.JobInProgress
	if producedKg >= job.PlannedKg {
		status = constants.JobDone
	}

	if err := s.cuttingJobRepo.UpdateProgress(ctx, jobID, producedKg, status); err != nil {
		return nil, err
	}

	if err := s.orderService.RecomputeReadiness(ctx, job.OrderID, actorID); err != nil {
		return nil, err
	}

	s.logger.Info("Выработка учтена",
		zap.Uint64("jobID", jobID),
		zap.Float64("producedKg", producedKg),
		zap.String("status", status),
	)
	return s.findJob(ctx, jobID)
}

// CancelJob снимает задание с производства. Его килограммы выбывают из
// суммы готовности, поэтому заказ пересчитывается.
func (s *ProductionService) CancelJob(ctx context.Context, jobID uint64) (*dto.CuttingJobResponseDTO, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	job, err := s.cuttingJobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == constants.JobDone {
		return nil, apperrors.NewInvalidInputError("задание %d завершено, отмена невозможна", jobID)
	}

	if err := s.cuttingJobRepo.UpdateProgress(ctx, jobID, job.ProducedKg, constants.JobCancelled); err != nil {
		return nil, err
	}

	if err := s.orderService.RecomputeReadiness(ctx, job.OrderID, actorID); err != nil {
		return nil, err
	}
	return s.findJob(ctx, jobID)
}

func (s *ProductionService) findJob(ctx context.Context, id uint64) (*dto.CuttingJobResponseDTO, error) {
	job, err := s.cuttingJobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := jobToDTO(job)
	return &resp, nil
}

func jobToDTO(job *entities.CuttingJob) dto.CuttingJobResponseDTO {
	resp := dto.CuttingJobResponseDTO{
		ID:         job.ID,
		OrderID:    job.OrderID,
		Machine:    job.Machine,
		Operator:   job.Operator,
		PlannedKg:  job.PlannedKg,
		ProducedKg: job.ProducedKg,
		Status:     job.Status,
	}
	if job.CreatedAt != nil {
		resp.CreatedAt = job.CreatedAt.Local().Format("2006-01-02 15:04:05")
	}
	if job.UpdatedAt != nil {
		resp.UpdatedAt = job.UpdatedAt.Local().Format("2006-01-02 15:04:05")
	}
	return resp
}
