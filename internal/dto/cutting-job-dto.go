package dto

type CreateCuttingJobDTO struct {
	OrderID   uint64  `json:"order_id" validate:"required,gt=0"`
	Machine   string  `json:"machine" validate:"required,min=1,max=100"`
	Operator  *string `json:"operator,omitempty" validate:"omitempty,min=2"`
	PlannedKg float64 `json:"planned_kg" validate:"required,gt=0"`
}

// RecordProductionDTO - фактически произведённые килограммы по заданию.
type RecordProductionDTO struct {
	ProducedKg float64 `json:"produced_kg" validate:"required,gt=0"`
}

type CuttingJobResponseDTO struct {
	ID         uint64  `json:"id"`
	OrderID    uint64  `json:"order_id"`
	Machine    string  `json:"machine"`
	Operator   *string `json:"operator,omitempty"`
	PlannedKg  float64 `json:"planned_kg"`
	ProducedKg float64 `json:"produced_kg"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
