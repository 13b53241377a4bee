package entities

import "uyumplast-system/pkg/types"

// CuttingJob - задание на резку/производство по заказу.
type CuttingJob struct {
	ID         uint64  `json:"id" db:"id"`
	OrderID    uint64  `json:"order_id" db:"order_id"`
	Machine    string  `json:"machine" db:"machine"`
	Operator   *string `json:"operator" db:"operator"`
	PlannedKg  float64 `json:"planned_kg" db:"planned_kg"`
	ProducedKg float64 `json:"produced_kg" db:"produced_kg"`
	Status     string  `json:"status" db:"status"`

	types.BaseEntity
}
