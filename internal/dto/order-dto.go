package dto

import "github.com/aarondl/null/v8"

type CreateOrderDTO struct {
	CustomerName string  `json:"customer_name" validate:"required,min=2,max=255"`
	ProductName  string  `json:"product_name" validate:"required,min=2,max=255"`
	Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	Unit         string  `json:"unit" validate:"required,oneof=kg m pcs roll"`
	SourceType   string  `json:"source_type" validate:"required,oneof=stock production both"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,min=3"`
}

type UpdateOrderDTO struct {
	CustomerName *string     `json:"customer_name,omitempty" validate:"omitempty,min=2,max=255"`
	ProductName  *string     `json:"product_name,omitempty" validate:"omitempty,min=2,max=255"`
	Quantity     *float64    `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Unit         *string     `json:"unit,omitempty" validate:"omitempty,oneof=kg m pcs roll"`
	SourceType   *string     `json:"source_type,omitempty" validate:"omitempty,oneof=stock production both"`
	Notes        null.String `json:"notes,omitempty"`
}

// ChangeOrderStatusDTO - ручная смена статуса (подтверждение, отмена,
// закрытие). Автоматические статусы сюда не входят.
type ChangeOrderStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled closed"`
}

type ReadyMetricsDTO struct {
	TotalReadyKg float64 `json:"total_ready_kg"`
	ReadyPercent float64 `json:"ready_percent"`
	IsReady      bool    `json:"is_ready"`
}

type OrderResponseDTO struct {
	ID                uint64          `json:"id"`
	CustomerName      string          `json:"customer_name"`
	ProductName       string          `json:"product_name"`
	Quantity          float64         `json:"quantity"`
	Unit              string          `json:"unit"`
	SourceType        string          `json:"source_type"`
	StockReadyKg      float64         `json:"stock_ready_kg"`
	ProductionReadyKg float64         `json:"production_ready_kg"`
	Status            string          `json:"status"`
	Ready             ReadyMetricsDTO `json:"ready"`
	Notes             *string         `json:"notes,omitempty"`
	Creator           ShortUserDTO    `json:"creator"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}
