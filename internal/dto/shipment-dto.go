package dto

type CreateShipmentDTO struct {
	OrderID       uint64  `json:"order_id" validate:"required,gt=0"`
	Vehicle       string  `json:"vehicle" validate:"required,min=2,max=100"`
	Driver        *string `json:"driver,omitempty" validate:"omitempty,min=2"`
	ScheduledDate string  `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
}

type UpdateShipmentStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=scheduled loaded shipped delivered cancelled"`
}

// ShipmentResponseDTO отдаёт id строкой: из реальной таблицы это числовой
// id, из виртуальной - uuid.
type ShipmentResponseDTO struct {
	ID            string  `json:"id"`
	OrderID       uint64  `json:"order_id"`
	Vehicle       string  `json:"vehicle"`
	Driver        *string `json:"driver,omitempty"`
	ScheduledDate string  `json:"scheduled_date"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}
