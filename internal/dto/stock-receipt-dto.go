package dto

type CreateStockReceiptDTO struct {
	OrderID   uint64  `json:"order_id" validate:"required,gt=0"`
	Warehouse string  `json:"warehouse" validate:"required,min=1,max=100"`
	Kg        float64 `json:"kg" validate:"required,gt=0"`
	Note      *string `json:"note,omitempty" validate:"omitempty,min=3"`
}

type StockReceiptResponseDTO struct {
	ID        uint64  `json:"id"`
	OrderID   uint64  `json:"order_id"`
	Warehouse string  `json:"warehouse"`
	Kg        float64 `json:"kg"`
	Note      *string `json:"note,omitempty"`
	UserID    uint64  `json:"user_id"`
	CreatedAt string  `json:"created_at"`
}
