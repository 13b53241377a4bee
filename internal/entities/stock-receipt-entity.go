package entities

import "uyumplast-system/pkg/types"

// StockReceipt - приход материала на склад под конкретный заказ.
type StockReceipt struct {
	ID        uint64  `json:"id" db:"id"`
	OrderID   uint64  `json:"order_id" db:"order_id"`
	Warehouse string  `json:"warehouse" db:"warehouse"`
	Kg        float64 `json:"kg" db:"kg"`
	Note      *string `json:"note" db:"note"`
	UserID    uint64  `json:"user_id" db:"user_id"`

	types.BaseEntity
}
