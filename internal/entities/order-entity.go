package entities

import (
	"uyumplast-system/pkg/types"
)

// Order - заказ клиента на продукцию (плёнка, труба, профиль и т.д.).
// StockReadyKg/ProductionReadyKg - накопленные килограммы со склада и с
// производства; Status выводится автоматикой из готовности, кроме финальных.
type Order struct {
	ID                uint64  `json:"id" db:"id"`
	CustomerName      string  `json:"customer_name" db:"customer_name"`
	ProductName       string  `json:"product_name" db:"product_name"`
	Quantity          float64 `json:"quantity" db:"quantity"`
	Unit              string  `json:"unit" db:"unit"`
	SourceType        string  `json:"source_type" db:"source_type"`
	StockReadyKg      float64 `json:"stock_ready_kg" db:"stock_ready_kg"`
	ProductionReadyKg float64 `json:"production_ready_kg" db:"production_ready_kg"`
	Status            string  `json:"status" db:"status"`
	Notes             *string `json:"notes" db:"notes"`
	CreatorID         uint64  `json:"creator_id" db:"creator_id"`

	types.BaseEntity
	types.SoftDelete
}
