package entities

import (
	"time"

	"uyumplast-system/pkg/types"
)

// Shipment - запланированная отгрузка по заказу.
type Shipment struct {
	ID            uint64    `json:"id" db:"id"`
	OrderID       uint64    `json:"order_id" db:"order_id"`
	Vehicle       string    `json:"vehicle" db:"vehicle"`
	Driver        *string   `json:"driver" db:"driver"`
	ScheduledDate time.Time `json:"scheduled_date" db:"scheduled_date"`
	Status        string    `json:"status" db:"status"`

	types.BaseEntity
}
