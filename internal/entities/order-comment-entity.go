package entities

import "time"

type OrderComment struct {
	ID        uint64    `json:"id" db:"id"`
	OrderID   uint64    `json:"order_id" db:"order_id"`
	UserID    uint64    `json:"user_id" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
