package entities

import "uyumplast-system/pkg/types"

type User struct {
	ID           uint64  `json:"id" db:"id"`
	Fio          string  `json:"fio" db:"fio"`
	Email        string  `json:"email" db:"email"`
	Phone        *string `json:"phone" db:"phone"`
	PasswordHash string  `json:"-" db:"password_hash"`
	RoleID       uint64  `json:"role_id" db:"role_id"`
	IsActive     bool    `json:"is_active" db:"is_active"`

	types.BaseEntity
	types.SoftDelete
}
