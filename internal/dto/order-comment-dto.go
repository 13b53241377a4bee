package dto

type CreateOrderCommentDTO struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type OrderCommentResponseDTO struct {
	ID        uint64       `json:"id"`
	OrderID   uint64       `json:"order_id"`
	Author    ShortUserDTO `json:"author"`
	Message   string       `json:"message"`
	CreatedAt string       `json:"created_at"`
}
