package events

// OrderCreatedEvent возникает после создания заказа.
type OrderCreatedEvent struct {
	OrderID      uint64
	CustomerName string
	ProductName  string
	ActorID      uint64
}

func (e OrderCreatedEvent) Name() string {
	return "order.created"
}

// OrderStatusChangedEvent возникает при любой смене статуса заказа -
// ручной или выведенной автоматикой готовности.
type OrderStatusChangedEvent struct {
	OrderID      uint64
	OldStatus    string
	NewStatus    string
	ReadyPercent float64
	ActorID      uint64
}

func (e OrderStatusChangedEvent) Name() string {
	return "order.status.changed"
}

// OrderCommentAddedEvent возникает после добавления комментария к заказу.
type OrderCommentAddedEvent struct {
	OrderID   uint64
	CommentID uint64
	ActorID   uint64
	Message   string
}

func (e OrderCommentAddedEvent) Name() string {
	return "order.comment.added"
}
