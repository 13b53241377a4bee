package constants

// Статусы заданий на резку/производство.
const (
	JobPlanned    = "planned"
	JobInProgress = "in_progress"
	JobDone       = "done"
	JobCancelled  = "cancelled"
)

// Статусы отгрузок.
const (
	ShipmentScheduled = "scheduled"
	ShipmentLoaded    = "loaded"
	ShipmentShipped   = "shipped"
	ShipmentDelivered = "delivered"
	ShipmentCancelled = "cancelled"
)
