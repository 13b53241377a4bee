package constants

// --- СТАТУСЫ ЗАКАЗОВ (Совпадает с кодами в БД) ---
const (
	StatusDraft        = "draft"
	StatusConfirmed    = "confirmed"
	StatusInProduction = "in_production"
	StatusReady        = "ready"
	StatusShipped      = "shipped"
	StatusDelivered    = "delivered"
	StatusCancelled    = "cancelled"
	StatusClosed       = "closed"
)

// Финальные статусы: автоматический пересчёт готовности их не трогает.
var TerminalStatuses = []string{
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusClosed,
}

func IsTerminalStatus(code string) bool {
	for _, s := range TerminalStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// --- ИСТОЧНИК МАТЕРИАЛА ---
const (
	SourceStock      = "stock"
	SourceProduction = "production"
	SourceBoth       = "both"
)

// --- ДЕЙСТВИЯ В ЖУРНАЛЕ АУДИТА ---
const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)
