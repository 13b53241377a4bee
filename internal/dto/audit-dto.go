package dto

// AuditEventDTO - событие журнала аудита с ФИО автора для таймлайна.
type AuditEventDTO struct {
	ID        uint64                 `json:"id"`
	Action    string                 `json:"action"`
	TableName string                 `json:"table_name"`
	RecordID  string                 `json:"record_id"`
	OldData   map[string]interface{} `json:"old_data,omitempty"`
	NewData   map[string]interface{} `json:"new_data,omitempty"`
	Actor     ShortUserDTO           `json:"actor"`
	CreatedAt string                 `json:"created_at"`
}
