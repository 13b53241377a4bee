package contextkeys

type contextKey string

const (
	UserIDKey             contextKey = "userID"
	RoleIDKey             contextKey = "roleID"
	UserPermissionsMapKey contextKey = "userPermissionsMap"
)
