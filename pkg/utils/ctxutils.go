package utils

import (
	"context"
	"database/sql"

	"uyumplast-system/pkg/contextkeys"
	apperrors "uyumplast-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserNotFound
	}
	return userID, nil
}

func GetUserRoleIDFromCtx(ctx context.Context) (uint64, error) {
	roleID, ok := ctx.Value(contextkeys.RoleIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserNotFound
	}
	return roleID, nil
}

func NullStringToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func NullInt64ToUint64(ni sql.NullInt64) uint64 {
	if !ni.Valid {
		return 0
	}
	return uint64(ni.Int64)
}
