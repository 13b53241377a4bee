package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"uyumplast-system/internal/repositories"
)

const rolePermissionsCacheTTL = 10 * time.Minute

type AuthPermissionServiceInterface interface {
	GetRolePermissionsNames(ctx context.Context, roleID uint64) ([]string, error)
	InvalidateRolePermissionsCache(ctx context.Context, roleID uint64) error
}

// AuthPermissionService отдаёт имена привилегий роли, кешируя их в Redis.
type AuthPermissionService struct {
	permissionRepo repositories.PermissionRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	logger         *zap.Logger
}

func NewAuthPermissionService(
	permissionRepo repositories.PermissionRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) AuthPermissionServiceInterface {
	return &AuthPermissionService{
		permissionRepo: permissionRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
	}
}

func rolePermissionsCacheKey(roleID uint64) string {
	return fmt.Sprintf("role_permissions:%d", roleID)
}

func (s *AuthPermissionService) GetRolePermissionsNames(ctx context.Context, roleID uint64) ([]string, error) {
	cacheKey := rolePermissionsCacheKey(roleID)

	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		var names []string
		if err := json.Unmarshal([]byte(cached), &names); err == nil {
			return names, nil
		}
	}

	names, err := s.permissionRepo.GetPermissionsNamesByRoleID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(names); err == nil {
		if err := s.cacheRepo.Set(ctx, cacheKey, string(payload), rolePermissionsCacheTTL); err != nil {
			// Недоступный кеш не блокирует авторизацию.
			s.logger.Warn("Не удалось записать привилегии роли в кеш",
				zap.Uint64("roleID", roleID), zap.Error(err))
		}
	}

	return names, nil
}

func (s *AuthPermissionService) InvalidateRolePermissionsCache(ctx context.Context, roleID uint64) error {
	return s.cacheRepo.Del(ctx, rolePermissionsCacheKey(roleID))
}
