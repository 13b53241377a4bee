package services

import (
	"context"

	"go.uber.org/zap"

	"uyumplast-system/internal/entities"
	"uyumplast-system/internal/repositories"
)

type RoleServiceInterface interface {
	ListRoles(ctx context.Context) ([]entities.Role, error)
	ListPermissions(ctx context.Context) ([]entities.Permission, error)
}

// RoleService - справочники ролей и привилегий для админской части.
type RoleService struct {
	roleRepo       repositories.RoleRepositoryInterface
	permissionRepo repositories.PermissionRepositoryInterface
	logger         *zap.Logger
}

func NewRoleService(
	roleRepo repositories.RoleRepositoryInterface,
	permissionRepo repositories.PermissionRepositoryInterface,
	logger *zap.Logger,
) RoleServiceInterface {
	return &RoleService{roleRepo: roleRepo, permissionRepo: permissionRepo, logger: logger}
}

func (s *RoleService) ListRoles(ctx context.Context) ([]entities.Role, error) {
	return s.roleRepo.GetRoles(ctx)
}

func (s *RoleService) ListPermissions(ctx context.Context) ([]entities.Permission, error) {
	return s.permissionRepo.GetPermissions(ctx)
}
