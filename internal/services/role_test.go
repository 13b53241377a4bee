package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"uyumplast-system/internal/entities"
	"uyumplast-system/pkg/utils"
)

type fakeRoleRepo struct {
	roles []entities.Role
}

func (f *fakeRoleRepo) GetRoles(_ context.Context) ([]entities.Role, error) {
	return f.roles, nil
}

type fakePermissionRepo struct {
	namesByRole map[uint64][]string
	permissions []entities.Permission
}

func (f *fakePermissionRepo) GetPermissionsNamesByRoleID(_ context.Context, roleID uint64) ([]string, error) {
	return f.namesByRole[roleID], nil
}

func (f *fakePermissionRepo) GetPermissions(_ context.Context) ([]entities.Permission, error) {
	return f.permissions, nil
}

func TestRoleServiceListsDictionaries(t *testing.T) {
	roleRepo := &fakeRoleRepo{roles: []entities.Role{
		{ID: 1, Name: "admin", Description: utils.StringPtr("Администратор системы")},
		{ID: 2, Name: "manager"},
	}}
	permRepo := &fakePermissionRepo{permissions: []entities.Permission{
		{ID: 1, Name: "orders:view"},
		{ID: 2, Name: "superuser"},
	}}
	svc := NewRoleService(roleRepo, permRepo, zap.NewNop())

	roles, err := svc.ListRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "admin", roles[0].Name)

	permissions, err := svc.ListPermissions(context.Background())
	require.NoError(t, err)
	require.Len(t, permissions, 2)
	assert.Equal(t, "superuser", permissions[1].Name)
}
