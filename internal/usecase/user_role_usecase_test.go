package usecase

import (
	"context"
	"testing"

	"medops-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoleCreateAndGet(t *testing.T) {
	stores := newTestStores(t)

	role := mustCreateRole(t, stores, "Admin")

	retrieved, err := stores.userRoles.Get(context.Background(), role.RoleID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, role.RoleID, retrieved.RoleID)
	assert.Equal(t, "Admin", retrieved.RoleName)
}

func TestUserRoleCreateRejectsPresetID(t *testing.T) {
	stores := newTestStores(t)

	_, err := stores.userRoles.Create(context.Background(), &entity.UserRole{RoleID: 7, RoleName: "Admin"})
	assert.ErrorIs(t, err, ErrRoleIDOnCreate)
}

func TestUserRoleCreateRejectsBlankName(t *testing.T) {
	stores := newTestStores(t)

	_, err := stores.userRoles.Create(context.Background(), &entity.UserRole{})
	assert.Error(t, err)
}

func TestUserRoleGetMissingReturnsNil(t *testing.T) {
	stores := newTestStores(t)

	role, err := stores.userRoles.Get(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, role)
}

func TestUserRoleUpdate(t *testing.T) {
	stores := newTestStores(t)

	role := mustCreateRole(t, stores, "Admin")
	role.RoleName = "Administrator"

	updated, err := stores.userRoles.Update(context.Background(), role)
	require.NoError(t, err)
	assert.Equal(t, "Administrator", updated.RoleName)

	retrieved, err := stores.userRoles.Get(context.Background(), role.RoleID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, "Administrator", retrieved.RoleName)
	assert.Equal(t, role.RoleID, retrieved.RoleID)
}

func TestUserRoleUpdateMissing(t *testing.T) {
	stores := newTestStores(t)

	_, err := stores.userRoles.Update(context.Background(), &entity.UserRole{RoleID: 404, RoleName: "Ghost"})
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestUserRoleDelete(t *testing.T) {
	stores := newTestStores(t)

	role := mustCreateRole(t, stores, "Admin")

	deleted, err := stores.userRoles.Delete(context.Background(), role.RoleID)
	require.NoError(t, err)
	assert.True(t, deleted)

	retrieved, err := stores.userRoles.Get(context.Background(), role.RoleID)
	require.NoError(t, err)
	assert.Nil(t, retrieved)

	// Deleting again reports nothing removed instead of failing.
	deleted, err = stores.userRoles.Delete(context.Background(), role.RoleID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRoleDeleteCascadesAssignments(t *testing.T) {
	stores := newTestStores(t)

	role := mustCreateRole(t, stores, "Admin")
	user := mustCreateUser(t, stores, "admin@example.com", *role)
	require.Len(t, user.Roles, 1)

	deleted, err := stores.userRoles.Delete(context.Background(), role.RoleID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int64
	require.NoError(t, stores.db.Model(&entity.UserRoleAssignment{}).
		Where("role_id = ?", role.RoleID).Count(&count).Error)
	assert.Zero(t, count)

	retrieved, err := stores.users.Get(context.Background(), user.UserID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Empty(t, retrieved.Roles)
}
