package admin

import (
	"context"
	"testing"
	"time"

	"academy/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db, &AdminUser{}))
	return db
}

func TestAdminRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(newTestDB(t))

	a := &AdminUser{
		Username:     "root",
		PasswordHash: "hash",
		Role:         RoleSuperAdmin,
		Permissions:  []string{"admins:manage"},
		IsActive:     true,
	}
	require.NoError(t, repo.Create(ctx, a))
	assert.NotEmpty(t, a.ID)

	got, err := repo.GetByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, RoleSuperAdmin, got.Role)
	assert.Equal(t, []string{"admins:manage"}, got.Permissions)
	assert.Nil(t, got.LastLoginAt)
}

func TestAdminRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &AdminUser{Username: "root", PasswordHash: "h", Role: RoleAdmin, IsActive: true}))
	err := repo.Create(ctx, &AdminUser{Username: "root", PasswordHash: "h", Role: RoleAdmin, IsActive: true})
	assert.ErrorIs(t, err, ErrAdminExists)
}

func TestAdminRepository_NotFound(t *testing.T) {
	repo := NewAdminRepository(newTestDB(t))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAdminNotFound)

	err = repo.UpdateLastLogin(context.Background(), "missing-id", time.Now())
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestAdminRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(newTestDB(t))

	a := &AdminUser{Username: "root", PasswordHash: "h", Role: RoleAdmin, IsActive: true}
	require.NoError(t, repo.Create(ctx, a))

	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastLogin(ctx, a.ID, at))

	got, err := repo.GetByUsername(ctx, "root")
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, at.Equal(*got.LastLoginAt))
}

func TestAdminRepository_ListSortedByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(newTestDB(t))

	for _, name := range []string{"zoe", "amir"} {
		require.NoError(t, repo.Create(ctx, &AdminUser{Username: name, PasswordHash: "h", Role: RoleAdmin, IsActive: true}))
	}

	admins, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "amir", admins[0].Username)
	assert.Equal(t, "zoe", admins[1].Username)
}
