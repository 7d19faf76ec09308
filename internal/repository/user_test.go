package repository

import (
	"context"
	"testing"

	"github.com/findme-ke/findme-api/internal/model"
	"github.com/findme-ke/findme-api/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{
		Name:         "Grace Wanjiku",
		Email:        "grace@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace Wanjiku", byID.Name)

	byEmail, err := repo.GetByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &model.User{Name: "First", Email: "dup@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, first))

	second := &model.User{Name: "Second", Email: "dup@example.com", PasswordHash: "hash"}
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err))
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	require.Error(t, err)
	assert.True(t, database.IsNotFound(err))
}
