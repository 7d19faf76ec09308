package service

import (
	"context"
	"testing"

	"github.com/findme-ke/findme-api/internal/dto"
	apperrors "github.com/findme-ke/findme-api/internal/errors"
	"github.com/findme-ke/findme-api/internal/model"
	"github.com/findme-ke/findme-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPersonService(t *testing.T) (*MissingPersonService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewMissingPersonService(repository.NewMissingPersonRepository(db)), db
}

func createServiceUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	user := &model.User{Name: "Reporter", Email: email, PasswordHash: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

func TestMissingPersonService_Create_DefaultsStatus(t *testing.T) {
	svc, db := newPersonService(t)
	ownerID := createServiceUser(t, db, "owner@example.com")

	created, err := svc.Create(context.Background(), ownerID, newCreateRequest("John Kamau"))
	require.NoError(t, err)
	assert.Equal(t, model.StatusMissing, created.Status)
	assert.Equal(t, ownerID, created.UserID)
	assert.Nil(t, created.CaseNumber)
}

func TestMissingPersonService_Create_EmptyCaseNumberBecomesNull(t *testing.T) {
	svc, db := newPersonService(t)
	ownerID := createServiceUser(t, db, "owner@example.com")
	ctx := context.Background()

	// two reports with an empty case number must not collide
	first := newCreateRequest("First")
	first.CaseNumber = strPtr("")
	_, err := svc.Create(ctx, ownerID, first)
	require.NoError(t, err)

	second := newCreateRequest("Second")
	second.CaseNumber = strPtr("")
	_, err = svc.Create(ctx, ownerID, second)
	require.NoError(t, err)
}

func TestMissingPersonService_Create_DuplicateCaseNumber(t *testing.T) {
	svc, db := newPersonService(t)
	ownerID := createServiceUser(t, db, "owner@example.com")
	ctx := context.Background()

	first := newCreateRequest("First")
	first.CaseNumber = strPtr("MP001")
	_, err := svc.Create(ctx, ownerID, first)
	require.NoError(t, err)

	second := newCreateRequest("Second")
	second.CaseNumber = strPtr("MP001")
	_, err = svc.Create(ctx, ownerID, second)
	require.ErrorIs(t, err, apperrors.ErrCaseNumberExists)
}

func TestMissingPersonService_Create_InvalidStatus(t *testing.T) {
	svc, db := newPersonService(t)
	ownerID := createServiceUser(t, db, "owner@example.com")

	req := newCreateRequest("Bad Status")
	req.Status = "vanished"
	_, err := svc.Create(context.Background(), ownerID, req)
	require.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestMissingPersonService_GetByID_NotFound(t *testing.T) {
	svc, _ := newPersonService(t)

	_, err := svc.GetByID(context.Background(), 9999)
	require.ErrorIs(t, err, apperrors.ErrReportNotFound)
}

func TestMissingPersonService_Update_OwnerOnly(t *testing.T) {
	svc, db := newPersonService(t)
	ownerID := createServiceUser(t, db, "owner@example.com")
	strangerID := createServiceUser(t, db, "stranger@example.com")
	ctx := context.Background()

	created, err := svc.Create(ctx, ownerID, newCreateRequest("Mary Njeri"))
	require.NoError(t, err)

	newStatus := model.StatusFound
	_, err = svc.Update(ctx, created.ID, strangerID, &dto.UpdateMissingPersonRequest{Status: &newStatus})
	require.ErrorIs(t, err, apperrors.ErrForbidden)

	// the rejected update must not leak through
	unchanged, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusMissing, unchanged.Status)

	updated, err := svc.Update(ctx, created.ID, ownerID, &dto.UpdateMissingPersonRequest{Status: &newStatus})
	require.NoError(t, err)
	assert.Equal(t, model.StatusFound, updated.Status)
}

func TestMissingPersonService_Update_EmptyRequest(t *testing.T) {
	svc, db := newPersonService(t)
	ownerID := createServiceUser(t, db, "owner@example.com")
	ctx := context.Background()

	created, err := svc.Create(ctx, ownerID, newCreateRequest("Mary Njeri"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, ownerID, &dto.UpdateMissingPersonRequest{})
	require.ErrorIs(t, err, apperrors.ErrEmptyUpdate)
}

func TestMissingPersonService_Update_MissingReportBeforeOwnership(t *testing.T) {
	svc, db := newPersonService(t)
	strangerID := createServiceUser(t, db, "stranger@example.com")

	// a nonexistent report reads as not-found even for a non-owner
	newStatus := model.StatusFound
	_, err := svc.Update(context.Background(), 9999, strangerID, &dto.UpdateMissingPersonRequest{Status: &newStatus})
	require.ErrorIs(t, err, apperrors.ErrReportNotFound)
}

func TestMissingPersonService_Update_InvalidStatus(t *testing.T) {
	svc, db := newPersonService(t)
	ownerID := createServiceUser(t, db, "owner@example.com")
	ctx := context.Background()

	created, err := svc.Create(ctx, ownerID, newCreateRequest("Mary Njeri"))
	require.NoError(t, err)

	bad := "vanished"
	_, err = svc.Update(ctx, created.ID, ownerID, &dto.UpdateMissingPersonRequest{Status: &bad})
	require.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestMissingPersonService_Delete(t *testing.T) {
	svc, db := newPersonService(t)
	ownerID := createServiceUser(t, db, "owner@example.com")
	strangerID := createServiceUser(t, db, "stranger@example.com")
	ctx := context.Background()

	created, err := svc.Create(ctx, ownerID, newCreateRequest("To Delete"))
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, created.ID, strangerID), apperrors.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, created.ID, ownerID))

	_, err = svc.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, apperrors.ErrReportNotFound)

	require.ErrorIs(t, svc.Delete(ctx, created.ID, ownerID), apperrors.ErrReportNotFound)
}

func TestMissingPersonService_SetPhotoURL(t *testing.T) {
	svc, db := newPersonService(t)
	ownerID := createServiceUser(t, db, "owner@example.com")
	strangerID := createServiceUser(t, db, "stranger@example.com")
	ctx := context.Background()

	created, err := svc.Create(ctx, ownerID, newCreateRequest("With Photo"))
	require.NoError(t, err)

	_, err = svc.SetPhotoURL(ctx, created.ID, strangerID, "https://photos.example.com/x.jpg")
	require.ErrorIs(t, err, apperrors.ErrForbidden)

	updated, err := svc.SetPhotoURL(ctx, created.ID, ownerID, "https://photos.example.com/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://photos.example.com/x.jpg", updated.PhotoURL)
}

func TestMissingPersonService_GetByOwner(t *testing.T) {
	svc, db := newPersonService(t)
	aliceID := createServiceUser(t, db, "alice@example.com")
	bobID := createServiceUser(t, db, "bob@example.com")
	ctx := context.Background()

	_, err := svc.Create(ctx, aliceID, newCreateRequest("Alice Report"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, bobID, newCreateRequest("Bob Report"))
	require.NoError(t, err)

	mine, err := svc.GetByOwner(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Alice Report", mine[0].FullName)

	// owner with no reports gets an empty list, not null
	none, err := svc.GetByOwner(ctx, bobID+100)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
