package service

import (
	"context"
	"testing"
	"time"

	"github.com/findme-ke/findme-api/internal/dto"
	"github.com/findme-ke/findme-api/internal/model"
	"github.com/findme-ke/findme-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSearchService(t *testing.T) (*SearchService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewSearchService(repository.NewMissingPersonRepository(db)), db
}

func seedSearchReports(t *testing.T, db *gorm.DB, count int) {
	t.Helper()
	ownerID := createServiceUser(t, db, "seeder@example.com")
	personSvc := NewMissingPersonService(repository.NewMissingPersonRepository(db))
	ctx := context.Background()

	statuses := []string{model.StatusMissing, model.StatusFound, model.StatusClosed}
	for i := 0; i < count; i++ {
		req := newCreateRequest("Seeded Person")
		req.Status = statuses[i%len(statuses)]
		req.LastSeenDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		_, err := personSvc.Create(ctx, ownerID, req)
		require.NoError(t, err)
	}
}

func TestSearchService_PaginationMetadata(t *testing.T) {
	svc, db := newSearchService(t)
	seedSearchReports(t, db, 7)
	ctx := context.Background()

	page1, err := svc.Search(ctx, dto.SearchFilters{}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), page1.Total)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, 3, page1.PerPage)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Len(t, page1.Results, 3)

	page3, err := svc.Search(ctx, dto.SearchFilters{}, 3, 3)
	require.NoError(t, err)
	assert.Len(t, page3.Results, 1)

	// out of range: empty page, totals intact
	page9, err := svc.Search(ctx, dto.SearchFilters{}, 9, 3)
	require.NoError(t, err)
	assert.Empty(t, page9.Results)
	assert.NotNil(t, page9.Results)
	assert.Equal(t, int64(7), page9.Total)
	assert.Equal(t, 3, page9.TotalPages)
}

func TestSearchService_NoMatches(t *testing.T) {
	svc, db := newSearchService(t)
	seedSearchReports(t, db, 3)

	resp, err := svc.Search(context.Background(), dto.SearchFilters{Name: "nonexistent"}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
	assert.Equal(t, 0, resp.TotalPages)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestSearchService_Statistics(t *testing.T) {
	svc, db := newSearchService(t)
	seedSearchReports(t, db, 7) // 3 missing, 2 found, 2 closed

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Missing)
	assert.Equal(t, int64(2), stats.Found)
	assert.Equal(t, int64(2), stats.Closed)
	assert.Equal(t, stats.Missing+stats.Found+stats.Closed, stats.Total)
}

func TestSearchService_Statistics_EmptyTable(t *testing.T) {
	svc, _ := newSearchService(t)

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, int64(0), stats.Missing)
}

func TestSearchService_QuickSearch_EmptyTerm(t *testing.T) {
	svc, db := newSearchService(t)
	seedSearchReports(t, db, 3)

	results, err := svc.QuickSearch(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchService_Recent_DefaultWindow(t *testing.T) {
	svc, db := newSearchService(t)
	seedSearchReports(t, db, 2)

	results, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
