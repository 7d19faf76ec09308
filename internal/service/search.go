package service

import (
	"context"
	"math"

	"github.com/findme-ke/findme-api/internal/dto"
	apperrors "github.com/findme-ke/findme-api/internal/errors"
	"github.com/findme-ke/findme-api/internal/model"
	"github.com/findme-ke/findme-api/internal/repository"
	ctxutil "github.com/findme-ke/findme-api/pkg/context"
	"github.com/findme-ke/findme-api/pkg/logger"
)

// DefaultRecentDays is the window for the recent-reports listing
const DefaultRecentDays = 7

type SearchService struct {
	repo *repository.MissingPersonRepository
}

func NewSearchService(repo *repository.MissingPersonRepository) *SearchService {
	return &SearchService{repo: repo}
}

// Search runs the composed filter query and wraps the page in pagination
// metadata. A page past the end returns an empty slice with accurate totals.
func (s *SearchService) Search(ctx context.Context, filters dto.SearchFilters, page, perPage int) (*dto.SearchResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Search")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	offset := (page - 1) * perPage

	persons, total, err := s.repo.Search(ctx, filters, perPage, offset)
	if err != nil {
		logger.ErrorWithContext(ctx, "Search failed").
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	return &dto.SearchResponse{
		Results:    dto.NewMissingPersonResponses(persons),
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// FilterByLocation returns every report whose last-seen location contains the
// substring, no pagination
func (s *SearchService) FilterByLocation(ctx context.Context, location string) ([]dto.MissingPersonResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "FilterByLocation")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	persons, err := s.repo.FilterByLocation(ctx, location)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewMissingPersonResponses(persons), nil
}

// Recent returns reports created within the last N days, newest first
func (s *SearchService) Recent(ctx context.Context, days int) ([]dto.MissingPersonResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Recent")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	if days <= 0 {
		days = DefaultRecentDays
	}

	persons, err := s.repo.GetRecent(ctx, days)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewMissingPersonResponses(persons), nil
}

// Statistics aggregates report counts by status. Status is constrained to
// the three enumerated values at write time, so the per-status counts always
// sum to the total.
func (s *SearchService) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "Statistics")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	stats := &dto.StatisticsResponse{
		Missing: counts[model.StatusMissing],
		Found:   counts[model.StatusFound],
		Closed:  counts[model.StatusClosed],
	}
	stats.Total = stats.Missing + stats.Found + stats.Closed

	return stats, nil
}

// QuickSearch matches the term against name, location, contact name and
// distinguishing features. An empty term is a valid query with no results.
func (s *SearchService) QuickSearch(ctx context.Context, term string) ([]dto.MissingPersonResponse, error) {
	ctx = context.WithValue(ctx, ctxutil.FunctionKey, "QuickSearch")
	ctx = context.WithValue(ctx, ctxutil.ModuleKey, "service")

	if term == "" {
		return []dto.MissingPersonResponse{}, nil
	}

	persons, err := s.repo.QuickSearch(ctx, term)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewMissingPersonResponses(persons), nil
}
