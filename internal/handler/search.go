package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/findme-ke/findme-api/internal/constants"
	"github.com/findme-ke/findme-api/internal/dto"
	apperrors "github.com/findme-ke/findme-api/internal/errors"
	"github.com/findme-ke/findme-api/internal/model"
	"github.com/findme-ke/findme-api/internal/service"
	ctxutil "github.com/findme-ke/findme-api/pkg/context"
	"github.com/findme-ke/findme-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET /api/search with the composed filter set
func (h *SearchHandler) Search(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Search")

	filters, err := parseSearchFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(err.Error(), nil))
		return
	}

	pagination := constants.ParsePaginationParams(c)

	response, err := h.searchService.Search(ctx, filters, pagination.Page, pagination.PerPage)
	if err != nil {
		logger.ErrorWithContext(ctx, "Search request failed").
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("", response))
}

// QuickSearch handles GET /api/search/quick?q=term
func (h *SearchHandler) QuickSearch(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "QuickSearch")

	term := strings.TrimSpace(c.Query("q"))

	results, err := h.searchService.QuickSearch(ctx, term)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(len(results), results))
}

// FilterByLocation handles GET /api/missing-persons/location/:location
func (h *SearchHandler) FilterByLocation(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "FilterByLocation")

	location := c.Param("location")

	results, err := h.searchService.FilterByLocation(ctx, location)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(len(results), results))
}

// Recent handles GET /api/missing-persons/recent?days=N
func (h *SearchHandler) Recent(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Recent")

	days := service.DefaultRecentDays
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("days must be a positive integer", nil))
			return
		}
		days = parsed
	}

	results, err := h.searchService.Recent(ctx, days)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(len(results), results))
}

// Statistics handles GET /api/missing-persons/stats
func (h *SearchHandler) Statistics(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Statistics")

	stats, err := h.searchService.Statistics(ctx)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("", stats))
}

func parseSearchFilters(c *gin.Context) (dto.SearchFilters, error) {
	filters := dto.SearchFilters{
		Name:     strings.TrimSpace(c.Query("name")),
		Location: strings.TrimSpace(c.Query("location")),
		Gender:   strings.TrimSpace(c.Query("gender")),
		Status:   strings.TrimSpace(c.Query("status")),
	}

	if filters.Status != "" && !model.ValidStatus(filters.Status) {
		return filters, apperrors.ErrInvalidStatus
	}

	if v := c.Query("age_min"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return filters, apperrors.NewDomainError("INVALID_FILTER", "age_min must be an integer")
		}
		filters.AgeMin = &age
	}
	if v := c.Query("age_max"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return filters, apperrors.NewDomainError("INVALID_FILTER", "age_max must be an integer")
		}
		filters.AgeMax = &age
	}

	if v := c.Query("date_from"); v != "" {
		t, err := parseDateParam(v)
		if err != nil {
			return filters, apperrors.NewDomainError("INVALID_FILTER", "date_from must be an ISO date")
		}
		filters.DateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := parseDateParam(v)
		if err != nil {
			return filters, apperrors.NewDomainError("INVALID_FILTER", "date_to must be an ISO date")
		}
		// A bare date means the whole day is included
		if len(v) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filters.DateTo = &t
	}

	return filters, nil
}

// parseDateParam accepts either a full RFC3339 timestamp or a bare date
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
