package handler

import (
	"net/http"
	"strconv"

	"github.com/findme-ke/findme-api/internal/constants"
	"github.com/findme-ke/findme-api/internal/dto"
	apperrors "github.com/findme-ke/findme-api/internal/errors"
	"github.com/findme-ke/findme-api/internal/middleware"
	"github.com/findme-ke/findme-api/internal/service"
	ctxutil "github.com/findme-ke/findme-api/pkg/context"
	"github.com/findme-ke/findme-api/pkg/logger"
	"github.com/findme-ke/findme-api/pkg/validation"
	"github.com/gin-gonic/gin"
)

// maxPhotoSize caps photo uploads at 10MB
const maxPhotoSize = 10 << 20

type MissingPersonHandler struct {
	personService *service.MissingPersonService
	photoService  *service.PhotoService
}

func NewMissingPersonHandler(personService *service.MissingPersonService, photoService *service.PhotoService) *MissingPersonHandler {
	return &MissingPersonHandler{
		personService: personService,
		photoService:  photoService,
	}
}

// Create handles POST /api/missing-persons
func (h *MissingPersonHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Create")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(apperrors.ErrAuthRequired.Message, nil))
		return
	}
	ctx = ctxutil.WithUserID(ctx, callerID)

	var req dto.CreateMissingPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid create report request").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("validation failed", validation.ItemizeBindingError(err)))
		return
	}

	response, err := h.personService.Create(ctx, callerID, &req)
	if err != nil {
		logger.WarnWithContext(ctx, "Report creation failed").
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusCreated, constants.BuildSuccessResponse("missing person report created", response))
}

// GetAll handles GET /api/missing-persons
func (h *MissingPersonHandler) GetAll(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "GetAll")

	reports, err := h.personService.GetAll(ctx)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("", reports))
}

// GetByID handles GET /api/missing-persons/:id
func (h *MissingPersonHandler) GetByID(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "GetByID")

	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("invalid report id", nil))
		return
	}

	report, err := h.personService.GetByID(ctx, id)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("", report))
}

// Mine handles GET /api/missing-persons/mine
func (h *MissingPersonHandler) Mine(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Mine")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(apperrors.ErrAuthRequired.Message, nil))
		return
	}
	ctx = ctxutil.WithUserID(ctx, callerID)

	reports, err := h.personService.GetByOwner(ctx, callerID)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("", reports))
}

// Update handles PUT /api/missing-persons/:id
func (h *MissingPersonHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Update")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(apperrors.ErrAuthRequired.Message, nil))
		return
	}
	ctx = ctxutil.WithUserID(ctx, callerID)

	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("invalid report id", nil))
		return
	}

	var req dto.UpdateMissingPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid update report request").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("validation failed", validation.ItemizeBindingError(err)))
		return
	}

	response, err := h.personService.Update(ctx, id, callerID, &req)
	if err != nil {
		logger.WarnWithContext(ctx, "Report update failed").
			Int("report_id", int(id)).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("updated successfully", response))
}

// Delete handles DELETE /api/missing-persons/:id
func (h *MissingPersonHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Delete")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(apperrors.ErrAuthRequired.Message, nil))
		return
	}
	ctx = ctxutil.WithUserID(ctx, callerID)

	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("invalid report id", nil))
		return
	}

	if err := h.personService.Delete(ctx, id, callerID); err != nil {
		logger.WarnWithContext(ctx, "Report deletion failed").
			Int("report_id", int(id)).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("missing person report deleted", nil))
}

// UploadPhoto handles POST /api/missing-persons/:id/photo. The photo goes to
// the object store first; the report row is only touched once a URL exists.
func (h *MissingPersonHandler) UploadPhoto(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "UploadPhoto")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(apperrors.ErrAuthRequired.Message, nil))
		return
	}
	ctx = ctxutil.WithUserID(ctx, callerID)

	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("invalid report id", nil))
		return
	}

	if !h.photoService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, constants.BuildErrorResponse("photo uploads are not configured", nil))
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("photo file is required", nil))
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("photo exceeds the 10MB limit", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("unable to read photo file", nil))
		return
	}
	defer file.Close()

	url, err := h.photoService.Upload(ctx, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	response, err := h.personService.SetPhotoURL(ctx, id, callerID, url)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("photo uploaded", response))
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
