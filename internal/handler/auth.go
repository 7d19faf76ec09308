package handler

import (
	"net/http"

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

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register creates a new user and returns a bearer token
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Register")

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid registration request").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("validation failed", validation.ItemizeBindingError(err)))
		return
	}

	response, err := h.userService.Register(ctx, &req)
	if err != nil {
		logger.WarnWithContext(ctx, "Registration failed").
			String("email", req.Email).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusCreated, constants.BuildSuccessResponse("user registered successfully", response))
}

// Login verifies credentials and returns a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Login")

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid login request").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("validation failed", validation.ItemizeBindingError(err)))
		return
	}

	response, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		logger.WarnWithContext(ctx, "Login failed").
			String("email", req.Email).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	logger.InfoWithContext(ctx, "User logged in").
		Int("user_id", int(response.User.ID)).
		Log()

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("login successful", response))
}

// Me returns the caller's own user record
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Me")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(apperrors.ErrAuthRequired.Message, nil))
		return
	}
	ctx = ctxutil.WithUserID(ctx, callerID)

	user, err := h.userService.GetByID(ctx, callerID)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("", user))
}
