package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/findme-ke/findme-api/internal/constants"
	apperrors "github.com/findme-ke/findme-api/internal/errors"
	"github.com/findme-ke/findme-api/internal/service"
	"github.com/findme-ke/findme-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by RequireAuth for downstream handlers
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

type JWTMiddleware struct {
	jwtService *service.JWTService
}

func NewJWTMiddleware(jwtService *service.JWTService) *JWTMiddleware {
	return &JWTMiddleware{jwtService: jwtService}
}

// RequireAuth resolves the caller identity from the Authorization header and
// aborts with 401 otherwise. A missing token, an expired token and a
// malformed token each get their own message so clients can tell "log in
// again" apart from a bad credential.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.GetLogger().Warn("Missing Authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(apperrors.ErrAuthRequired.Message, nil))
			c.Abort()
			return
		}

		// The Bearer prefix is optional: a bare token is accepted too
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := apperrors.ErrInvalidToken.Message
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = apperrors.ErrTokenExpired.Message
			}
			logger.GetLogger().Warn("Token validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err))
			c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(message, nil))
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)

		logger.GetLogger().Debug("Caller authenticated",
			zap.Uint("user_id", claims.UserID),
			zap.String("path", c.Request.URL.Path))

		c.Next()
	}
}

// CallerID returns the authenticated user ID set by RequireAuth
func CallerID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
