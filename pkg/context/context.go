package context

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ContextKey is the typed key used for request-scoped metadata
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	ClientIPKey  ContextKey = "client_ip"
	UserAgentKey ContextKey = "user_agent"
	UserIDKey    ContextKey = "user_id"
	ModuleKey    ContextKey = "module"
	FunctionKey  ContextKey = "function"
	StartTimeKey ContextKey = "start_time"
)

// NewContextWithRequest enriches a context with request metadata plus the
// module/function pair used by the structured logger
func NewContextWithRequest(ctx context.Context, r *http.Request, module, function string) context.Context {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	ctx = context.WithValue(ctx, ClientIPKey, clientIP(r))
	ctx = context.WithValue(ctx, UserAgentKey, r.UserAgent())
	ctx = context.WithValue(ctx, ModuleKey, module)
	ctx = context.WithValue(ctx, FunctionKey, function)
	ctx = context.WithValue(ctx, StartTimeKey, time.Now())

	return ctx
}

// WithUserID attaches the authenticated caller to the context
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, RequestIDKey)
}

func GetClientIP(ctx context.Context) string {
	return stringValue(ctx, ClientIPKey)
}

func GetUserAgent(ctx context.Context) string {
	return stringValue(ctx, UserAgentKey)
}

func GetModule(ctx context.Context) string {
	return stringValue(ctx, ModuleKey)
}

func GetFunction(ctx context.Context) string {
	return stringValue(ctx, FunctionKey)
}

// GetUserID returns the caller's user ID, or nil when the request is anonymous
func GetUserID(ctx context.Context) interface{} {
	return ctx.Value(UserIDKey)
}

// GetDuration reports how long the request has been in flight
func GetDuration(ctx context.Context) time.Duration {
	if start, ok := ctx.Value(StartTimeKey).(time.Time); ok {
		return time.Since(start)
	}
	return 0
}

func stringValue(ctx context.Context, key ContextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
