// Package context carries per-request values (request id, scoped logger, caller)
// between echo handlers and the usecase layer.
package context

import (
	"context"
	"log/slog"

	"landmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces values stored by this package.
type ContextKey string

const (
	KeyRequestID    ContextKey = "request_id"
	KeyLogger       ContextKey = "logger"
	KeyCaller       ContextKey = "caller"
	KeySessionToken ContextKey = "session_token"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id assigned by the request id middleware, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when no id was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault prefers the request-scoped logger over fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetCaller stores the resolved caller on both the echo and the request context,
// and tags the request logger with the caller's id and role.
func SetCaller(c echo.Context, caller *entity.Caller) {
	c.Set(string(KeyCaller), caller)
	if caller == nil {
		return
	}

	ctx := c.Request().Context()
	ctx = context.WithValue(ctx, KeyCaller, caller)
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(
			slog.String("caller_id", caller.ID),
			slog.String("caller_role", string(caller.Role)),
		))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetCaller returns nil for anonymous requests.
func GetCaller(c echo.Context) *entity.Caller {
	caller, _ := c.Get(string(KeyCaller)).(*entity.Caller)

	return caller
}

// CallerFromContext is the context.Context counterpart of GetCaller.
func CallerFromContext(ctx context.Context) *entity.Caller {
	caller, _ := ctx.Value(KeyCaller).(*entity.Caller)

	return caller
}

func SetSessionToken(c echo.Context, token string) {
	c.Set(string(KeySessionToken), token)
}

func GetSessionToken(c echo.Context) string {
	token, _ := c.Get(string(KeySessionToken)).(string)

	return token
}
