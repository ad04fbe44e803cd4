package middleware

import (
	"landmarket/config"
	"landmarket/internal/delivery/api/response"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	"landmarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the session cookie into a caller.
type SessionMiddleware struct {
	identityUC usecase.IdentityUsecase
	cookieName string
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(identityUC usecase.IdentityUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		identityUC: identityUC,
		cookieName: cfg.Auth.SessionCookieName,
	}
}

// CookieName is the name of the session cookie.
func (m *SessionMiddleware) CookieName() string {
	return m.cookieName
}

// Resolve attaches the caller when the request carries a valid session.
// Anonymous requests pass through untouched.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		deliverycontext.SetSessionToken(c, cookie.Value)
		if caller := m.identityUC.ResolveCaller(c.Request().Context(), cookie.Value); caller != nil {
			deliverycontext.SetCaller(c, caller)
		}

		return next(c)
	}
}

// RequireCaller rejects anonymous requests with 401.
func (m *SessionMiddleware) RequireCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetCaller(c) == nil {
			return response.Unauthorized(c)
		}

		return next(c)
	}
}

// RequireRole rejects callers without one of the roles: 401 when anonymous, 403 otherwise.
func (m *SessionMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := deliverycontext.GetCaller(c)
			if caller == nil {
				return response.Unauthorized(c)
			}
			if !entity.RequireRole(caller, roles...).Allowed() {
				return response.Forbidden(c)
			}

			return next(c)
		}
	}
}
