package handler

import (
	"log/slog"
	"net/http"
	"time"

	"landmarket/config"
	"landmarket/internal/delivery/api/response"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/constants"
	"landmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// SessionHandler exchanges identity tokens for session cookies.
type SessionHandler struct {
	identityUC usecase.IdentityUsecase
	cookieName string
	secure     bool
	logger     *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		identityUC: params.IdentityUC,
		cookieName: params.Config.Auth.SessionCookieName,
		secure:     params.Config.Env.Env != constants.EnvDevelop,
		logger:     params.Logger,
	}
}

// CreateSessionRequest carries the short-lived identity token from the client SDK.
type CreateSessionRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// CreateSession sets the session cookie.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if ok, err := bindAndValidate(c, &req, "Invalid session request"); !ok {
		return err
	}

	cookie, ttl, err := h.identityUC.CreateSession(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.cookie(cookie, int(ttl/time.Second)))

	return response.OK(c)
}

// DeleteSession revokes the session and clears the cookie. It never fails.
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	if token := deliverycontext.GetSessionToken(c); token != "" {
		h.identityUC.RevokeSession(c.Request().Context(), token)
	}

	c.SetCookie(h.cookie("", -1))

	return response.OK(c)
}

func (h *SessionHandler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
