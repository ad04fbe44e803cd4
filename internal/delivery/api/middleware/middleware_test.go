package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"landmarket/config"
	"landmarket/internal/delivery/api/response"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
	mockUC "landmarket/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockUC.MockIdentityUsecase) {
	identityUC := mockUC.NewMockIdentityUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{SessionCookieName: "__session"}}

	return NewSessionMiddleware(identityUC, cfg), identityUC
}

func callerEcho(handlers ...echo.MiddlewareFunc) (*echo.Echo, **entity.Caller) {
	var seen *entity.Caller
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetCaller(c)

		return c.NoContent(http.StatusNoContent)
	}, handlers...)

	return e, &seen
}

func do(e *echo.Echo, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "__session", Value: cookie})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestSessionMiddleware_Resolve(t *testing.T) {
	t.Run("anonymous request passes without resolving", func(t *testing.T) {
		m, _ := newSessionMiddleware(t)
		e, seen := callerEcho(m.Resolve)

		rec := do(e, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Nil(t, *seen)
	})

	t.Run("valid cookie attaches caller", func(t *testing.T) {
		m, identityUC := newSessionMiddleware(t)
		caller := &entity.Caller{ID: "u-1", Role: entity.RoleBuyer}
		identityUC.EXPECT().ResolveCaller(mock.Anything, "good").Return(caller).Once()
		e, seen := callerEcho(m.Resolve)

		rec := do(e, "good")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, caller, *seen)
	})

	t.Run("invalid cookie stays anonymous", func(t *testing.T) {
		m, identityUC := newSessionMiddleware(t)
		identityUC.EXPECT().ResolveCaller(mock.Anything, "bad").Return(nil).Once()
		e, seen := callerEcho(m.Resolve)

		rec := do(e, "bad")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Nil(t, *seen)
	})
}

func TestSessionMiddleware_RequireCaller(t *testing.T) {
	m, identityUC := newSessionMiddleware(t)
	identityUC.EXPECT().ResolveCaller(mock.Anything, "bad").Return(nil).Once()
	e, _ := callerEcho(m.Resolve, m.RequireCaller)

	rec := do(e, "bad")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name   string
		caller *entity.Caller
		want   int
	}{
		{name: "anonymous", caller: nil, want: http.StatusUnauthorized},
		{name: "buyer", caller: &entity.Caller{ID: "b", Role: entity.RoleBuyer}, want: http.StatusForbidden},
		{name: "seller", caller: &entity.Caller{ID: "s", Role: entity.RoleSeller}, want: http.StatusForbidden},
		{name: "admin", caller: &entity.Caller{ID: "a", Role: entity.RoleAdmin}, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, identityUC := newSessionMiddleware(t)
			cookie := ""
			if tt.caller != nil {
				cookie = "token-" + tt.caller.ID
				identityUC.EXPECT().ResolveCaller(mock.Anything, cookie).Return(tt.caller).Once()
			}
			e, _ := callerEcho(m.Resolve, m.RequireRole(entity.RoleAdmin))

			rec := do(e, cookie)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "app error keeps its status",
			err:      errors.Wrap(domainerrors.ErrListingNotFound, "load listing"),
			wantCode: http.StatusNotFound,
			wantBody: "LISTING_NOT_FOUND",
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantCode: http.StatusMethodNotAllowed,
			wantBody: "HTTP_ERROR",
		},
		{
			name:     "unknown error hides details",
			err:      errors.New("firestore: connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Error.Code)
			assert.Nil(t, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}
