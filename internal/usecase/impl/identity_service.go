// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"landmarket/config"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
	"landmarket/internal/domain/repository"
	"landmarket/internal/domain/service"
	"landmarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	identity   service.IdentityProvider
	userRepo   repository.UserRepository
	sessionTTL time.Duration
	logger     *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	Identity service.IdentityProvider
	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	ttl := 5 * 24 * time.Hour
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionTTL > 0 {
		ttl = params.Config.Auth.SessionTTL
	}

	return &identityService{
		identity:   params.Identity,
		userRepo:   params.UserRepo,
		sessionTTL: ttl,
		logger:     params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveCaller decodes a session credential into the caller's id and role.
func (srv *identityService) ResolveCaller(ctx context.Context, sessionToken string) *entity.Caller {
	sessionToken = strings.TrimSpace(sessionToken)
	if sessionToken == "" {
		return nil
	}

	ident, err := srv.identity.VerifySessionCookie(ctx, sessionToken)
	if err != nil {
		srv.log(ctx).Debug("Session credential rejected", slog.Any("error", err))

		return nil
	}

	profile, err := srv.userRepo.FindByUID(ctx, ident.UID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Failed to load caller profile", slog.String("uid", ident.UID), slog.Any("error", err))
		}

		return nil
	}

	return &entity.Caller{
		ID:    profile.UID,
		Email: profile.Email,
		Role:  profile.Role,
	}
}

// CreateSession exchanges a short-lived identity token for a session credential.
func (srv *identityService) CreateSession(ctx context.Context, idToken string) (string, time.Duration, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return "", 0, domainerrors.ErrInvalidIDToken
	}

	cookie, err := srv.identity.CreateSessionCookie(ctx, idToken, srv.sessionTTL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			return "", 0, domainerrors.ErrInvalidIDToken
		}

		return "", 0, errors.Wrap(err, "failed to create session cookie")
	}

	return cookie, srv.sessionTTL, nil
}

// RevokeSession revokes the sessions behind the credential.
func (srv *identityService) RevokeSession(ctx context.Context, sessionToken string) {
	if strings.TrimSpace(sessionToken) == "" {
		return
	}

	ident, err := srv.identity.VerifySessionCookie(ctx, sessionToken)
	if err != nil {
		return
	}

	if err := srv.identity.RevokeSessions(ctx, ident.UID); err != nil {
		srv.log(ctx).Warn("Failed to revoke sessions", slog.String("uid", ident.UID), slog.Any("error", err))
	}
}
