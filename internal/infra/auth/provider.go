// Package auth provides the identity providers behind session handling.
package auth

import (
	"context"
	"log/slog"

	"landmarket/config"
	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// IdentityParams holds the dependencies for NewIdentityProvider.
type IdentityParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// Module provides the configured identity provider.
var Module = fx.Options(
	fx.Provide(NewIdentityProvider),
)

// NewIdentityProvider selects the identity provider from auth.provider.
func NewIdentityProvider(params IdentityParams) (service.IdentityProvider, error) {
	provider := constants.AuthProviderLocal
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = params.Config.Auth.Provider
	}

	switch provider {
	case constants.AuthProviderFirebase:
		client, err := params.App.Auth(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create firebase auth client")
		}
		params.Logger.Info("Using Firebase identity provider")

		return NewFirebaseIdentity(client), nil
	case constants.AuthProviderLocal:
		params.Logger.Warn("Using local HS256 identity provider, not for production use")

		var secret string
		if params.Config.Auth != nil {
			secret = params.Config.Auth.LocalSecret
		}

		return NewLocalIdentity(secret)
	default:
		return nil, errors.Errorf("unknown auth provider %q", provider)
	}
}
