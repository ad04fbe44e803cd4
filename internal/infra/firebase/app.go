// Package firebase builds the shared Firebase application and the Firestore client.
package firebase

import (
	"context"
	"log/slog"
	"os"

	"landmarket/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params holds the dependencies of the Firebase constructors.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Module provides the Firebase app and the Firestore client.
var Module = fx.Options(
	fx.Provide(NewApp, NewFirestore),
)

// NewApp creates the Firebase application from the configured project and credentials.
func NewApp(params Params) (*firebase.App, error) {
	app, err := firebase.NewApp(params.Ctx, appConfig(params.Config), clientOptions(params.Config)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	return app, nil
}

// NewFirestore creates the Firestore client and closes it when the application stops.
func NewFirestore(params Params, app *firebase.App) (*firestore.Client, error) {
	var (
		client *firestore.Client
		err    error
	)

	cfg := params.Config.Firebase
	if cfg != nil && cfg.DatabaseID != "" {
		client, err = firestore.NewClientWithDatabase(params.Ctx, cfg.ProjectID, cfg.DatabaseID, clientOptions(params.Config)...)
	} else {
		client, err = app.Firestore(params.Ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	if host := os.Getenv("FIRESTORE_EMULATOR_HOST"); host != "" {
		params.Logger.Info("Using Firestore emulator", slog.String("host", host))
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

// NewMessaging creates the Cloud Messaging client used for seller pushes.
func NewMessaging(ctx context.Context, app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create messaging client")
	}

	return client, nil
}

func appConfig(cfg *config.Config) *firebase.Config {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil
	}

	return &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
}

func clientOptions(cfg *config.Config) []option.ClientOption {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return nil
	}
	if _, err := os.Stat(cfg.Firebase.CredentialsPath); err != nil {
		// Fall back to application default credentials.
		return nil
	}

	return []option.ClientOption{option.WithCredentialsFile(cfg.Firebase.CredentialsPath)}
}
