package main

import (
	"context"
	"log/slog"
	"os"

	"landmarket/config"
	"landmarket/internal/delivery"
	"landmarket/internal/delivery/api"
	"landmarket/internal/infra/ai"
	"landmarket/internal/infra/auth"
	"landmarket/internal/infra/cache"
	"landmarket/internal/infra/firebase"
	"landmarket/internal/infra/geo"
	logs "landmarket/internal/infra/log"
	"landmarket/internal/infra/persistence/docstore"
	"landmarket/internal/infra/pubsub"
	"landmarket/internal/infra/qrcode"
	"landmarket/internal/infra/storage"
	"landmarket/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebase.Module,
		storage.Module,
	)
}

func injectRepo() fx.Option {
	return docstore.Module
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		ai.Module,
		cache.Module,
		geo.Module,
		pubsub.Module,
		qrcode.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewProfileService,
			impl.NewListingService,
			impl.NewSearchService,
			impl.NewReviewService,
			impl.NewModerationService,
			impl.NewConversationService,
			impl.NewSavedSearchService,
		),
	)
}

func injectHandler() fx.Option {
	return api.Module
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
