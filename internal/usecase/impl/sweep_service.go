package impl

import (
	"context"
	"log/slog"

	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/repository"
	"landmarket/internal/domain/service"
	"landmarket/internal/usecase"

	"github.com/pkg/errors"
)

type sweepService struct {
	listingRepo  repository.ListingRepository
	evidenceRepo repository.EvidenceRepository
	blobs        service.BlobStore
	logger       *slog.Logger
}

// NewSweepService creates a new sweep service instance
func NewSweepService(
	listingRepo repository.ListingRepository,
	evidenceRepo repository.EvidenceRepository,
	blobs service.BlobStore,
	logger *slog.Logger,
) usecase.SweepUsecase {
	return &sweepService{
		listingRepo:  listingRepo,
		evidenceRepo: evidenceRepo,
		blobs:        blobs,
		logger:       logger,
	}
}

func (srv *sweepService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SweepOrphanedEvidence deletes evidence whose listing no longer exists.
// It returns the number of evidence documents removed.
func (srv *sweepService) SweepOrphanedEvidence(ctx context.Context) (int, error) {
	listingIDs, err := srv.evidenceRepo.ListingIDs(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list evidence listing ids")
	}

	removed := 0
	for _, listingID := range listingIDs {
		if err := ctx.Err(); err != nil {
			return removed, errors.WithStack(err)
		}

		exists, err := srv.listingRepo.Exists(ctx, listingID)
		if err != nil {
			srv.log(ctx).Warn("Sweep skipped listing", slog.String("listing_id", listingID), slog.Any("error", err))

			continue
		}
		if exists {
			continue
		}

		evidence, err := srv.evidenceRepo.FindByListing(ctx, listingID)
		if err != nil {
			srv.log(ctx).Warn("Sweep could not load orphaned evidence", slog.String("listing_id", listingID), slog.Any("error", err))

			continue
		}

		for _, ev := range evidence {
			if ev.StoragePath == "" {
				continue
			}
			if err := srv.blobs.Delete(ctx, ev.StoragePath); err != nil && !errors.Is(err, service.ErrBlobNotFound) {
				srv.log(ctx).Warn("Sweep could not delete evidence blob", slog.String("path", ev.StoragePath), slog.Any("error", err))
			}
		}

		n, err := srv.evidenceRepo.DeleteByListing(ctx, listingID)
		if err != nil {
			srv.log(ctx).Warn("Sweep could not delete orphaned evidence", slog.String("listing_id", listingID), slog.Any("error", err))

			continue
		}
		removed += n
	}

	srv.log(ctx).Info("Orphaned evidence sweep finished", slog.Int("removed", removed), slog.Int("listings_checked", len(listingIDs)))

	return removed, nil
}
