package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
	"landmarket/internal/domain/repository"
	"landmarket/internal/domain/service"
	"landmarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	listingRepo  repository.ListingRepository
	evidenceRepo repository.EvidenceRepository
	blobs        service.BlobStore
	enricher     service.EnrichmentService
	cache        service.ViewCache
	publisher    service.EventPublisher
	now          func() time.Time
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ListingRepo  repository.ListingRepository
	EvidenceRepo repository.EvidenceRepository
	Blobs        service.BlobStore
	Enricher     service.EnrichmentService
	Cache        service.ViewCache
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		listingRepo:  params.ListingRepo,
		evidenceRepo: params.EvidenceRepo,
		blobs:        params.Blobs,
		enricher:     params.Enricher,
		cache:        params.Cache,
		publisher:    params.Publisher,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReviewListing sets a listing's status, badge and rejection reason.
func (srv *reviewService) ReviewListing(ctx context.Context, caller *entity.Caller, id string, input *usecase.ReviewInput) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	if !input.Status.IsValid() {
		return domainerrors.ErrInvalidStatus
	}
	if input.Badge != nil && !input.Badge.IsValid() {
		return domainerrors.ErrInvalidBadge
	}

	review := repository.ListingReview{
		Status:     input.Status,
		Badge:      input.Badge,
		ReviewedAt: srv.now(),
	}

	if input.Status == entity.ListingStatusRejected {
		reason := strings.TrimSpace(input.RejectionReason)
		if reason == "" {
			return domainerrors.ErrRejectionReasonRequired
		}
		review.RejectionReason = &reason
	}

	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound
		}

		return errors.Wrap(err, "failed to find listing")
	}

	if err := srv.listingRepo.Review(ctx, id, review); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound
		}

		return errors.Wrap(err, "failed to review listing")
	}

	srv.log(ctx).Info("Listing reviewed",
		slog.String("listing_id", id),
		slog.String("status", string(input.Status)),
		slog.String("admin_id", caller.ID),
	)

	srv.invalidate(ctx, listingCacheKeys(listing)...)

	event := &service.ReviewEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      constants.EventListingReviewed,
		ListingID: id,
		OwnerID:   listing.OwnerID,
		Title:     listing.Title,
		Status:    string(input.Status),
	}
	if input.Badge != nil {
		event.Badge = string(*input.Badge)
	}
	if review.RejectionReason != nil {
		event.Reason = *review.RejectionReason
	}
	srv.publish(ctx, event)

	return nil
}

// BulkUpdateStatus sets the status of many listings in one atomic batch.
func (srv *reviewService) BulkUpdateStatus(ctx context.Context, caller *entity.Caller, ids []string, status entity.ListingStatus) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	if !status.IsValid() {
		return domainerrors.ErrInvalidStatus
	}
	if status == entity.ListingStatusRejected {
		return domainerrors.ErrInvalidStatus.WithDetails("rejection requires a reason and cannot be applied in bulk")
	}

	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("listingIds must not be empty")
	}
	if len(unique) > constants.MaxBatchWrites {
		return domainerrors.ErrBulkLimitExceeded.WithDetails(fmt.Sprintf("at most %d listings per request", constants.MaxBatchWrites))
	}

	if err := srv.listingRepo.BulkSetStatus(ctx, unique, status, srv.now()); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound
		}

		return errors.Wrap(err, "failed to bulk update listing status")
	}

	keys := []string{constants.CacheKeyHome, constants.CacheKeyAdminListings}
	for _, id := range unique {
		keys = append(keys, constants.CacheKeyListingPrefix+id)
	}
	srv.invalidate(ctx, keys...)

	srv.log(ctx).Info("Listings bulk updated",
		slog.Int("count", len(unique)),
		slog.String("status", string(status)),
		slog.String("admin_id", caller.ID),
	)

	return nil
}

// DeleteListing removes a listing, its evidence documents and their blobs.
// Blob cleanup is best-effort; the document batch is atomic.
func (srv *reviewService) DeleteListing(ctx context.Context, caller *entity.Caller, id string) (*usecase.DeleteListingResult, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	if !entity.CanManageListing(caller, listing).Allowed() {
		return nil, domainerrors.ErrAuthorizationRequired
	}

	evidence, err := srv.evidenceRepo.FindByListing(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect evidence")
	}

	result := &usecase.DeleteListingResult{}

	if listing.ImagePath != "" {
		if err := srv.blobs.Delete(ctx, listing.ImagePath); err != nil && !errors.Is(err, service.ErrBlobNotFound) {
			srv.log(ctx).Warn("Failed to delete listing image", slog.String("listing_id", id), slog.Any("error", err))
			result.Warnings = append(result.Warnings, usecase.Warning{
				Step:    StepImageDelete,
				Subject: listing.ImagePath,
				Message: "The listing image could not be removed from storage.",
			})
		} else if err == nil {
			result.BlobsDeleted++
		}
	}

	prefix := fmt.Sprintf("evidence/%s/%s/", listing.OwnerID, id)
	deleted, err := srv.blobs.DeletePrefix(ctx, prefix)
	if err != nil && !errors.Is(err, service.ErrBlobNotFound) {
		srv.log(ctx).Warn("Failed to delete evidence blobs", slog.String("listing_id", id), slog.Any("error", err))
		result.Warnings = append(result.Warnings, usecase.Warning{
			Step:    StepEvidenceDelete,
			Subject: prefix,
			Message: "Some evidence files could not be removed from storage.",
		})
	}
	result.BlobsDeleted += deleted

	evidenceIDs := make([]string, 0, len(evidence))
	for _, ev := range evidence {
		evidenceIDs = append(evidenceIDs, ev.ID)
	}

	if err := srv.listingRepo.DeleteWithEvidence(ctx, id, evidenceIDs); err != nil {
		return nil, errors.Wrap(err, "failed to delete listing")
	}
	result.EvidenceDeleted = len(evidenceIDs)

	srv.invalidate(ctx, listingCacheKeys(listing)...)
	srv.publish(ctx, &service.ReviewEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      constants.EventListingDeleted,
		ListingID: id,
		OwnerID:   listing.OwnerID,
		Title:     listing.Title,
	})

	srv.log(ctx).Info("Listing deleted",
		slog.String("listing_id", id),
		slog.Int("evidence", result.EvidenceDeleted),
		slog.Int("blobs", result.BlobsDeleted),
	)

	return result, nil
}

// ListEvidence returns the evidence attached to a listing the caller manages.
func (srv *reviewService) ListEvidence(ctx context.Context, caller *entity.Caller, listingID string) ([]*entity.Evidence, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	listing, err := srv.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	if !entity.CanManageListing(caller, listing).Allowed() {
		return nil, domainerrors.ErrAuthorizationRequired
	}

	evidence, err := srv.evidenceRepo.FindByListing(ctx, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list evidence")
	}

	return evidence, nil
}

// SummarizeEvidence asks the enrichment service for a summary and suspicious
// flags, and stores them on the evidence document.
func (srv *reviewService) SummarizeEvidence(ctx context.Context, caller *entity.Caller, evidenceID string) (*entity.Evidence, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	ev, err := srv.findEvidence(ctx, evidenceID)
	if err != nil {
		return nil, err
	}

	analysis, err := srv.enricher.AnalyzeEvidence(ctx, ev.Name, ev.Content)
	if err != nil {
		srv.log(ctx).Warn("Evidence analysis failed", slog.String("evidence_id", evidenceID), slog.Any("error", err))

		return nil, domainerrors.ErrAIUnavailable
	}

	if err := srv.evidenceRepo.UpdateAnalysis(ctx, evidenceID, analysis.Summary, analysis.Suspicious); err != nil {
		return nil, errors.Wrap(err, "failed to store evidence analysis")
	}

	ev.Summary = analysis.Summary
	ev.Suspicious = analysis.Suspicious

	return ev, nil
}

// VerifyEvidence marks a piece of evidence as checked by an admin.
func (srv *reviewService) VerifyEvidence(ctx context.Context, caller *entity.Caller, evidenceID string, verified bool) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	if err := srv.evidenceRepo.SetVerified(ctx, evidenceID, verified); err != nil {
		if errors.Is(err, repository.ErrEvidenceNotFound) {
			return domainerrors.ErrEvidenceNotFound
		}

		return errors.Wrap(err, "failed to verify evidence")
	}

	return nil
}

func (srv *reviewService) findEvidence(ctx context.Context, id string) (*entity.Evidence, error) {
	ev, err := srv.evidenceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEvidenceNotFound) {
			return nil, domainerrors.ErrEvidenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find evidence")
	}

	return ev, nil
}

func (srv *reviewService) invalidate(ctx context.Context, keys ...string) {
	if err := srv.cache.Invalidate(ctx, keys...); err != nil {
		srv.log(ctx).Warn("View cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}

func (srv *reviewService) publish(ctx context.Context, event *service.ReviewEvent) {
	if err := srv.publisher.PublishReviewEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish review event",
			slog.String("type", event.Type),
			slog.String("listing_id", event.ListingID),
			slog.Any("error", err),
		)
	}
}

func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
