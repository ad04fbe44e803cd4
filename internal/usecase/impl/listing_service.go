package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"path"
	"strings"
	"time"

	"landmarket/config"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
	"landmarket/internal/domain/repository"
	"landmarket/internal/domain/service"
	"landmarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxEvidenceFiles = 10
	defaultViewCacheTTL     = 5 * time.Minute
	evidenceFanOutLimit     = 4
)

// Pipeline step names reported on warnings.
const (
	StepImageAuthenticity = "image_authenticity"
	StepEvidenceOCR       = "evidence_ocr"
	StepBadgeSuggestion   = "badge_suggestion"
	StepImageDelete       = "image_delete"
	StepEvidenceDelete    = "evidence_delete"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	listingRepo      repository.ListingRepository
	evidenceRepo     repository.EvidenceRepository
	userRepo         repository.UserRepository
	blobs            service.BlobStore
	enricher         service.EnrichmentService
	cache            service.ViewCache
	qrCode           service.QRCodeService
	parcel           service.ParcelService
	publicBaseURL    string
	maxEvidenceFiles int
	cacheTTL         time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo  repository.ListingRepository
	EvidenceRepo repository.EvidenceRepository
	UserRepo     repository.UserRepository
	Blobs        service.BlobStore
	Enricher     service.EnrichmentService
	Cache        service.ViewCache
	QRCode       service.QRCodeService
	Parcel       service.ParcelService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	srv := &listingService{
		listingRepo:      params.ListingRepo,
		evidenceRepo:     params.EvidenceRepo,
		userRepo:         params.UserRepo,
		blobs:            params.Blobs,
		enricher:         params.Enricher,
		cache:            params.Cache,
		qrCode:           params.QRCode,
		parcel:           params.Parcel,
		maxEvidenceFiles: defaultMaxEvidenceFiles,
		cacheTTL:         defaultViewCacheTTL,
		now:              func() time.Time { return time.Now().UTC() },
		logger:           params.Logger,
	}

	if cfg := params.Config; cfg != nil {
		if cfg.Listing != nil {
			srv.publicBaseURL = strings.TrimRight(cfg.Listing.PublicBaseURL, "/")
			if cfg.Listing.MaxEvidenceFiles > 0 {
				srv.maxEvidenceFiles = cfg.Listing.MaxEvidenceFiles
			}
		}
		if cfg.Cache != nil && cfg.Cache.TTL > 0 {
			srv.cacheTTL = cfg.Cache.TTL
		}
	}

	return srv
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing runs the ingestion pipeline. AI failures degrade to warnings;
// blob and store write failures abort the workflow.
func (srv *listingService) CreateListing(ctx context.Context, caller *entity.Caller, input *usecase.CreateListingInput) (*usecase.CreateListingResult, error) {
	if err := requireRole(caller, entity.RoleSeller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	if err := srv.validateCreateInput(input); err != nil {
		return nil, err
	}

	result := &usecase.CreateListingResult{}
	now := srv.now()

	listing := &entity.Listing{
		OwnerID:     caller.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Location:    strings.TrimSpace(input.Location),
		County:      strings.TrimSpace(input.County),
		LandType:    strings.TrimSpace(input.LandType),
		Area:        input.Area,
		Size:        strings.TrimSpace(input.Size),
		Amenities:   normalizeAmenities(input.Amenities),
		Boundary:    strings.TrimSpace(input.Boundary),
		ImageHint:   strings.TrimSpace(input.ImageHint),
		Status:      entity.ListingStatusPending,
		Badge:       entity.BadgeNone,
		Seller:      srv.sellerSnapshot(ctx, caller),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if listing.Boundary != "" {
		acres, err := srv.parcel.AreaAcres(listing.Boundary)
		if err != nil {
			return nil, domainerrors.ErrInvalidBoundary.WithDetails(err.Error())
		}
		if listing.Area == 0 {
			listing.Area = acres
		}
	}

	if input.Image != nil && len(input.Image.Data) > 0 {
		if err := srv.ingestMainImage(ctx, listing, input.Image, result); err != nil {
			return nil, err
		}
	}

	listing.ID = srv.listingRepo.NewID()

	evidence, err := srv.ingestEvidence(ctx, listing, input.Evidence, result)
	if err != nil {
		return nil, err
	}

	contents := make([]string, 0, len(evidence))
	for _, ev := range evidence {
		if ev.Content != "" {
			contents = append(contents, ev.Content)
		}
	}

	if len(contents) > 0 {
		suggestion, err := srv.enricher.SuggestBadge(ctx, listing.Title, contents)
		switch {
		case err != nil:
			srv.log(ctx).Warn("Badge suggestion failed", slog.String("listing_id", listing.ID), slog.Any("error", err))
			result.Warnings = append(result.Warnings, usecase.Warning{
				Step:    StepBadgeSuggestion,
				Message: "Badge suggestion is unavailable; an admin will assign a badge during review.",
			})
		case suggestion != nil && suggestion.Badge.IsValid():
			badge := suggestion.Badge
			listing.BadgeSuggestion = &badge
			result.BadgeSuggestion = &badge
		}
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	if len(evidence) > 0 {
		if err := srv.evidenceRepo.CreateBatch(ctx, evidence); err != nil {
			return nil, errors.Wrap(err, "failed to create evidence")
		}
	}

	srv.invalidate(ctx, constants.CacheKeyAdminListings)

	result.ListingID = listing.ID

	srv.log(ctx).Info("Listing created",
		slog.String("listing_id", listing.ID),
		slog.String("owner_id", caller.ID),
		slog.Int("evidence", len(evidence)),
		slog.Int("warnings", len(result.Warnings)),
	)

	return result, nil
}

func (srv *listingService) validateCreateInput(input *usecase.CreateListingInput) error {
	if input == nil || strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if input.Price < 0 || !isFinite(input.Price) {
		return domainerrors.ErrValidationFailed.WithDetails("price must be a non-negative number")
	}
	if input.Area < 0 || !isFinite(input.Area) {
		return domainerrors.ErrValidationFailed.WithDetails("area must be a non-negative number")
	}
	if len(input.Evidence) > srv.maxEvidenceFiles {
		return domainerrors.ErrTooManyEvidenceFiles.WithDetails(fmt.Sprintf("at most %d evidence files", srv.maxEvidenceFiles))
	}

	return nil
}

func (srv *listingService) ingestMainImage(ctx context.Context, listing *entity.Listing, image *usecase.FileUpload, result *usecase.CreateListingResult) error {
	key := fmt.Sprintf("listings/%s/%d-%s", listing.OwnerID, srv.now().UnixMilli(), safeName(image.Name))

	url, err := srv.blobs.Upload(ctx, key, image.ContentType, bytes.NewReader(image.Data))
	if err != nil {
		return domainerrors.ErrBlobWriteFailed.WrapMessage(err.Error())
	}

	listing.Image = url
	listing.ImagePath = key
	listing.Images = []entity.ListingImage{{URL: url, Hint: listing.ImageHint}}

	analysis, err := srv.enricher.CheckImageAuthenticity(ctx, image.Data, image.ContentType)
	if err != nil {
		srv.log(ctx).Warn("Image authenticity check failed", slog.String("owner_id", listing.OwnerID), slog.Any("error", err))
		result.Warnings = append(result.Warnings, usecase.Warning{
			Step:    StepImageAuthenticity,
			Subject: image.Name,
			Message: "Image authenticity check is unavailable.",
		})

		return nil
	}

	listing.ImageAnalysis = analysis

	return nil
}

// ingestEvidence uploads each file under the listing's evidence prefix and
// extracts its text. Results keep the input order.
func (srv *listingService) ingestEvidence(ctx context.Context, listing *entity.Listing, files []usecase.FileUpload, result *usecase.CreateListingResult) ([]*entity.Evidence, error) {
	if len(files) == 0 {
		return nil, nil
	}

	evidence := make([]*entity.Evidence, len(files))
	ocrFailed := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(evidenceFanOutLimit)

	for i := range files {
		file := files[i]
		g.Go(func() error {
			evidenceID := srv.evidenceRepo.NewID()
			key := fmt.Sprintf("evidence/%s/%s/%s-%s", listing.OwnerID, listing.ID, evidenceID, safeName(file.Name))

			if _, err := srv.blobs.Upload(gctx, key, file.ContentType, bytes.NewReader(file.Data)); err != nil {
				return domainerrors.ErrBlobWriteFailed.WrapMessage(fmt.Sprintf("evidence %q: %v", file.Name, err))
			}

			ev := &entity.Evidence{
				ID:          evidenceID,
				ListingID:   listing.ID,
				OwnerID:     listing.OwnerID,
				Name:        file.Name,
				Type:        file.ContentType,
				StoragePath: key,
				UploadedAt:  srv.now(),
			}

			if !isImage(file.ContentType) {
				ev.Content = fmt.Sprintf("File '%s' is not an image and cannot be summarized automatically.", file.Name)
				evidence[i] = ev

				return nil
			}

			text, err := srv.enricher.ExtractText(gctx, file.Data, file.ContentType)
			if err != nil {
				srv.log(ctx).Warn("Evidence text extraction failed",
					slog.String("listing_id", listing.ID),
					slog.String("evidence", file.Name),
					slog.Any("error", err),
				)
				ev.Content = fmt.Sprintf("AI text extraction failed for '%s'.", file.Name)
				ocrFailed[i] = true
			} else {
				ev.Content = text
			}
			evidence[i] = ev

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, failed := range ocrFailed {
		if failed {
			result.Warnings = append(result.Warnings, usecase.Warning{
				Step:    StepEvidenceOCR,
				Subject: files[i].Name,
				Message: "Text extraction is unavailable for this file.",
			})
		}
	}

	return evidence, nil
}

func (srv *listingService) sellerSnapshot(ctx context.Context, caller *entity.Caller) entity.SellerSnapshot {
	profile, err := srv.userRepo.FindByUID(ctx, caller.ID)
	if err != nil {
		srv.log(ctx).Warn("Seller profile unavailable for snapshot", slog.String("uid", caller.ID), slog.Any("error", err))

		return entity.SellerSnapshot{Name: caller.Email}
	}

	name := profile.DisplayName
	if name == "" {
		name = profile.Email
	}

	return entity.SellerSnapshot{Name: name, AvatarURL: profile.PhotoURL}
}

// UpdateListing applies an edit. Owners may edit only while the listing is
// not approved, and their edits send it back to review.
func (srv *listingService) UpdateListing(ctx context.Context, caller *entity.Caller, id string, input *usecase.UpdateListingInput) (*entity.Listing, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if !listing.IsEditableBy(caller) {
		return nil, domainerrors.ErrAuthorizationRequired
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title cannot be empty")
	}
	if (input.Price != nil && *input.Price < 0) || (input.Area != nil && *input.Area < 0) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price and area must not be negative")
	}

	patch := repository.ListingPatch{
		Title:          trimmed(input.Title),
		Description:    trimmed(input.Description),
		Price:          input.Price,
		Location:       trimmed(input.Location),
		County:         trimmed(input.County),
		LandType:       trimmed(input.LandType),
		Area:           input.Area,
		Size:           trimmed(input.Size),
		ResetToPending: !caller.IsAdmin(),
		UpdatedAt:      srv.now(),
	}
	if input.Amenities != nil {
		patch.Amenities = normalizeAmenities(input.Amenities)
	}

	if err := srv.listingRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to update listing")
	}

	srv.invalidate(ctx, listingCacheKeys(listing)...)

	return srv.findListing(ctx, id)
}

// GetListing returns a listing if the caller may view it. Approved listings are
// served through the view cache.
func (srv *listingService) GetListing(ctx context.Context, caller *entity.Caller, id string) (*entity.Listing, error) {
	listing, err := srv.cachedListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entity.CanViewListing(caller, listing).Allowed() {
		return nil, domainerrors.ErrListingNotAvailable
	}

	if caller == nil || caller.ID != listing.OwnerID {
		if err := srv.listingRepo.IncrementViews(ctx, id); err != nil {
			srv.log(ctx).Warn("Failed to increment views", slog.String("listing_id", id), slog.Any("error", err))
		}
	}

	return listing, nil
}

func (srv *listingService) cachedListing(ctx context.Context, id string) (*entity.Listing, error) {
	key := constants.CacheKeyListingPrefix + id

	raw, err := srv.cache.Get(ctx, key)
	if err == nil {
		var listing entity.Listing
		if jsonErr := json.Unmarshal(raw, &listing); jsonErr == nil {
			return &listing, nil
		}
	} else if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("View cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.Status == entity.ListingStatusApproved {
		if encoded, err := json.Marshal(listing); err == nil {
			if err := srv.cache.Set(ctx, key, encoded, srv.cacheTTL); err != nil {
				srv.log(ctx).Warn("View cache write failed", slog.String("key", key), slog.Any("error", err))
			}
		}
	}

	return listing, nil
}

// ListingQR renders a share QR code for a listing the caller may view.
func (srv *listingService) ListingQR(ctx context.Context, caller *entity.Caller, id string) ([]byte, error) {
	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entity.CanViewListing(caller, listing).Allowed() {
		return nil, domainerrors.ErrListingNotAvailable
	}

	png, err := srv.qrCode.GenerateListingQR(srv.publicBaseURL + "/listings/" + listing.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}

// GenerateDescription drafts a listing description from the supplied facts.
func (srv *listingService) GenerateDescription(ctx context.Context, caller *entity.Caller, facts service.DescriptionFacts) (string, error) {
	if err := requireRole(caller, entity.RoleSeller, entity.RoleAdmin); err != nil {
		return "", err
	}
	if strings.TrimSpace(facts.Title) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	description, err := srv.enricher.GenerateDescription(ctx, facts)
	if err != nil {
		srv.log(ctx).Warn("Description generation failed", slog.Any("error", err))

		return "", domainerrors.ErrAIUnavailable
	}

	return description, nil
}

func (srv *listingService) findListing(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

func (srv *listingService) invalidate(ctx context.Context, keys ...string) {
	if err := srv.cache.Invalidate(ctx, keys...); err != nil {
		srv.log(ctx).Warn("View cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}

func listingCacheKeys(listing *entity.Listing) []string {
	return []string{
		constants.CacheKeyHome,
		constants.CacheKeyAdminListings,
		constants.CacheKeyListingPrefix + listing.ID,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}

// safeName strips any directory components from an uploaded file name.
func safeName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "file"
	}

	return base
}

func normalizeAmenities(amenities []string) []string {
	out := make([]string, 0, len(amenities))
	seen := make(map[string]struct{}, len(amenities))
	for _, a := range amenities {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		key := strings.ToLower(a)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}

	return out
}
