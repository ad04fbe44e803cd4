package docstore

import (
	"context"
	"time"

	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/repository"
	"landmarket/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// listingRepository implements repository.ListingRepository on the 'listings' collection.
type listingRepository struct {
	client *firestore.Client
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(client *firestore.Client) repository.ListingRepository {
	return &listingRepository{client: client}
}

func (repo *listingRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionListings)
}

// NewID allocates a document id without writing anything.
func (repo *listingRepository) NewID() string {
	return repo.col().NewDoc().ID
}

// Create writes a new listing document under listing.ID.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		listing.ID = repo.NewID()
	}

	if _, err := repo.col().Doc(listing.ID).Create(ctx, fromListingDomain(listing)); err != nil {
		if isAlreadyExists(err) {
			return errors.Wrapf(err, "listing %s already exists", listing.ID)
		}

		return errors.Wrap(err, "failed to create listing")
	}

	return nil
}

// FindByID retrieves a listing by id.
func (repo *listingRepository) FindByID(ctx context.Context, id string) (*entity.Listing, error) {
	snap, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrListingNotFound
		}

		return nil, wrapRead(err, "failed to find listing by id")
	}

	return toListingDomain(snap)
}

// Query runs equality predicates with a createdAt descending order and a document cursor.
func (repo *listingRepository) Query(ctx context.Context, q repository.ListingQuery) ([]*entity.Listing, error) {
	query := repo.col().Query

	switch len(q.Statuses) {
	case 0:
	case 1:
		query = query.Where("status", "==", string(q.Statuses[0]))
	default:
		statuses := make([]string, 0, len(q.Statuses))
		for _, s := range q.Statuses {
			statuses = append(statuses, string(s))
		}
		query = query.Where("status", "in", statuses)
	}
	if q.OwnerID != "" {
		query = query.Where("ownerId", "==", q.OwnerID)
	}
	if q.County != "" {
		query = query.Where("county", "==", q.County)
	}
	if q.LandType != "" {
		query = query.Where("landType", "==", q.LandType)
	}
	if len(q.Badges) > 0 {
		badges := make([]string, 0, len(q.Badges))
		for _, b := range q.Badges {
			badges = append(badges, string(b))
		}
		query = query.Where("badge", "in", badges)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	if q.StartAfter != "" {
		cursor, err := repo.col().Doc(q.StartAfter).Get(ctx)
		if err != nil {
			if isNotFound(err) {
				return nil, repository.ErrCursorNotFound
			}

			return nil, wrapRead(err, "failed to load cursor document")
		}
		query = query.StartAfter(cursor)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapRead(err, "failed to query listings")
	}

	listings := make([]*entity.Listing, 0, len(snaps))
	for _, snap := range snaps {
		listing, err := toListingDomain(snap)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

// Update applies an owner or admin edit.
func (repo *listingRepository) Update(ctx context.Context, id string, patch repository.ListingPatch) error {
	return repo.update(ctx, id, listingPatchUpdates(patch), "failed to update listing")
}

// listingPatchUpdates maps the set fields of patch to field updates. Returning
// to pending also drops the previous rejection reason.
func listingPatchUpdates(patch repository.ListingPatch) []firestore.Update {
	updates := []firestore.Update{{Path: "updatedAt", Value: patch.UpdatedAt}}
	if patch.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *patch.Description})
	}
	if patch.Price != nil {
		updates = append(updates, firestore.Update{Path: "price", Value: *patch.Price})
	}
	if patch.Location != nil {
		updates = append(updates, firestore.Update{Path: "location", Value: *patch.Location})
	}
	if patch.County != nil {
		updates = append(updates, firestore.Update{Path: "county", Value: *patch.County})
	}
	if patch.LandType != nil {
		updates = append(updates, firestore.Update{Path: "landType", Value: *patch.LandType})
	}
	if patch.Area != nil {
		updates = append(updates, firestore.Update{Path: "area", Value: *patch.Area})
	}
	if patch.Size != nil {
		updates = append(updates, firestore.Update{Path: "size", Value: *patch.Size})
	}
	if patch.Amenities != nil {
		updates = append(updates, firestore.Update{Path: "amenities", Value: patch.Amenities})
	}
	if patch.ResetToPending {
		updates = append(updates,
			firestore.Update{Path: "status", Value: string(entity.ListingStatusPending)},
			firestore.Update{Path: "rejectionReason", Value: nil},
		)
	}

	return updates
}

// Review writes an admin decision for one listing.
func (repo *listingRepository) Review(ctx context.Context, id string, review repository.ListingReview) error {
	updates := []firestore.Update{
		{Path: "status", Value: string(review.Status)},
		{Path: "rejectionReason", Value: review.RejectionReason},
		{Path: "adminReviewedAt", Value: review.ReviewedAt},
		{Path: "updatedAt", Value: review.ReviewedAt},
	}
	if review.Badge != nil {
		updates = append(updates, firestore.Update{Path: "badge", Value: string(*review.Badge)})
	}

	return repo.update(ctx, id, updates, "failed to review listing")
}

// BulkSetStatus sets the status of every id in one transaction. A missing id aborts the whole write.
func (repo *listingRepository) BulkSetStatus(ctx context.Context, ids []string, status entity.ListingStatus, reviewedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	if len(ids) > constants.MaxBatchWrites {
		return errors.Errorf("bulk update of %d listings exceeds the batch limit of %d", len(ids), constants.MaxBatchWrites)
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.col().Doc(id))
	}

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.GetAll(refs)
		if err != nil {
			return err
		}
		for _, snap := range snaps {
			if !snap.Exists() {
				return errors.Wrapf(repository.ErrListingNotFound, "listing %s", snap.Ref.ID)
			}
		}

		for _, ref := range refs {
			err := tx.Update(ref, []firestore.Update{
				{Path: "status", Value: string(status)},
				{Path: "rejectionReason", Value: nil},
				{Path: "adminReviewedAt", Value: reviewedAt},
				{Path: "updatedAt", Value: reviewedAt},
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to bulk update listing status")
	}

	return nil
}

// DeleteWithEvidence removes the evidence documents and the listing in one transaction.
func (repo *listingRepository) DeleteWithEvidence(ctx context.Context, listingID string, evidenceIDs []string) error {
	if len(evidenceIDs)+1 > constants.MaxBatchWrites {
		return errors.Errorf("listing %s has too many evidence documents for one batch", listingID)
	}

	evidence := repo.client.Collection(constants.CollectionEvidence)
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		for _, id := range evidenceIDs {
			if err := tx.Delete(evidence.Doc(id)); err != nil {
				return err
			}
		}

		return tx.Delete(repo.col().Doc(listingID))
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete listing with evidence")
	}

	return nil
}

// IncrementViews bumps the view counter atomically.
func (repo *listingRepository) IncrementViews(ctx context.Context, id string) error {
	return repo.update(ctx, id, []firestore.Update{{Path: "views", Value: firestore.Increment(1)}}, "failed to increment views")
}

// Exists reports whether a listing document exists.
func (repo *listingRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, wrapRead(err, "failed to check listing existence")
	}

	return true, nil
}

func (repo *listingRepository) update(ctx context.Context, id string, updates []firestore.Update, message string) error {
	if _, err := repo.col().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrListingNotFound
		}

		return errors.Wrap(err, message)
	}

	return nil
}

func toListingDomain(snap *firestore.DocumentSnapshot) (*entity.Listing, error) {
	var m model.ListingModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode listing %s", snap.Ref.ID)
	}

	listing := &entity.Listing{
		ID:              snap.Ref.ID,
		OwnerID:         m.OwnerID,
		Title:           m.Title,
		Description:     m.Description,
		Price:           m.Price,
		Location:        m.Location,
		County:          m.County,
		LandType:        m.LandType,
		Area:            m.Area,
		Size:            m.Size,
		Amenities:       m.Amenities,
		Boundary:        m.Boundary,
		Status:          entity.ListingStatus(m.Status),
		Badge:           entity.Badge(m.Badge),
		Image:           m.Image,
		ImagePath:       m.ImagePath,
		ImageHint:       m.ImageHint,
		Seller:          entity.SellerSnapshot{Name: m.Seller.Name, AvatarURL: m.Seller.AvatarURL},
		RejectionReason: m.RejectionReason,
		Views:           m.Views,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		AdminReviewedAt: m.AdminReviewedAt,
	}
	if listing.Badge == "" {
		listing.Badge = entity.BadgeNone
	}
	if m.BadgeSuggestion != nil {
		badge := entity.Badge(*m.BadgeSuggestion)
		listing.BadgeSuggestion = &badge
	}
	for _, img := range m.Images {
		listing.Images = append(listing.Images, entity.ListingImage{URL: img.URL, Hint: img.Hint})
	}
	if m.ImageAnalysis != nil {
		listing.ImageAnalysis = &entity.ImageAnalysis{
			IsAuthentic: m.ImageAnalysis.IsAuthentic,
			Confidence:  m.ImageAnalysis.Confidence,
			Notes:       m.ImageAnalysis.Notes,
		}
	}

	return listing, nil
}

func fromListingDomain(listing *entity.Listing) *model.ListingModel {
	m := &model.ListingModel{
		OwnerID:         listing.OwnerID,
		Title:           listing.Title,
		Description:     listing.Description,
		Price:           listing.Price,
		Location:        listing.Location,
		County:          listing.County,
		LandType:        listing.LandType,
		Area:            listing.Area,
		Size:            listing.Size,
		Amenities:       listing.Amenities,
		Boundary:        listing.Boundary,
		Status:          string(listing.Status),
		Badge:           string(listing.Badge),
		Image:           listing.Image,
		ImagePath:       listing.ImagePath,
		ImageHint:       listing.ImageHint,
		Seller:          model.SellerModel{Name: listing.Seller.Name, AvatarURL: listing.Seller.AvatarURL},
		RejectionReason: listing.RejectionReason,
		Views:           listing.Views,
		CreatedAt:       listing.CreatedAt,
		UpdatedAt:       listing.UpdatedAt,
		AdminReviewedAt: listing.AdminReviewedAt,
	}
	if m.Amenities == nil {
		m.Amenities = []string{}
	}
	if listing.BadgeSuggestion != nil {
		badge := string(*listing.BadgeSuggestion)
		m.BadgeSuggestion = &badge
	}
	m.Images = make([]model.ListingImageModel, 0, len(listing.Images))
	for _, img := range listing.Images {
		m.Images = append(m.Images, model.ListingImageModel{URL: img.URL, Hint: img.Hint})
	}
	if listing.ImageAnalysis != nil {
		m.ImageAnalysis = &model.ImageAnalysisModel{
			IsAuthentic: listing.ImageAnalysis.IsAuthentic,
			Confidence:  listing.ImageAnalysis.Confidence,
			Notes:       listing.ImageAnalysis.Notes,
		}
	}

	return m
}
