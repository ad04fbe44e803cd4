// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"landmarket/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for persistence.
var (
	// ErrListingNotFound is returned when a listing document does not exist.
	ErrListingNotFound = errors.New("listing not found")
	// ErrCursorNotFound is returned when a pagination cursor points at a missing document.
	ErrCursorNotFound = errors.New("cursor document not found")
	// ErrStoreUnavailable marks transient read failures (network, DNS, deadline).
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// ListingQuery is the store-side part of a listing search: equality predicates,
// a single createdAt ordering and a document-id cursor.
type ListingQuery struct {
	Statuses   []entity.ListingStatus // empty means any status
	OwnerID    string
	County     string
	LandType   string
	Badges     []entity.Badge // "in" predicate
	StartAfter string
	Limit      int
}

// ListingReview carries an admin's status/badge decision.
type ListingReview struct {
	Status          entity.ListingStatus
	Badge           *entity.Badge
	RejectionReason *string
	ReviewedAt      time.Time
}

// ListingPatch carries editable listing fields; nil fields are left untouched.
type ListingPatch struct {
	Title       *string
	Description *string
	Price       *float64
	Location    *string
	County      *string
	LandType    *string
	Area        *float64
	Size        *string
	Amenities   []string
	// ResetToPending returns the listing to review and clears any rejection reason.
	ResetToPending bool
	UpdatedAt      time.Time
}

// ListingRepository defines listing document operations.
type ListingRepository interface {
	// NewID allocates a listing id before the document is written.
	NewID() string

	// Create writes a new listing document under listing.ID.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a listing by id.
	FindByID(ctx context.Context, id string) (*entity.Listing, error)

	// Query runs a store-side listing query ordered by createdAt descending.
	Query(ctx context.Context, q ListingQuery) ([]*entity.Listing, error)

	// Update applies an owner/admin edit.
	Update(ctx context.Context, id string, patch ListingPatch) error

	// Review writes an admin decision for one listing.
	Review(ctx context.Context, id string, review ListingReview) error

	// BulkSetStatus sets the status of all ids inside one batch write.
	BulkSetStatus(ctx context.Context, ids []string, status entity.ListingStatus, reviewedAt time.Time) error

	// DeleteWithEvidence deletes the evidence documents and the listing document in one batch.
	DeleteWithEvidence(ctx context.Context, listingID string, evidenceIDs []string) error

	// IncrementViews bumps the view counter.
	IncrementViews(ctx context.Context, id string) error

	// Exists reports whether a listing document exists.
	Exists(ctx context.Context, id string) (bool, error)
}
