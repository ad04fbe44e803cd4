package repository

import (
	"context"

	"landmarket/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrEvidenceNotFound is returned when an evidence document does not exist.
var ErrEvidenceNotFound = errors.New("evidence not found")

// EvidenceRepository defines evidence document operations.
type EvidenceRepository interface {
	// NewID allocates an evidence id.
	NewID() string

	// CreateBatch writes all evidence documents in one all-or-nothing batch.
	CreateBatch(ctx context.Context, evidence []*entity.Evidence) error

	// FindByID retrieves a single evidence document.
	FindByID(ctx context.Context, id string) (*entity.Evidence, error)

	// FindByListing retrieves every evidence document referencing a listing.
	FindByListing(ctx context.Context, listingID string) ([]*entity.Evidence, error)

	// UpdateAnalysis stores an admin-triggered AI summary and suspicious-pattern flags.
	UpdateAnalysis(ctx context.Context, id, summary string, suspicious []string) error

	// SetVerified flags the evidence as checked by an admin.
	SetVerified(ctx context.Context, id string, verified bool) error

	// ListingIDs returns the distinct listing ids referenced by evidence documents.
	ListingIDs(ctx context.Context) ([]string, error)

	// DeleteByListing deletes every evidence document referencing the listing and returns the count.
	DeleteByListing(ctx context.Context, listingID string) (int, error)
}
