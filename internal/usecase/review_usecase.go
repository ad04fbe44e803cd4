package usecase

import (
	"context"

	"landmarket/internal/domain/entity"
)

// ReviewInput is an admin decision on one listing.
type ReviewInput struct {
	Status          entity.ListingStatus `json:"status"`
	Badge           *entity.Badge        `json:"badge,omitempty"`
	RejectionReason string               `json:"rejectionReason,omitempty"`
}

// DeleteListingResult reports what the best-effort parts of a deletion achieved.
type DeleteListingResult struct {
	EvidenceDeleted int       `json:"evidenceDeleted"`
	BlobsDeleted    int       `json:"blobsDeleted"`
	Warnings        []Warning `json:"warnings,omitempty"`
}

// ReviewUsecase covers admin review, deletion and evidence moderation.
type ReviewUsecase interface {
	// ReviewListing transitions status/badge/rejection reason. Admin only.
	ReviewListing(ctx context.Context, caller *entity.Caller, id string, input *ReviewInput) error

	// BulkUpdateStatus sets the status of every id in one all-or-nothing batch. Admin only.
	BulkUpdateStatus(ctx context.Context, caller *entity.Caller, ids []string, status entity.ListingStatus) error

	// DeleteListing removes a listing, its evidence documents and (best effort) its files.
	DeleteListing(ctx context.Context, caller *entity.Caller, id string) (*DeleteListingResult, error)

	// ListEvidence returns the evidence of a listing to its owner or an admin.
	ListEvidence(ctx context.Context, caller *entity.Caller, listingID string) ([]*entity.Evidence, error)

	// SummarizeEvidence runs the AI summary and suspicious-pattern flags. Admin only.
	SummarizeEvidence(ctx context.Context, caller *entity.Caller, evidenceID string) (*entity.Evidence, error)

	// VerifyEvidence marks a document as checked. Admin only.
	VerifyEvidence(ctx context.Context, caller *entity.Caller, evidenceID string, verified bool) error
}
