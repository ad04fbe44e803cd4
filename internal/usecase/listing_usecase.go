package usecase

import (
	"context"

	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/service"
)

// FileUpload is an uploaded file held in memory for the duration of a request.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// CreateListingInput holds the fields of a listing submission.
type CreateListingInput struct {
	Title       string
	Description string
	Price       float64
	Location    string
	County      string
	LandType    string
	Area        float64
	Size        string
	Amenities   []string
	Boundary    string
	ImageHint   string
	Image       *FileUpload
	Evidence    []FileUpload
}

// Warning records a degraded, non-fatal step of a workflow.
type Warning struct {
	Step    string `json:"step"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// CreateListingResult is the outcome of an ingestion: the id plus any degraded steps.
type CreateListingResult struct {
	ListingID       string        `json:"id"`
	BadgeSuggestion *entity.Badge `json:"badgeSuggestion,omitempty"`
	Warnings        []Warning     `json:"warnings,omitempty"`
}

// Degraded reports whether any enrichment step was skipped.
func (r *CreateListingResult) Degraded() bool {
	return len(r.Warnings) > 0
}

// UpdateListingInput holds editable listing fields; nil leaves a field unchanged.
type UpdateListingInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
	County      *string  `json:"county"`
	LandType    *string  `json:"landType"`
	Area        *float64 `json:"area"`
	Size        *string  `json:"size"`
	Amenities   []string `json:"amenities"`
}

// ListingUsecase covers seller-facing listing operations and single-listing reads.
type ListingUsecase interface {
	// CreateListing runs the ingestion pipeline and writes a pending listing.
	CreateListing(ctx context.Context, caller *entity.Caller, input *CreateListingInput) (*CreateListingResult, error)

	// UpdateListing applies an owner (pre-approval) or admin edit.
	UpdateListing(ctx context.Context, caller *entity.Caller, id string, input *UpdateListingInput) (*entity.Listing, error)

	// GetListing returns a listing if the caller may see it.
	GetListing(ctx context.Context, caller *entity.Caller, id string) (*entity.Listing, error)

	// ListingQR renders a share QR code for a visible listing.
	ListingQR(ctx context.Context, caller *entity.Caller, id string) ([]byte, error)

	// GenerateDescription drafts a description for a seller.
	GenerateDescription(ctx context.Context, caller *entity.Caller, facts service.DescriptionFacts) (string, error)
}
