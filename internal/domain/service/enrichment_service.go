package service

import (
	"context"

	"landmarket/internal/domain/entity"
)

// BadgeSuggestion is the advisory output of the badge-suggestion flow.
type BadgeSuggestion struct {
	Badge  entity.Badge `json:"badge"`
	Reason string       `json:"reason"`
}

// EvidenceAnalysis is the output of summarising one evidence document.
type EvidenceAnalysis struct {
	Summary    string   `json:"summary"`
	Suspicious []string `json:"suspicious"`
}

// DescriptionFacts are the listing attributes fed to the description generator.
type DescriptionFacts struct {
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	County    string   `json:"county"`
	LandType  string   `json:"landType"`
	Area      float64  `json:"area"`
	Size      string   `json:"size"`
	Price     float64  `json:"price"`
	Amenities []string `json:"amenities,omitempty"`
}

// EnrichmentService invokes the hosted generative-AI flows. Every call may fail;
// callers decide whether a failure degrades or aborts their workflow.
type EnrichmentService interface {
	// ExtractText performs OCR on an image.
	ExtractText(ctx context.Context, image []byte, mimeType string) (string, error)

	// CheckImageAuthenticity judges whether the main listing photo looks genuine.
	CheckImageAuthenticity(ctx context.Context, image []byte, mimeType string) (*entity.ImageAnalysis, error)

	// SuggestBadge proposes a trust badge from the evidence text.
	SuggestBadge(ctx context.Context, title string, evidence []string) (*BadgeSuggestion, error)

	// AnalyzeEvidence summarises a document and flags suspicious patterns.
	AnalyzeEvidence(ctx context.Context, name, content string) (*EvidenceAnalysis, error)

	// GenerateDescription drafts a listing description.
	GenerateDescription(ctx context.Context, facts DescriptionFacts) (string, error)
}
