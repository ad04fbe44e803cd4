// Package ai implements the generative enrichment flows used during listing ingestion and review.
package ai

import (
	"context"
	"log/slog"

	"landmarket/config"
	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrDisabled is returned by every flow when no AI provider is configured.
var ErrDisabled = errors.New("ai provider disabled")

// EnricherParams holds the dependencies for NewEnrichmentService.
type EnricherParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Module provides the configured enrichment service.
var Module = fx.Options(
	fx.Provide(NewEnrichmentService),
)

// NewEnrichmentService selects the enrichment backend from ai.provider.
func NewEnrichmentService(params EnricherParams) (service.EnrichmentService, error) {
	cfg := params.Config.AI
	if cfg == nil {
		cfg = &config.AIConfig{Provider: constants.AIProviderDisabled}
	}

	switch cfg.Provider {
	case constants.AIProviderGemini:
		return NewGeminiEnricher(params.Ctx, cfg, params.Logger)
	case constants.AIProviderDisabled, "":
		params.Logger.Warn("AI enrichment disabled, listings will be ingested without OCR or badge suggestions")

		return disabledEnricher{}, nil
	default:
		return nil, errors.Errorf("unknown ai provider %q", cfg.Provider)
	}
}

// disabledEnricher fails every call so callers take their degraded path.
type disabledEnricher struct{}

func (disabledEnricher) ExtractText(context.Context, []byte, string) (string, error) {
	return "", ErrDisabled
}

func (disabledEnricher) CheckImageAuthenticity(context.Context, []byte, string) (*entity.ImageAnalysis, error) {
	return nil, ErrDisabled
}

func (disabledEnricher) SuggestBadge(context.Context, string, []string) (*service.BadgeSuggestion, error) {
	return nil, ErrDisabled
}

func (disabledEnricher) AnalyzeEvidence(context.Context, string, string) (*service.EvidenceAnalysis, error) {
	return nil, ErrDisabled
}

func (disabledEnricher) GenerateDescription(context.Context, service.DescriptionFacts) (string, error) {
	return "", ErrDisabled
}
