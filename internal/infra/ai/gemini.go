package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"landmarket/config"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 30 * time.Second
)

// geminiEnricher runs every enrichment flow against the Gemini API.
type geminiEnricher struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewGeminiEnricher creates a Gemini API client from the AI configuration.
func NewGeminiEnricher(ctx context.Context, cfg *config.AIConfig, logger *slog.Logger) (service.EnrichmentService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("ai.apiKey is required for the gemini provider")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	enricher := &geminiEnricher{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
	if enricher.model == "" {
		enricher.model = defaultModel
	}
	if enricher.timeout <= 0 {
		enricher.timeout = defaultTimeout
	}
	logger.Info("Using Gemini enrichment", slog.String("model", enricher.model))

	return enricher, nil
}

func (g *geminiEnricher) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(ocrPrompt),
		genai.NewPartFromBytes(image, mimeType),
	}

	text, err := g.generate(ctx, parts, nil)
	if err != nil {
		return "", errors.Wrap(err, "ocr failed")
	}

	return text, nil
}

type authenticityResponse struct {
	IsAuthentic bool    `json:"isAuthentic"`
	Confidence  float64 `json:"confidence"`
	Notes       string  `json:"notes"`
}

func (g *geminiEnricher) CheckImageAuthenticity(ctx context.Context, image []byte, mimeType string) (*entity.ImageAnalysis, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(authenticityPrompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"isAuthentic": {Type: genai.TypeBoolean},
			"confidence":  {Type: genai.TypeNumber},
			"notes":       {Type: genai.TypeString},
		},
		Required: []string{"isAuthentic", "confidence"},
	}

	var resp authenticityResponse
	if err := g.generateJSON(ctx, parts, schema, &resp); err != nil {
		return nil, errors.Wrap(err, "image authenticity check failed")
	}

	return &entity.ImageAnalysis{
		IsAuthentic: resp.IsAuthentic,
		Confidence:  clamp01(resp.Confidence),
		Notes:       resp.Notes,
	}, nil
}

func (g *geminiEnricher) SuggestBadge(ctx context.Context, title string, evidence []string) (*service.BadgeSuggestion, error) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"badge": {
				Type: genai.TypeString,
				Enum: []string{
					string(entity.BadgeGold),
					string(entity.BadgeSilver),
					string(entity.BadgeBronze),
					string(entity.BadgeNone),
				},
			},
			"reason": {Type: genai.TypeString},
		},
		Required: []string{"badge"},
	}

	var resp service.BadgeSuggestion
	parts := []*genai.Part{genai.NewPartFromText(badgePrompt(title, evidence))}
	if err := g.generateJSON(ctx, parts, schema, &resp); err != nil {
		return nil, errors.Wrap(err, "badge suggestion failed")
	}
	if !resp.Badge.IsValid() {
		return nil, errors.Errorf("model returned unknown badge %q", resp.Badge)
	}

	return &resp, nil
}

func (g *geminiEnricher) AnalyzeEvidence(ctx context.Context, name, content string) (*service.EvidenceAnalysis, error) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":    {Type: genai.TypeString},
			"suspicious": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"summary"},
	}

	var resp service.EvidenceAnalysis
	parts := []*genai.Part{genai.NewPartFromText(evidencePrompt(name, content))}
	if err := g.generateJSON(ctx, parts, schema, &resp); err != nil {
		return nil, errors.Wrap(err, "evidence analysis failed")
	}
	if resp.Suspicious == nil {
		resp.Suspicious = []string{}
	}

	return &resp, nil
}

func (g *geminiEnricher) GenerateDescription(ctx context.Context, facts service.DescriptionFacts) (string, error) {
	text, err := g.generate(ctx, []*genai.Part{genai.NewPartFromText(descriptionPrompt(facts))}, nil)
	if err != nil {
		return "", errors.Wrap(err, "description generation failed")
	}
	if text == "" {
		return "", errors.New("model returned an empty description")
	}

	return text, nil
}

func (g *geminiEnricher) generate(ctx context.Context, parts []*genai.Part, cfg *genai.GenerateContentConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}

	attrs := []any{slog.String("model", g.model), slog.Duration("latency", time.Since(start))}
	if resp.UsageMetadata != nil {
		attrs = append(attrs, slog.Int("total_tokens", int(resp.UsageMetadata.TotalTokenCount)))
	}
	g.logger.Debug("Gemini call completed", attrs...)

	return strings.TrimSpace(resp.Text()), nil
}

func (g *geminiEnricher) generateJSON(ctx context.Context, parts []*genai.Part, schema *genai.Schema, out any) error {
	text, err := g.generate(ctx, parts, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      genai.Ptr[float32](0.2),
	})
	if err != nil {
		return err
	}

	return decodeJSON(text, out)
}

// decodeJSON tolerates responses wrapped in a markdown code fence.
func decodeJSON(text string, out any) error {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	if text == "" {
		return errors.New("empty model response")
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return errors.Wrap(err, "decode model response")
	}

	return nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
