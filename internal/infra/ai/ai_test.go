package ai

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"landmarket/config"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    service.BadgeSuggestion
		wantErr bool
	}{
		{
			name: "plain json",
			text: `{"badge":"Gold","reason":"deed and map agree"}`,
			want: service.BadgeSuggestion{Badge: entity.BadgeGold, Reason: "deed and map agree"},
		},
		{
			name: "fenced json",
			text: "```json\n{\"badge\":\"Bronze\",\"reason\":\"partial\"}\n```",
			want: service.BadgeSuggestion{Badge: entity.BadgeBronze, Reason: "partial"},
		},
		{name: "empty", text: "  ", wantErr: true},
		{name: "not json", text: "Gold", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got service.BadgeSuggestion
			err := decodeJSON(tt.text, &got)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBadgePrompt_BoundsEvidence(t *testing.T) {
	huge := strings.Repeat("a", maxEvidenceChars)
	prompt := badgePrompt("Kitengela 1/8 acre", []string{huge, "second document"})

	assert.Contains(t, prompt, "Listing title: Kitengela 1/8 acre")
	assert.Contains(t, prompt, "--- Document 1 ---")
	assert.NotContains(t, prompt, "second document")
}

func TestBadgePrompt_NoEvidence(t *testing.T) {
	assert.Contains(t, badgePrompt("Plot", nil), "No documents were provided.")
}

func TestDescriptionPrompt_SkipsEmptyFacts(t *testing.T) {
	prompt := descriptionPrompt(service.DescriptionFacts{Title: "Ruiru plot", County: "Kiambu", Price: 1500000})

	assert.Contains(t, prompt, "County: Kiambu")
	assert.Contains(t, prompt, "Price: KES 1500000")
	assert.NotContains(t, prompt, "Location:")
	assert.NotContains(t, prompt, "Amenities:")
}

func TestNewEnrichmentService_Disabled(t *testing.T) {
	enricher, err := NewEnrichmentService(EnricherParams{
		Ctx:    context.Background(),
		Config: &config.Config{AI: &config.AIConfig{Provider: "disabled"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, err = enricher.ExtractText(context.Background(), []byte("png"), "image/png")
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = enricher.SuggestBadge(context.Background(), "Plot", nil)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestNewEnrichmentService_UnknownProvider(t *testing.T) {
	_, err := NewEnrichmentService(EnricherParams{
		Ctx:    context.Background(),
		Config: &config.Config{AI: &config.AIConfig{Provider: "llama"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 0.42, clamp01(0.42))
	assert.Equal(t, 1.0, clamp01(7))
}
