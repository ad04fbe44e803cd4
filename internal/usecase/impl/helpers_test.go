package impl

import (
	"io"
	"log/slog"
	"time"

	"landmarket/config"
	"landmarket/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Listing: &config.ListingConfig{
			PublicBaseURL:    "https://land.example.com/",
			MaxEvidenceFiles: 3,
		},
		Cache: &config.CacheConfig{TTL: time.Minute},
		Search: &config.SearchConfig{
			DefaultLimit: 12,
			MaxLimit:     50,
		},
	}
}

var (
	testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	adminCaller  = &entity.Caller{ID: "admin-1", Email: "admin@example.com", Role: entity.RoleAdmin}
	sellerCaller = &entity.Caller{ID: "seller-1", Email: "seller@example.com", Role: entity.RoleSeller}
	buyerCaller  = &entity.Caller{ID: "buyer-1", Email: "buyer@example.com", Role: entity.RoleBuyer}
)

func ptr[T any](v T) *T {
	return &v
}

func newTestListing(id, ownerID string, status entity.ListingStatus) *entity.Listing {
	return &entity.Listing{
		ID:        id,
		OwnerID:   ownerID,
		Title:     "Quarter acre in " + id,
		Price:     1_500_000,
		Location:  "Kitengela",
		County:    "Kajiado",
		LandType:  "Residential",
		Area:      0.25,
		Status:    status,
		Badge:     entity.BadgeNone,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}
