package usecase

import (
	"context"

	"landmarket/internal/domain/entity"
)

// ListingPage is one page of listings plus the cursor for the next page.
type ListingPage struct {
	Listings      []*entity.Listing `json:"listings"`
	LastVisibleID *string           `json:"lastVisibleId"`
}

// EmptyPage is the page returned when a read degrades.
func EmptyPage() *ListingPage {
	return &ListingPage{Listings: []*entity.Listing{}}
}

// SearchUsecase is the read side of the listing feed. Its methods never fail:
// any read error degrades to an empty page.
type SearchUsecase interface {
	// Search returns a page of listings matching every supplied predicate.
	Search(ctx context.Context, caller *entity.Caller, filter entity.SearchFilter) *ListingPage

	// ListMine returns the caller's own listings in every status.
	ListMine(ctx context.Context, caller *entity.Caller) *ListingPage
}
