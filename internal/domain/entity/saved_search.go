package entity

import "time"

// SearchFilter is the set of optional predicates a buyer can apply to the listing feed.
type SearchFilter struct {
	Query      string   `json:"query,omitempty"`
	County     string   `json:"county,omitempty"`
	LandType   string   `json:"landType,omitempty"`
	MinPrice   *float64 `json:"minPrice,omitempty"`
	MaxPrice   *float64 `json:"maxPrice,omitempty"`
	MinArea    *float64 `json:"minArea,omitempty"`
	MaxArea    *float64 `json:"maxArea,omitempty"`
	Badges     []Badge  `json:"badges,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`
	SortBy     string   `json:"sortBy,omitempty"`
	Limit      int      `json:"limit,omitempty"`
	StartAfter string   `json:"startAfter,omitempty"`
	// Status is honoured only for admins; everyone else sees approved listings.
	Status string `json:"status,omitempty"`
}

// SavedSearch is a named snapshot of a buyer's filters.
type SavedSearch struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"ownerId"`
	Name      string       `json:"name"`
	URL       string       `json:"url"`
	Filters   SearchFilter `json:"filters"`
	CreatedAt time.Time    `json:"createdAt"`
}
