package entity

import "time"

// ListingStatus is the review state of a listing.
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
	ListingStatusRejected ListingStatus = "rejected"
)

// IsValid checks if the status is one of the known review states.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusPending, ListingStatusApproved, ListingStatusRejected:
		return true
	default:
		return false
	}
}

// Badge is the trust rating attached to a listing.
type Badge string

const (
	BadgeGold   Badge = "Gold"
	BadgeSilver Badge = "Silver"
	BadgeBronze Badge = "Bronze"
	BadgeNone   Badge = "None"
)

// IsValid checks if the badge is one of the known ratings.
func (b Badge) IsValid() bool {
	switch b {
	case BadgeGold, BadgeSilver, BadgeBronze, BadgeNone:
		return true
	default:
		return false
	}
}

// Rank orders badges from strongest (3) to none (0). Unknown badges rank as none.
func (b Badge) Rank() int {
	switch b {
	case BadgeGold:
		return 3
	case BadgeSilver:
		return 2
	case BadgeBronze:
		return 1
	default:
		return 0
	}
}

// ListingImage is a stored image with an alt hint for the front end.
type ListingImage struct {
	URL  string `json:"url"`
	Hint string `json:"hint,omitempty"`
}

// SellerSnapshot is the seller's public identity copied onto the listing at creation time.
type SellerSnapshot struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ImageAnalysis is the AI verdict on the main image.
type ImageAnalysis struct {
	IsAuthentic bool    `json:"isAuthentic"`
	Confidence  float64 `json:"confidence"`
	Notes       string  `json:"notes,omitempty"`
}

// Listing is a parcel of land offered for sale.
type Listing struct {
	ID              string         `json:"id"`
	OwnerID         string         `json:"ownerId"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Price           float64        `json:"price"` // KES
	Location        string         `json:"location"`
	County          string         `json:"county"`
	LandType        string         `json:"landType"`
	Area            float64        `json:"area"` // acres
	Size            string         `json:"size"`
	Amenities       []string       `json:"amenities,omitempty"`
	Boundary        string         `json:"boundary,omitempty"` // GeoJSON polygon
	Status          ListingStatus  `json:"status"`
	Badge           Badge          `json:"badge"`
	BadgeSuggestion *Badge         `json:"badgeSuggestion,omitempty"`
	Image           string         `json:"image,omitempty"`
	ImagePath       string         `json:"-"`
	ImageHint       string         `json:"imageHint,omitempty"`
	Images          []ListingImage `json:"images,omitempty"`
	ImageAnalysis   *ImageAnalysis `json:"imageAnalysis,omitempty"`
	Seller          SellerSnapshot `json:"seller"`
	RejectionReason *string        `json:"rejectionReason"`
	Views           int64          `json:"views"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	AdminReviewedAt *time.Time     `json:"adminReviewedAt,omitempty"`
}

// IsEditableBy reports whether the caller may change the listing's descriptive fields.
// Owners lose edit rights once the listing is approved; admins never do.
func (l *Listing) IsEditableBy(caller *Caller) bool {
	if caller.IsAdmin() {
		return true
	}

	return caller != nil && caller.ID == l.OwnerID && l.Status != ListingStatusApproved
}
