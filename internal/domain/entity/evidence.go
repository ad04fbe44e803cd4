package entity

import "time"

// Evidence is a supporting document or image uploaded against a listing.
type Evidence struct {
	ID          string    `json:"id"`
	ListingID   string    `json:"listingId"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"` // MIME type
	StoragePath string    `json:"storagePath"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary,omitempty"`
	Suspicious  []string  `json:"suspicious,omitempty"`
	Verified    bool      `json:"verified"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
