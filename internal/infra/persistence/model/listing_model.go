// Package model holds the Firestore document shapes. Field names are the
// stored document keys.
package model

import "time"

// ListingModel mirrors documents in the 'listings' collection.
type ListingModel struct {
	OwnerID         string              `firestore:"ownerId"`
	Title           string              `firestore:"title"`
	Description     string              `firestore:"description"`
	Price           float64             `firestore:"price"`
	Location        string              `firestore:"location"`
	County          string              `firestore:"county"`
	LandType        string              `firestore:"landType"`
	Area            float64             `firestore:"area"`
	Size            string              `firestore:"size"`
	Amenities       []string            `firestore:"amenities"`
	Boundary        string              `firestore:"boundary,omitempty"`
	Status          string              `firestore:"status"`
	Badge           string              `firestore:"badge"`
	BadgeSuggestion *string             `firestore:"badgeSuggestion,omitempty"`
	Image           string              `firestore:"image"`
	ImagePath       string              `firestore:"imagePath"`
	ImageHint       string              `firestore:"imageHint"`
	Images          []ListingImageModel `firestore:"images"`
	ImageAnalysis   *ImageAnalysisModel `firestore:"imageAnalysis,omitempty"`
	Seller          SellerModel         `firestore:"seller"`
	RejectionReason *string             `firestore:"rejectionReason"`
	Views           int64               `firestore:"views"`
	CreatedAt       time.Time           `firestore:"createdAt"`
	UpdatedAt       time.Time           `firestore:"updatedAt"`
	AdminReviewedAt *time.Time          `firestore:"adminReviewedAt,omitempty"`
}

type ListingImageModel struct {
	URL  string `firestore:"url"`
	Hint string `firestore:"hint"`
}

type ImageAnalysisModel struct {
	IsAuthentic bool    `firestore:"isAuthentic"`
	Confidence  float64 `firestore:"confidence"`
	Notes       string  `firestore:"notes"`
}

type SellerModel struct {
	Name      string `firestore:"name"`
	AvatarURL string `firestore:"avatarUrl"`
}

// EvidenceModel mirrors documents in the 'evidence' collection.
type EvidenceModel struct {
	ListingID   string    `firestore:"listingId"`
	OwnerID     string    `firestore:"ownerId"`
	Name        string    `firestore:"name"`
	Type        string    `firestore:"type"`
	StoragePath string    `firestore:"storagePath"`
	Content     string    `firestore:"content"`
	Summary     string    `firestore:"summary"`
	Suspicious  []string  `firestore:"suspicious"`
	Verified    bool      `firestore:"verified"`
	UploadedAt  time.Time `firestore:"uploadedAt"`
}
