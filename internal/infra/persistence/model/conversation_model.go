package model

import "time"

// ConversationModel mirrors documents in the 'conversations' collection.
type ConversationModel struct {
	BuyerID      string    `firestore:"buyerId"`
	SellerID     string    `firestore:"sellerId"`
	ListingID    string    `firestore:"listingId"`
	ListingTitle string    `firestore:"listingTitle"`
	LastMessage  string    `firestore:"lastMessage"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

// MessageModel mirrors documents in a conversation's 'messages' subcollection.
type MessageModel struct {
	SenderID  string    `firestore:"senderId"`
	Text      string    `firestore:"text"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// SavedSearchModel mirrors documents in the 'savedSearches' collection.
type SavedSearchModel struct {
	OwnerID   string            `firestore:"ownerId"`
	Name      string            `firestore:"name"`
	URL       string            `firestore:"url"`
	Filters   SearchFilterModel `firestore:"filters"`
	CreatedAt time.Time         `firestore:"createdAt"`
}

type SearchFilterModel struct {
	Query     string   `firestore:"query,omitempty"`
	County    string   `firestore:"county,omitempty"`
	LandType  string   `firestore:"landType,omitempty"`
	MinPrice  *float64 `firestore:"minPrice,omitempty"`
	MaxPrice  *float64 `firestore:"maxPrice,omitempty"`
	MinArea   *float64 `firestore:"minArea,omitempty"`
	MaxArea   *float64 `firestore:"maxArea,omitempty"`
	Badges    []string `firestore:"badges,omitempty"`
	Amenities []string `firestore:"amenities,omitempty"`
	SortBy    string   `firestore:"sortBy,omitempty"`
	Status    string   `firestore:"status,omitempty"`
}
