package entity

import "time"

// Conversation is a buyer-to-seller messaging thread about one listing.
type Conversation struct {
	ID           string    `json:"id"`
	BuyerID      string    `json:"buyerId"`
	SellerID     string    `json:"sellerId"`
	ListingID    string    `json:"listingId"`
	ListingTitle string    `json:"listingTitle"`
	LastMessage  string    `json:"lastMessage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasParticipant reports whether uid is the buyer or the seller of the thread.
func (c *Conversation) HasParticipant(uid string) bool {
	return uid != "" && (c.BuyerID == uid || c.SellerID == uid)
}

// Message is a single entry in a conversation.
type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
