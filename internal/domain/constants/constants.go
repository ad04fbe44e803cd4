// Package constants holds identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderLocal    = "local"
)

// AI providers
const (
	AIProviderGemini   = "gemini"
	AIProviderDisabled = "disabled"
)

// Firestore collections
const (
	CollectionListings        = "listings"
	CollectionEvidence        = "evidence"
	CollectionUsers           = "users"
	CollectionContactMessages = "contactMessages"
	CollectionListingReports  = "listingReports"
	CollectionMail            = "mail"
	CollectionConversations   = "conversations"
	CollectionMessages        = "messages"
	CollectionSavedSearches   = "savedSearches"
)

// View cache keys invalidated after listing mutations.
const (
	CacheKeyHome          = "home"
	CacheKeyAdminListings = "admin:listings"
	CacheKeyListingPrefix = "listing:"
)

// Event types published after listing review.
const (
	EventListingReviewed = "listing.reviewed"
	EventListingDeleted  = "listing.deleted"
)

// MaxBatchWrites is the store's per-batch write limit.
const MaxBatchWrites = 500

// MaxInValues is the store's limit for values in an "in" predicate.
const MaxInValues = 30

// SellerTopicPrefix prefixes the push topic a seller's devices subscribe to.
const SellerTopicPrefix = "seller-"
