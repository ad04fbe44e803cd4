package usecase

import (
	"context"

	"landmarket/internal/domain/entity"
)

// ConversationUsecase covers buyer/seller messaging.
type ConversationUsecase interface {
	// StartConversation opens a thread with the seller of a listing.
	StartConversation(ctx context.Context, caller *entity.Caller, listingID, text string) (*entity.Conversation, error)
	ListConversations(ctx context.Context, caller *entity.Caller) ([]*entity.Conversation, error)
	PostMessage(ctx context.Context, caller *entity.Caller, conversationID, text string) (*entity.Message, error)
	ListMessages(ctx context.Context, caller *entity.Caller, conversationID string) ([]*entity.Message, error)
	// DeleteConversation is reserved to the buyer who opened the thread.
	DeleteConversation(ctx context.Context, caller *entity.Caller, conversationID string) error
}

// SavedSearchUsecase covers persisted filter snapshots.
type SavedSearchUsecase interface {
	SaveSearch(ctx context.Context, caller *entity.Caller, name, url string, filters entity.SearchFilter) (*entity.SavedSearch, error)
	ListSavedSearches(ctx context.Context, caller *entity.Caller) ([]*entity.SavedSearch, error)
	DeleteSavedSearch(ctx context.Context, caller *entity.Caller, id string) error
}

// SweepUsecase reconciles documents the non-transactional workflows can leave behind.
type SweepUsecase interface {
	// SweepOrphanedEvidence deletes evidence whose listing no longer exists.
	SweepOrphanedEvidence(ctx context.Context) (int, error)
}
