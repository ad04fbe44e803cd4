package repository

import (
	"context"

	"landmarket/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for buyer-owned documents.
var (
	// ErrConversationNotFound is returned when a conversation does not exist.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrSavedSearchNotFound is returned when a saved search does not exist.
	ErrSavedSearchNotFound = errors.New("saved search not found")
)

// ConversationRepository defines buyer/seller thread persistence.
type ConversationRepository interface {
	// Create writes the conversation and its first message in one batch.
	Create(ctx context.Context, conversation *entity.Conversation, first *entity.Message) error
	FindByID(ctx context.Context, id string) (*entity.Conversation, error)
	// ListByParticipant returns threads where uid is the buyer or the seller, newest first.
	ListByParticipant(ctx context.Context, uid string) ([]*entity.Conversation, error)
	// AddMessage appends a message and updates lastMessage/updatedAt in one batch.
	AddMessage(ctx context.Context, conversationID string, msg *entity.Message) error
	ListMessages(ctx context.Context, conversationID string, limit int) ([]*entity.Message, error)
	// Delete removes the conversation and its messages.
	Delete(ctx context.Context, id string) error
}

// SavedSearchRepository defines saved filter persistence.
type SavedSearchRepository interface {
	Create(ctx context.Context, search *entity.SavedSearch) error
	FindByID(ctx context.Context, id string) (*entity.SavedSearch, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.SavedSearch, error)
	Delete(ctx context.Context, id string) error
}
