package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
	"landmarket/internal/domain/repository"
	"landmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	messageListLimit = 200
	maxMessageLength = 4000
)

type conversationService struct {
	conversationRepo repository.ConversationRepository
	listingRepo      repository.ListingRepository
	logger           *slog.Logger
}

// NewConversationService creates a new conversation service instance
func NewConversationService(
	conversationRepo repository.ConversationRepository,
	listingRepo repository.ListingRepository,
	logger *slog.Logger,
) usecase.ConversationUsecase {
	return &conversationService{
		conversationRepo: conversationRepo,
		listingRepo:      listingRepo,
		logger:           logger,
	}
}

func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartConversation opens a thread between the caller and a listing's seller.
func (srv *conversationService) StartConversation(ctx context.Context, caller *entity.Caller, listingID, text string) (*entity.Conversation, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	text, err := validateMessageText(text)
	if err != nil {
		return nil, err
	}

	listing, err := srv.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	if !entity.CanViewListing(caller, listing).Allowed() {
		return nil, domainerrors.ErrListingNotAvailable
	}
	if listing.OwnerID == caller.ID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cannot start a conversation about your own listing")
	}

	now := time.Now().UTC()
	conv := &entity.Conversation{
		ID:           uuid.NewString(),
		BuyerID:      caller.ID,
		SellerID:     listing.OwnerID,
		ListingID:    listing.ID,
		ListingTitle: listing.Title,
		LastMessage:  text,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	first := &entity.Message{
		ID:        uuid.NewString(),
		SenderID:  caller.ID,
		Text:      text,
		CreatedAt: now,
	}

	if err := srv.conversationRepo.Create(ctx, conv, first); err != nil {
		return nil, errors.Wrap(err, "failed to create conversation")
	}

	srv.log(ctx).Info("Conversation started", slog.String("conversation_id", conv.ID), slog.String("listing_id", listing.ID))

	return conv, nil
}

func (srv *conversationService) ListConversations(ctx context.Context, caller *entity.Caller) ([]*entity.Conversation, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	conversations, err := srv.conversationRepo.ListByParticipant(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return conversations, nil
}

// PostMessage appends a message to a conversation the caller takes part in.
func (srv *conversationService) PostMessage(ctx context.Context, caller *entity.Caller, conversationID, text string) (*entity.Message, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	text, err := validateMessageText(text)
	if err != nil {
		return nil, err
	}

	if _, err := srv.participantConversation(ctx, caller, conversationID); err != nil {
		return nil, err
	}

	msg := &entity.Message{
		ID:        uuid.NewString(),
		SenderID:  caller.ID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.conversationRepo.AddMessage(ctx, conversationID, msg); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to add message")
	}

	return msg, nil
}

func (srv *conversationService) ListMessages(ctx context.Context, caller *entity.Caller, conversationID string) ([]*entity.Message, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	if _, err := srv.participantConversation(ctx, caller, conversationID); err != nil {
		return nil, err
	}

	messages, err := srv.conversationRepo.ListMessages(ctx, conversationID, messageListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// DeleteConversation removes a thread. Only its participants may delete it.
func (srv *conversationService) DeleteConversation(ctx context.Context, caller *entity.Caller, conversationID string) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	if _, err := srv.participantConversation(ctx, caller, conversationID); err != nil {
		return err
	}

	if err := srv.conversationRepo.Delete(ctx, conversationID); err != nil {
		return errors.Wrap(err, "failed to delete conversation")
	}

	return nil
}

// participantConversation hides conversations the caller is not part of behind not-found.
func (srv *conversationService) participantConversation(ctx context.Context, caller *entity.Caller, id string) (*entity.Conversation, error) {
	conv, err := srv.conversationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	if !conv.HasParticipant(caller.ID) {
		return nil, domainerrors.ErrConversationNotFound
	}

	return conv, nil
}

func validateMessageText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("message text is required")
	}
	if len(text) > maxMessageLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("message text is too long")
	}

	return text, nil
}
