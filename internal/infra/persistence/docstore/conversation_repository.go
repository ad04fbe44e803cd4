package docstore

import (
	"context"
	"slices"

	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/repository"
	"landmarket/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// conversationRepository implements repository.ConversationRepository.
// Messages live in a 'messages' subcollection of each conversation.
type conversationRepository struct {
	client *firestore.Client
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &conversationRepository{client: client}
}

func (repo *conversationRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionConversations)
}

func (repo *conversationRepository) messages(conversationID string) *firestore.CollectionRef {
	return repo.col().Doc(conversationID).Collection(constants.CollectionMessages)
}

func (repo *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation, first *entity.Message) error {
	if conversation.ID == "" {
		conversation.ID = repo.col().NewDoc().ID
	}
	if first != nil && first.ID == "" {
		first.ID = repo.messages(conversation.ID).NewDoc().ID
	}

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(repo.col().Doc(conversation.ID), fromConversationDomain(conversation)); err != nil {
			return err
		}
		if first == nil {
			return nil
		}

		return tx.Create(repo.messages(conversation.ID).Doc(first.ID), fromMessageDomain(first))
	})
	if err != nil {
		return errors.Wrap(err, "failed to create conversation")
	}

	return nil
}

func (repo *conversationRepository) FindByID(ctx context.Context, id string) (*entity.Conversation, error) {
	snap, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, wrapRead(err, "failed to find conversation")
	}

	return toConversationDomain(snap)
}

// ListByParticipant merges the buyer-side and seller-side queries, most recently active first.
func (repo *conversationRepository) ListByParticipant(ctx context.Context, uid string) ([]*entity.Conversation, error) {
	seen := make(map[string]struct{})
	var conversations []*entity.Conversation

	for _, field := range []string{"buyerId", "sellerId"} {
		snaps, err := repo.col().Where(field, "==", uid).Documents(ctx).GetAll()
		if err != nil {
			return nil, wrapRead(err, "failed to list conversations")
		}
		for _, snap := range snaps {
			if _, dup := seen[snap.Ref.ID]; dup {
				continue
			}
			seen[snap.Ref.ID] = struct{}{}

			conversation, err := toConversationDomain(snap)
			if err != nil {
				return nil, err
			}
			conversations = append(conversations, conversation)
		}
	}

	slices.SortStableFunc(conversations, func(a, b *entity.Conversation) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	return conversations, nil
}

// AddMessage appends msg and refreshes the thread preview in one transaction.
func (repo *conversationRepository) AddMessage(ctx context.Context, conversationID string, msg *entity.Message) error {
	if msg.ID == "" {
		msg.ID = repo.messages(conversationID).NewDoc().ID
	}

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		ref := repo.col().Doc(conversationID)
		if _, err := tx.Get(ref); err != nil {
			if isNotFound(err) {
				return repository.ErrConversationNotFound
			}

			return err
		}

		if err := tx.Create(repo.messages(conversationID).Doc(msg.ID), fromMessageDomain(msg)); err != nil {
			return err
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "lastMessage", Value: msg.Text},
			{Path: "updatedAt", Value: msg.CreatedAt},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return repository.ErrConversationNotFound
		}

		return errors.Wrap(err, "failed to add message")
	}

	return nil
}

// ListMessages returns the oldest limit messages in chronological order.
func (repo *conversationRepository) ListMessages(ctx context.Context, conversationID string, limit int) ([]*entity.Message, error) {
	query := repo.messages(conversationID).OrderBy("createdAt", firestore.Asc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapRead(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(snaps))
	for _, snap := range snaps {
		var m model.MessageModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrapf(err, "failed to decode message %s", snap.Ref.ID)
		}
		messages = append(messages, &entity.Message{
			ID:        snap.Ref.ID,
			SenderID:  m.SenderID,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}

	return messages, nil
}

// Delete removes the messages first, then the conversation document.
func (repo *conversationRepository) Delete(ctx context.Context, id string) error {
	refs, err := repo.messages(id).DocumentRefs(ctx).GetAll()
	if err != nil {
		return wrapRead(err, "failed to list messages to delete")
	}
	refs = append(refs, repo.col().Doc(id))

	return deleteRefs(ctx, repo.client, refs)
}

func toConversationDomain(snap *firestore.DocumentSnapshot) (*entity.Conversation, error) {
	var m model.ConversationModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode conversation %s", snap.Ref.ID)
	}

	return &entity.Conversation{
		ID:           snap.Ref.ID,
		BuyerID:      m.BuyerID,
		SellerID:     m.SellerID,
		ListingID:    m.ListingID,
		ListingTitle: m.ListingTitle,
		LastMessage:  m.LastMessage,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func fromConversationDomain(c *entity.Conversation) *model.ConversationModel {
	return &model.ConversationModel{
		BuyerID:      c.BuyerID,
		SellerID:     c.SellerID,
		ListingID:    c.ListingID,
		ListingTitle: c.ListingTitle,
		LastMessage:  c.LastMessage,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func fromMessageDomain(msg *entity.Message) *model.MessageModel {
	return &model.MessageModel{
		SenderID:  msg.SenderID,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}
