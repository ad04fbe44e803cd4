package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/service"
	"landmarket/internal/usecase"

	"github.com/pkg/errors"
)

// ErrInvalidReviewEvent is returned for events that can never be delivered.
var ErrInvalidReviewEvent = errors.New("review event without listing or owner")

type sellerNotificationService struct {
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewSellerNotificationService creates a new seller notification service instance
func NewSellerNotificationService(notificationSvc service.NotificationService, logger *slog.Logger) usecase.SellerNotificationUsecase {
	return &sellerNotificationService{
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// NotifyReview sends the event to the owner's topic.
func (srv *sellerNotificationService) NotifyReview(ctx context.Context, event *service.ReviewEvent) error {
	if event == nil || event.ListingID == "" || event.OwnerID == "" {
		return errors.WithStack(ErrInvalidReviewEvent)
	}

	title, body, ok := reviewMessage(event)
	if !ok {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Ignoring review event",
			slog.String("type", event.Type),
			slog.String("listing_id", event.ListingID),
		)

		return nil
	}

	data := map[string]string{
		"type":       event.Type,
		"listing_id": event.ListingID,
		"status":     event.Status,
		"badge":      event.Badge,
	}

	topic := constants.SellerTopicPrefix + event.OwnerID
	if err := srv.notificationSvc.SendToTopic(ctx, topic, title, body, data); err != nil {
		return errors.Wrapf(err, "failed to notify seller %s", event.OwnerID)
	}

	return nil
}

// reviewMessage renders the push text. Unknown event types report false.
func reviewMessage(event *service.ReviewEvent) (title, body string, ok bool) {
	switch event.Type {
	case constants.EventListingReviewed:
		switch entity.ListingStatus(event.Status) {
		case entity.ListingStatusApproved:
			title = "Listing approved"
			body = fmt.Sprintf("%q is now live.", event.Title)
			if badge := entity.Badge(event.Badge); badge != entity.BadgeNone && badge.IsValid() {
				body = fmt.Sprintf("%q is now live with a %s badge.", event.Title, badge)
			}
		case entity.ListingStatusRejected:
			title = "Listing rejected"
			body = fmt.Sprintf("%q was not approved.", event.Title)
			if event.Reason != "" {
				body = fmt.Sprintf("%q was not approved: %s", event.Title, event.Reason)
			}
		default:
			title = "Listing under review"
			body = fmt.Sprintf("%q is back in the review queue.", event.Title)
		}

		return title, body, true
	case constants.EventListingDeleted:
		return "Listing removed", fmt.Sprintf("%q has been removed from the marketplace.", event.Title), true
	default:
		return "", "", false
	}
}
