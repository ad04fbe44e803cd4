package usecase

import (
	"context"

	"landmarket/internal/domain/service"
)

// SellerNotificationUsecase turns listing review events into seller push messages.
type SellerNotificationUsecase interface {
	// NotifyReview pushes the outcome of a review or deletion to the listing owner.
	// Errors wrapping service.ErrNotificationUnavailable are worth retrying.
	NotifyReview(ctx context.Context, event *service.ReviewEvent) error
}
