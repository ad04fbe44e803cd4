package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotificationUnavailable marks transient delivery failures that are worth retrying.
var ErrNotificationUnavailable = errors.New("notification service unavailable")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendToTopic sends a push notification to every device subscribed to topic
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
