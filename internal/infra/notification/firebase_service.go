// Package notification delivers push notifications to sellers' devices.
package notification

import (
	"context"
	"log/slog"

	"landmarket/config"
	"landmarket/internal/domain/service"
	firebaseapp "landmarket/internal/infra/firebase"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds the dependencies for NewNotificationService.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// Module provides the notification service.
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)

// NewNotificationService uses Cloud Messaging when a Firebase project is configured
// and a logging stand-in otherwise.
func NewNotificationService(params Params) (service.NotificationService, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.ProjectID == "" {
		params.Logger.Warn("Firebase project not configured, push notifications will only be logged")

		return &logService{logger: params.Logger}, nil
	}

	client, err := firebaseapp.NewMessaging(params.Ctx, params.App)
	if err != nil {
		return nil, err
	}

	return NewFirebaseService(client), nil
}

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService wraps a Cloud Messaging client.
func NewFirebaseService(client *messaging.Client) service.NotificationService {
	return &firebaseService{client: client}
}

// SendToTopic sends a push notification to every device subscribed to topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if isRetryable(err) {
			return errors.Wrapf(service.ErrNotificationUnavailable, "topic %s: %v", topic, err)
		}

		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	return nil
}

func isRetryable(err error) bool {
	return messaging.IsUnavailable(err) || messaging.IsInternal(err) || messaging.IsQuotaExceeded(err)
}

type logService struct {
	logger *slog.Logger
}

func (s *logService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "[LogNotification] Push notification",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
