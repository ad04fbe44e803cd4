package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"landmarket/config"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/service"
	mockUC "landmarket/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockUC.MockSellerNotificationUsecase) {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env
	notifyUC := mockUC.NewMockSellerNotificationUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotifyUC: notifyUC,
	}), notifyUC
}

func pushRequest(t *testing.T, event *service.ReviewEvent, attributes map[string]string) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/listing-events-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func servePush(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.ReviewEvent{
		Type:      constants.EventListingReviewed,
		ListingID: "l-1",
		OwnerID:   "seller-1",
		Title:     "Ruiru plot",
		Status:    "approved",
	}

	tests := []struct {
		name       string
		notifyErr  error
		wantStatus int
	}{
		{name: "delivered", notifyErr: nil, wantStatus: http.StatusOK},
		{name: "transient failure is retried", notifyErr: errors.Wrap(service.ErrNotificationUnavailable, "fcm"), wantStatus: http.StatusServiceUnavailable},
		{name: "permanent failure is acknowledged", notifyErr: errors.New("invalid topic"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifyUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
			notifyUC.EXPECT().NotifyReview(mock.Anything, event).Return(tt.notifyErr).Once()

			rec := servePush(h, pushRequest(t, event, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_PropagatesRequestID(t *testing.T) {
	h, notifyUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
	event := &service.ReviewEvent{Type: constants.EventListingDeleted, ListingID: "l-1", OwnerID: "seller-1", RequestID: "from-event"}

	var seen string
	notifyUC.EXPECT().NotifyReview(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *service.ReviewEvent) {
			seen = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(nil).Once()

	rec := servePush(h, pushRequest(t, event, map[string]string{"request_id": "from-attributes"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "from-attributes", seen)
}

func TestPushHandler_HandlePush_BadPayload(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := servePush(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_VerifiesTokenForGoogle(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
	require.True(t, h.verifyPushAuth)

	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }

	rec := servePush(h, pushRequest(t, &service.ReviewEvent{ListingID: "l-1", OwnerID: "o"}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPubSubToken_RejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	assert.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Error(t, verifyPubSubToken(req))
}
