package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"proptrust/config"
	deliverycontext "proptrust/internal/delivery/context"
	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/service"
	repositorymocks "proptrust/internal/mocks/repository"
	servicemocks "proptrust/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixture struct {
	handler         *PushHandler
	deviceRepo      *repositorymocks.MockDeviceRepository
	notificationSvc *servicemocks.MockNotificationService
	dedup           *servicemocks.MockDeliveryDeduplicator
}

func newPushFixture(t *testing.T) *pushFixture {
	t.Helper()

	f := &pushFixture{
		deviceRepo:      repositorymocks.NewMockDeviceRepository(t),
		notificationSvc: servicemocks.NewMockNotificationService(t),
		dedup:           servicemocks.NewMockDeliveryDeduplicator(t),
	}
	f.handler = NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          slog.New(slog.DiscardHandler),
		NotificationSvc: f.notificationSvc,
		DeviceRepo:      f.deviceRepo,
		Dedup:           f.dedup,
	})

	return f
}

func newEvent(recipientID uuid.UUID) *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID:   "req-123",
		EventID:     uuid.NewString(),
		RecipientID: recipientID.String(),
		ListingID:   uuid.NewString(),
		Kind:        "listing_live",
		Title:       "Listing approved",
		Body:        "Your listing at 3 Ozumba Mbadiwe is now live.",
		Data:        map[string]string{"action": "listing.vetting_approved"},
		OccurredAt:  time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, event *service.NotificationEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/p/subscriptions/listing-notifications"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func (f *pushFixture) push(t *testing.T, body string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, f.handler.HandlePush(e.NewContext(req, rec)))

	return rec.Code
}

func devicesWithTokens(ownerID uuid.UUID, tokens ...string) []*entity.Device {
	devices := make([]*entity.Device, 0, len(tokens))
	for _, token := range tokens {
		devices = append(devices, &entity.Device{ID: uuid.New(), OwnerID: ownerID, FCMToken: token, IsActive: true})
	}

	return devices
}

func withTokens(tokens ...string) any {
	return mock.MatchedBy(func(msg *service.PushMessage) bool {
		return assert.ObjectsAreEqual(tokens, msg.Tokens)
	})
}

func TestHandlePush_DeliversAndDeactivatesInvalidTokens(t *testing.T) {
	f := newPushFixture(t)
	recipientID := uuid.New()
	event := newEvent(recipientID)

	f.dedup.EXPECT().Claim(mock.Anything, event.EventID).Return(true, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByOwner(mock.Anything, recipientID).
		Return(devicesWithTokens(recipientID, "tok-a", "tok-b"), nil)
	f.notificationSvc.EXPECT().
		Push(mock.Anything, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"tok-a", "tok-b"}, msg.Tokens) &&
				msg.Title == event.Title &&
				msg.Body == event.Body &&
				msg.Data["event_id"] == event.EventID &&
				msg.Data["listing_id"] == event.ListingID &&
				msg.Data["kind"] == "listing_live" &&
				msg.Data["action"] == "listing.vetting_approved"
		})).
		Return(&service.PushResult{Sent: 1, Failed: 1, InvalidTokens: []string{"tok-b"}}, nil)
	f.deviceRepo.EXPECT().DeactivateByTokens(mock.Anything, []string{"tok-b"}, uuid.Nil).Return(nil)

	assert.Equal(t, http.StatusOK, f.push(t, pushBody(t, event)))
}

func TestHandlePush_DropsDuplicateDelivery(t *testing.T) {
	f := newPushFixture(t)
	event := newEvent(uuid.New())

	f.dedup.EXPECT().Claim(mock.Anything, event.EventID).Return(false, nil)

	assert.Equal(t, http.StatusOK, f.push(t, pushBody(t, event)))
}

func TestHandlePush_ProviderFailureReleasesClaimAndRetries(t *testing.T) {
	f := newPushFixture(t)
	recipientID := uuid.New()
	event := newEvent(recipientID)

	f.dedup.EXPECT().Claim(mock.Anything, event.EventID).Return(true, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByOwner(mock.Anything, recipientID).
		Return(devicesWithTokens(recipientID, "tok-a"), nil)
	f.notificationSvc.EXPECT().Push(mock.Anything, withTokens("tok-a")).
		Return(nil, errors.New("fcm unavailable"))
	f.dedup.EXPECT().Release(mock.Anything, event.EventID).Return(nil)

	assert.Equal(t, http.StatusServiceUnavailable, f.push(t, pushBody(t, event)))
}

func TestHandlePush_DeviceLookupFailureRetries(t *testing.T) {
	f := newPushFixture(t)
	recipientID := uuid.New()
	event := newEvent(recipientID)

	f.dedup.EXPECT().Claim(mock.Anything, event.EventID).Return(true, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByOwner(mock.Anything, recipientID).Return(nil, errors.New("connection reset"))
	f.dedup.EXPECT().Release(mock.Anything, event.EventID).Return(errors.New("redis down"))

	assert.Equal(t, http.StatusServiceUnavailable, f.push(t, pushBody(t, event)))
}

func TestHandlePush_ClaimFailureRetriesWithoutRelease(t *testing.T) {
	f := newPushFixture(t)
	event := newEvent(uuid.New())

	f.dedup.EXPECT().Claim(mock.Anything, event.EventID).Return(false, errors.New("redis down"))

	assert.Equal(t, http.StatusServiceUnavailable, f.push(t, pushBody(t, event)))
}

func TestHandlePush_NoDevicesAcknowledges(t *testing.T) {
	f := newPushFixture(t)
	recipientID := uuid.New()
	event := newEvent(recipientID)

	f.dedup.EXPECT().Claim(mock.Anything, event.EventID).Return(true, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByOwner(mock.Anything, recipientID).Return(nil, nil)

	assert.Equal(t, http.StatusOK, f.push(t, pushBody(t, event)))
}

func TestHandlePush_SplitsIntoProviderBatches(t *testing.T) {
	f := newPushFixture(t)
	recipientID := uuid.New()
	event := newEvent(recipientID)

	tokens := make([]string, maxTokensPerBatch+1)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok-%04d", i)
	}

	f.dedup.EXPECT().Claim(mock.Anything, event.EventID).Return(true, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByOwner(mock.Anything, recipientID).
		Return(devicesWithTokens(recipientID, tokens...), nil)
	f.notificationSvc.EXPECT().Push(mock.Anything, withTokens(tokens[:maxTokensPerBatch]...)).
		Return(&service.PushResult{Sent: maxTokensPerBatch}, nil).Once()
	f.notificationSvc.EXPECT().Push(mock.Anything, withTokens(tokens[maxTokensPerBatch:]...)).
		Return(nil, errors.New("quota exceeded")).Once()

	// The first batch reached the recipient, so the message is acknowledged.
	assert.Equal(t, http.StatusOK, f.push(t, pushBody(t, event)))
}

func TestHandlePush_RejectsMalformedMessages(t *testing.T) {
	f := newPushFixture(t)

	assert.Equal(t, http.StatusBadRequest, f.push(t, `{"message":{"data":"%%%not-base64"}}`))

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, f.push(t, `{"message":{"data":"`+notJSON+`"}}`))
}

func TestHandlePush_AcknowledgesInvalidRecipient(t *testing.T) {
	f := newPushFixture(t)
	event := newEvent(uuid.New())
	event.RecipientID = "nobody"

	assert.Equal(t, http.StatusOK, f.push(t, pushBody(t, event)))
}

func TestExtractRequestID(t *testing.T) {
	h := newPushFixture(t).handler

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	event := &service.NotificationEvent{RequestID: "from-event"}
	assert.Equal(t, "from-attributes", h.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(context.Background(), &msg, event))

	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")
	assert.Equal(t, "from-header", h.extractRequestID(ctx, &msg, &service.NotificationEvent{}))

	generated := h.extractRequestID(context.Background(), &msg, &service.NotificationEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
