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
	"time"

	"housecash/config"
	"housecash/internal/domain/constants"
	"housecash/internal/domain/service"
	mockSvc "housecash/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockSvc.MockNotificationService) {
	notificationSvc := mockSvc.NewMockNotificationService(t)
	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
	})

	return h, notificationSvc
}

func developConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.Firebase = &config.FirebaseConfig{Topic: "ops"}

	return cfg
}

func pushBody(t *testing.T, event any, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "m-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_SendsTopicNotification(t *testing.T) {
	h, notificationSvc := newTestPushHandler(t, developConfig())

	event := &service.EnquiryEvent{
		EnquiryID: "e-1",
		Name:      "Alex",
		Phone:     "0400 000 000",
		Message:   "Need to sell quickly",
		CreatedAt: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
	}

	notificationSvc.EXPECT().
		SendTopicNotification(mock.Anything, "ops", "New enquiry from Alex", "0400 000 000: Need to sell quickly",
			mock.MatchedBy(func(data map[string]string) bool {
				return data[constants.AttrEnquiryID] == "e-1" && data["created_at"] == "2024-06-01T09:30:00Z"
			})).
		Return(nil)

	rec := push(h, pushBody(t, event, map[string]string{constants.AttrEventType: constants.EventTypeEnquiryCreated}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		body       func(t *testing.T) string
		sendErr    error
		expectSend bool
		wantStatus int
	}{
		{
			name:       "malformed envelope",
			body:       func(*testing.T) string { return `{"message":` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data is not an event",
			body: func(*testing.T) string {
				return `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2")) + `"}}`
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "event without name is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, &service.EnquiryEvent{EnquiryID: "e-2", Message: "hi"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "other event types are acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, map[string]string{"foo": "bar"}, map[string]string{constants.AttrEventType: "testimonial.created"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "send failure is retried",
			body: func(t *testing.T) string {
				return pushBody(t, &service.EnquiryEvent{EnquiryID: "e-3", Name: "Kim", Message: "hi"}, nil)
			},
			sendErr:    errors.New("fcm unavailable"),
			expectSend: true,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationSvc := newTestPushHandler(t, developConfig())
			if tt.expectSend {
				notificationSvc.EXPECT().
					SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(tt.sendErr)
			}

			rec := push(h, tt.body(t), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvProduction
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}

	body := func(t *testing.T) string {
		return pushBody(t, &service.EnquiryEvent{EnquiryID: "e-4", Name: "Lee", Message: "hello"}, nil)
	}

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)

		rec := push(h, body(t), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := push(h, body(t), http.Header{"Authorization": {"Bearer abc"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, notificationSvc := newTestPushHandler(t, cfg)
		var gotAudience string
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience
			assert.Equal(t, "abc", token)

			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		notificationSvc.EXPECT().
			SendTopicNotification(mock.Anything, constants.DefaultNotificationTopic, "New enquiry from Lee", "hello", mock.Anything).
			Return(nil)

		rec := push(h, body(t), http.Header{"Authorization": {"Bearer abc"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})
}

func TestPrepareNotificationContent_TruncatesLongMessages(t *testing.T) {
	event := &service.EnquiryEvent{Name: "Sam", Email: "sam@example.com", Message: strings.Repeat("a", 200)}

	title, body, data := prepareNotificationContent(event)

	assert.Equal(t, "New enquiry from Sam", title)
	assert.Equal(t, "sam@example.com: "+strings.Repeat("a", maxPreviewLength)+"…", body)
	assert.NotContains(t, data, "created_at")
}
