package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storerating/config"
	"storerating/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.RatingEvent {
	return &service.RatingEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		Type:      service.EventRatingSubmitted,
		RatingID:  9,
		UserID:    3,
		StoreID:   7,
		Rating:    4,
		Created:   true,
		At:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishRatingEvent(context.Background(), newTestEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "7", received.Message.Attributes["store_id"])
	assert.Equal(t, service.EventRatingSubmitted, received.Message.Attributes["event_type"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.RatingEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, int64(9), event.RatingID)
	assert.Equal(t, 4, event.Rating)
	assert.True(t, event.Created)
}

func TestLocalHTTPPublisher_FailsOnErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishRatingEvent(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "unset", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google"}, wantErr: "project ID is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestNoopPublisher_DropsEvents(t *testing.T) {
	publisher := NewNoopPublisher(newDiscardLogger())

	assert.NoError(t, publisher.PublishRatingEvent(context.Background(), newTestEvent()))
	assert.NoError(t, publisher.Close())
}
