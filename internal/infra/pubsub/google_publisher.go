package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"storerating/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher. The topic must already exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	publisher, err := newGooglePubSubPublisher(ctx, client, projectID, topicID, logger)
	if err != nil {
		client.Close()

		return nil, err
	}

	return publisher, nil
}

func newGooglePubSubPublisher(ctx context.Context, client *pubsub.Client, projectID, topicID string, logger *slog.Logger) (*googlePubSubPublisher, error) {
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	// Events of one store are delivered in publish order.
	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishRatingEvent publishes a rating event and waits for the server ack.
func (p *googlePubSubPublisher) PublishRatingEvent(ctx context.Context, event *service.RatingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	orderingKey := strconv.FormatInt(event.StoreID, 10)
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(orderingKey)

		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Rating event published",
		slog.String("event_id", event.EventID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// eventAttributes exposes the identifiers subscribers filter on.
func eventAttributes(event *service.RatingEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": event.Type,
		"store_id":   strconv.FormatInt(event.StoreID, 10),
		"user_id":    strconv.FormatInt(event.UserID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
