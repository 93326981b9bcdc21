package pubsub

import (
	"context"
	"encoding/json"
	"testing"

	"storerating/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	testProjectID = "storerating-test"
	testTopicID   = "rating-events"
)

func newFakePubSub(t *testing.T, createTopic bool) (*pstest.Server, *pubsub.Client) {
	t.Helper()
	ctx := context.Background()

	srv := pstest.NewServer()
	t.Cleanup(func() { srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	client, err := pubsub.NewClient(ctx, testProjectID, option.WithGRPCConn(conn))
	require.NoError(t, err)

	if createTopic {
		_, err = client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
			Name: "projects/" + testProjectID + "/topics/" + testTopicID,
		})
		require.NoError(t, err)
	}

	return srv, client
}

func TestGooglePubSubPublisher_PublishesOrderedByStore(t *testing.T) {
	srv, client := newFakePubSub(t, true)

	publisher, err := newGooglePubSubPublisher(context.Background(), client, testProjectID, testTopicID, newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Close() })

	event := newTestEvent()
	require.NoError(t, publisher.PublishRatingEvent(context.Background(), event))

	messages := srv.Messages()
	require.Len(t, messages, 1)

	msg := messages[0]
	assert.Equal(t, "7", msg.OrderingKey)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"event_type": service.EventRatingSubmitted,
		"store_id":   "7",
		"user_id":    "3",
		"request_id": "req-1",
	}, msg.Attributes)

	var got service.RatingEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, *event, got)
}

func TestGooglePubSubPublisher_MissingTopic(t *testing.T) {
	_, client := newFakePubSub(t, false)
	t.Cleanup(func() { _ = client.Close() })

	_, err := newGooglePubSubPublisher(context.Background(), client, testProjectID, testTopicID, newDiscardLogger())

	assert.Error(t, err)
}
