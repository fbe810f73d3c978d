package telemetry

import (
	"context"
	"strings"
	"testing"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
)

func TestGCPPubSubSinkPublishes(t *testing.T) {
	// Use the in-memory Pub/Sub emulator.
	server := pstest.NewServer()
	defer server.Close()
	t.Setenv("PUBSUB_EMULATOR_HOST", server.Addr)

	ctx := context.Background()
	client, err := pubsub.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	defer client.Close()
	if _, err := client.CreateTopic(ctx, "devtools"); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	sink, err := newGCPPubSubSink(ctx, SinkConfig{
		ID:   "pubsub",
		Type: TypeGCPPubSub,
		GCPPubSub: &PubSubSinkConfig{
			ProjectID: "test-project",
			Topic:     "devtools",
		},
	}, nil)
	if err != nil {
		t.Fatalf("newGCPPubSubSink: %v", err)
	}
	defer sink.(*pubsubSink).Close()

	if err := sink.Publish(ctx, testEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	msgs := server.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Attributes["endpoint_type"] != "embeddings" {
		t.Fatalf("attributes = %v", msgs[0].Attributes)
	}
	if !strings.Contains(string(msgs[0].Data), `"id":"entry-1"`) {
		t.Fatalf("data = %s", msgs[0].Data)
	}
}
