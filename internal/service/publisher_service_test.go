package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-workspace-be/internal/pkg/logger"
	"ai-workspace-be/pkg/events"
)

type recordingForwarder struct {
	received chan events.Event
	err      error
}

func (f *recordingForwarder) Publish(ctx context.Context, event events.Event) error {
	f.received <- event
	return f.err
}

func TestPublisherService_ForwardedByConsumer(t *testing.T) {
	tests := []struct {
		name       string
		forwardErr error
	}{
		{"forwarded", nil},
		{"forwarder failure is swallowed", errors.New("nats down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
			defer pubSub.Close()

			fwd := &recordingForwarder{received: make(chan events.Event, 1), err: tt.forwardErr}
			consumer := NewConsumerService(pubSub, "workspace.events", fwd, logger.NewNopLogger())
			require.NoError(t, consumer.Consume(ctx))

			featureId := uuid.New()
			publisher := NewPublisherService("workspace.events", pubSub)
			require.NoError(t, publisher.Publish(ctx, events.NewFeatureDataUpdated(uuid.New(), featureId, 3)))

			select {
			case got := <-fwd.received:
				assert.Equal(t, events.FeatureDataUpdated, got.EventType())
				assert.Equal(t, featureId.String(), got.Payload()["feature_id"])
				assert.EqualValues(t, 3, got.Payload()["item_count"])
			case <-time.After(2 * time.Second):
				t.Fatal("event was not forwarded")
			}
		})
	}
}

func TestPublisherService_SetsMetadata(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	msgs, err := pubSub.Subscribe(ctx, "workspace.events")
	require.NoError(t, err)

	pageId := uuid.New()
	publisher := NewPublisherService("workspace.events", pubSub)
	require.NoError(t, publisher.Publish(ctx, events.NewFeatureCreated(pageId, uuid.New(), "todo", "Todo List", nil)))

	select {
	case msg := <-msgs:
		assert.Equal(t, events.FeatureCreated, msg.Metadata.Get("event_type"))
		assert.Equal(t, pageId.String(), msg.Metadata.Get("page_id"))
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
}
