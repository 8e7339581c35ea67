package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topic is the bus topic every transition event is published on.
const Topic = "taskboard.transitions"

// metaKind is the message metadata key carrying the event kind.
const metaKind = "kind"

// Bus is an in-process pub/sub stream of transition events. Payloads are
// JSON-encoded [Event] values on a single topic. Publishing never blocks
// on subscribers; a subscriber that falls behind buffers up to the
// configured channel size.
type Bus struct {
	pubsub *gochannel.GoChannel
}

// NewBus creates a bus. If logger is nil, watermill logging is disabled.
func NewBus(logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{
				OutputChannelBuffer:            64,
				Persistent:                     false,
				BlockPublishUntilSubscriberAck: false,
			},
			logger,
		),
	}
}

// Publish sends one event to every current subscriber.
func (b *Bus) Publish(e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", e.ID, err)
	}

	msg := message.NewMessage(e.ID, payload)
	msg.Metadata.Set(metaKind, string(e.Kind))

	if err := b.pubsub.Publish(Topic, msg); err != nil {
		return fmt.Errorf("publish event %s: %w", e.ID, err)
	}
	return nil
}

// Subscribe returns a channel of events published after this call. The
// channel closes when ctx is cancelled or the bus is closed. Events that
// fail to decode are skipped.
func (b *Bus) Subscribe(ctx context.Context) (<-chan Event, error) {
	msgs, err := b.pubsub.Subscribe(ctx, Topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", Topic, err)
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		for msg := range msgs {
			var e Event
			if err := json.Unmarshal(msg.Payload, &e); err != nil {
				msg.Ack()
				continue
			}
			msg.Ack()

			select {
			case events <- e:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
