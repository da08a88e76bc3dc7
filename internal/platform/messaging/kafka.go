package messaging

import (
	"context"
	"log/slog"
	"sync"

	"financeos/contexts/finance-core/forecast-engine/ports"
)

// subscriberBuffer bounds how far a consumer may fall behind before
// Publish starts dropping events for it.
const subscriberBuffer = 128

// subscription is one consumer group's delivery channel for a topic.
type subscription struct {
	group string
	ch    chan ports.EventEnvelope
}

// Kafka is the event bus between the outbox relay and the consumer
// workers. The current implementation is an in-process publish/subscribe
// bus while runtime wiring is finalized for external brokers; the
// surface already matches the broker ports.
type Kafka struct {
	mu     sync.RWMutex
	topics map[string][]subscription
	logger *slog.Logger
}

func NewKafka(_ []string, logger *slog.Logger) (*Kafka, error) {
	return &Kafka{
		topics: make(map[string][]subscription),
		logger: logger,
	}, nil
}

func (k *Kafka) Publish(ctx context.Context, topic string, event ports.EventEnvelope) error {
	k.mu.RLock()
	subs := append([]subscription(nil), k.topics[topic]...)
	k.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sub.ch <- event:
		default:
			if k.logger != nil {
				k.logger.Warn("dropping event for slow subscriber",
					"event", "kafka_publish_drop",
					"module", "internal/platform/messaging",
					"layer", "platform",
					"topic", topic,
					"consumer_group", sub.group,
					"event_id", event.EventID,
				)
			}
		}
	}

	if k.logger != nil {
		k.logger.Info("event published",
			"event", "kafka_publish",
			"module", "internal/platform/messaging",
			"layer", "platform",
			"topic", topic,
			"event_id", event.EventID,
			"event_type", event.EventType,
		)
	}
	return nil
}

func (k *Kafka) Subscribe(
	ctx context.Context,
	topic string,
	consumerGroup string,
	handler func(context.Context, ports.EventEnvelope) error,
) error {
	sub := subscription{group: consumerGroup, ch: make(chan ports.EventEnvelope, subscriberBuffer)}

	k.mu.Lock()
	k.topics[topic] = append(k.topics[topic], sub)
	k.mu.Unlock()

	go k.consume(ctx, topic, sub, handler)
	return nil
}

// consume drains one subscription until its context ends, then detaches
// its channel from the topic.
func (k *Kafka) consume(
	ctx context.Context,
	topic string,
	sub subscription,
	handler func(context.Context, ports.EventEnvelope) error,
) {
	defer k.detach(topic, sub.ch)
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-sub.ch:
			if err := handler(ctx, event); err != nil && k.logger != nil {
				k.logger.Error("consumer handler failed",
					"event", "kafka_consume_failed",
					"module", "internal/platform/messaging",
					"layer", "platform",
					"topic", topic,
					"consumer_group", sub.group,
					"event_id", event.EventID,
					"event_type", event.EventType,
					"error", err.Error(),
				)
			}
		}
	}
}

func (k *Kafka) detach(topic string, target chan ports.EventEnvelope) {
	k.mu.Lock()
	defer k.mu.Unlock()

	subs := k.topics[topic]
	for i, sub := range subs {
		if sub.ch == target {
			k.topics[topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

var (
	_ ports.EventPublisher  = (*Kafka)(nil)
	_ ports.EventSubscriber = (*Kafka)(nil)
)
