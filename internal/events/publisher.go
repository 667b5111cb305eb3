package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// EventPublisher publishes domain events. Failures are surfaced to callers,
// who treat publishing as best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
	Close() error
}

// WatermillPublisher publishes events to a single topic through any
// watermill message.Publisher.
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
	logger    *slog.Logger
}

// NewInProcessPublisher returns a GoChannel-backed publisher for development
// and single-process deployments.
func NewInProcessPublisher(topic string, logger *slog.Logger) *WatermillPublisher {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &WatermillPublisher{
		publisher: pubSub,
		topic:     topic,
		logger:    logger,
	}
}

// NewKafkaPublisher returns a Kafka-backed publisher for deployments with
// brokers configured.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (*WatermillPublisher, error) {
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	return &WatermillPublisher{
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *WatermillPublisher) Publish(_ context.Context, eventType string, data interface{}) error {
	event := Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		Source:     Source,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", eventType, err)
	}

	p.logger.Debug("event published", "type", eventType, "id", event.ID)
	return nil
}

func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}
