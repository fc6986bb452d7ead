package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	TypeMessageSent         = "message.sent"
	TypeNotificationCreated = "notification.created"
)

// Event is the envelope published for downstream consumers (analytics,
// future integrations). Delivery is fire-and-forget; a failed publish is
// logged, never surfaced to the caller.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, key string, evt Event)
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	log    *zap.SugaredLogger
}

func NewKafkaPublisher(brokers []string, topic string, log *zap.SugaredLogger) Publisher {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &kafkaPublisher{writer: w, log: log}
}

func (p *kafkaPublisher) Publish(ctx context.Context, key string, evt Event) {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(evt)
	if err != nil {
		p.log.Errorw("events: marshal", "type", evt.Type, "error", err)
		return
	}
	msg := kafka.Message{Key: []byte(key), Value: value, Time: evt.OccurredAt}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Errorw("events: kafka publish", "type", evt.Type, "error", err)
	}
}

func (p *kafkaPublisher) Close() error { return p.writer.Close() }

// Nop is used when kafka is disabled and in tests.
type Nop struct{}

func (Nop) Publish(context.Context, string, Event) {}

func (Nop) Close() error { return nil }
