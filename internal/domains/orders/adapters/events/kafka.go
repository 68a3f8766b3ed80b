// Package events publishes order mutations to Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
)

// DefaultTopic receives every order event unless configured otherwise.
const DefaultTopic = "shop-admin.orders"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one message per event, keyed by order id so a
// single order's events stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

type Option func(*KafkaPublisher)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *KafkaPublisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewKafkaPublisher dials lazily; nothing touches the brokers until the first Publish.
func NewKafkaPublisher(brokers []string, topic string, opts ...Option) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		topic = DefaultTopic
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return newPublisher(w, opts...), nil
}

func newPublisher(w messageWriter, opts ...Option) *KafkaPublisher {
	p := &KafkaPublisher{writer: w, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Publish encodes the event as JSON with its type in a header.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("order." + string(event.Type))},
			{Key: "event-id", Value: []byte(event.ID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.LogAttrs(ctx, slog.LevelError, "failed to publish order event",
			slog.String("event.id", event.ID),
			slog.Int64("order.id", event.OrderID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("publish order event: %w", err)
	}
	p.logger.LogAttrs(ctx, slog.LevelInfo, "order event published",
		slog.String("event.id", event.ID),
		slog.String("event.type", string(event.Type)),
		slog.Int64("order.id", event.OrderID),
	)
	return nil
}

// Close flushes pending messages.
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// NoopPublisher drops events; used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.Event) error { return nil }

var (
	_ ports.EventPublisher = (*KafkaPublisher)(nil)
	_ ports.EventPublisher = NoopPublisher{}
)
