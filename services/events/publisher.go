package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

const EventBookingRequested = "booking.requested"

// Publisher announces stored booking requests to downstream consumers
// (confirmation mail, back office).
type Publisher interface {
	PublishBookingRequested(ctx context.Context, req models.BookingRequest) error
	Close() error
}

// KafkaPublisher writes booking events to a Kafka topic, keyed by request id.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

// NewKafkaPublisher builds a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		Writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func (p *KafkaPublisher) PublishBookingRequested(ctx context.Context, req models.BookingRequest) error {
	msg, err := BookingRequestedMessage(ctx, req)
	if err != nil {
		return err
	}
	if err := p.Writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s for %s: %w", EventBookingRequested, req.ID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.Writer.Close()
}

// BookingRequestedMessage builds the Kafka message for a stored request. The
// request id is both key and event id, so consumers can drop redeliveries.
func BookingRequestedMessage(ctx context.Context, req models.BookingRequest) (kafka.Message, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal booking event: %w", err)
	}
	headers := []kafka.Header{
		{Key: "event_id", Value: []byte(req.ID)},
		{Key: "event_type", Value: []byte(EventBookingRequested)},
	}
	return kafka.Message{
		Key:     []byte(req.ID),
		Value:   body,
		Headers: InjectTraceHeaders(ctx, headers),
	}, nil
}

// HeaderValue returns the first header with the given key.
func HeaderValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// InjectTraceHeaders appends W3C trace context headers to Kafka headers.
func InjectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier.headers
}

type headerCarrier struct {
	headers []kafka.Header
}

func (c *headerCarrier) Get(key string) string {
	return HeaderValue(c.headers, key)
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingRequested(context.Context, models.BookingRequest) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
