// internal/app/system/events/events.go

// Package events publishes bootcamp change notifications for downstream
// consumers (search indexers, caches, mailers).
package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Change types.
const (
	BootcampCreated = "bootcamp.created"
	BootcampUpdated = "bootcamp.updated"
	BootcampDeleted = "bootcamp.deleted"
)

// Change is the JSON payload of one notification.
type Change struct {
	Type string    `json:"type"`
	ID   string    `json:"id"`
	Name string    `json:"name,omitempty"`
	Slug string    `json:"slug,omitempty"`
	At   time.Time `json:"at"`
}

// Publisher sends change notifications.
type Publisher interface {
	Publish(ctx context.Context, c Change) error
	Close() error
}

// Nop discards every change. Used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Change) error { return nil }
func (Nop) Close() error                          { return nil }

// messageWriter is the subset of *kafka.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes JSON changes to a Kafka topic keyed by bootcamp ID,
// so all changes to one bootcamp land on the same partition in order.
type KafkaPublisher struct {
	w   messageWriter
	log *zap.Logger
}

// NewKafkaPublisher builds a synchronous writer for topic on the given
// comma-separated broker list.
func NewKafkaPublisher(brokers, topic string, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	var addrs []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(addrs...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 10 * time.Second,
		},
		log: logger,
	}
}

// Publish encodes c and writes it.
func (p *KafkaPublisher) Publish(ctx context.Context, c Change) error {
	if c.At.IsZero() {
		c.At = time.Now().UTC()
	}
	value, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(c.ID),
		Value: value,
		Time:  c.At,
	}); err != nil {
		p.log.Warn("kafka publish failed", zap.String("type", c.Type), zap.String("id", c.ID), zap.Error(err))
		return err
	}
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
