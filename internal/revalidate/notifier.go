// Package revalidate tells the rendering layer which pages went stale after
// an admin mutation. Events flow through Kafka so the web frontend can be
// redeployed or scaled independently of this service; delivery is
// best-effort and never fails the mutation that triggered it.
package revalidate

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// StaleEvent names a frontend path whose cached render must be rebuilt.
type StaleEvent struct {
	Path       string    `json:"path"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Notifier is the surface admin mutators use to flag stale pages.
type Notifier interface {
	PathStale(ctx context.Context, path, reason string)
}

type kafkaNotifier struct {
	writer *kafka.Writer
}

// NewKafkaNotifier builds a Notifier publishing to the given topic.
func NewKafkaNotifier(brokers []string, topic string) Notifier {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      brokers,
		Topic:        topic,
		BatchTimeout: 50 * time.Millisecond,
	})
	return &kafkaNotifier{writer: writer}
}

func (n *kafkaNotifier) PathStale(ctx context.Context, path, reason string) {
	event := StaleEvent{Path: path, Reason: reason, OccurredAt: time.Now().UTC()}

	value, err := json.Marshal(event)
	if err != nil {
		log.Printf("revalidate: marshal event for %s: %v", path, err)
		return
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(path),
		Value: value,
	})
	if err != nil {
		log.Printf("revalidate: publish stale path %s: %v", path, err)
	}
}

// NopNotifier is used when Kafka is not configured (local development).
type NopNotifier struct{}

func (NopNotifier) PathStale(ctx context.Context, path, reason string) {
	log.Printf("revalidate (noop): %s (%s)", path, reason)
}
