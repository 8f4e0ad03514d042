// Package notifier hands finding notifications to the delivery pipeline.
// Email and push delivery consume the Kafka topic; this service only
// produces.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"comply/internal/finding"
	"comply/pkg/requestcontext"
)

const headerEvent = "event"

// KafkaPublisher produces notifications to a Kafka topic, keyed by finding id
// so every event for one finding lands on the same partition.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

func NewKafkaPublisher(client *kgo.Client, topic string) *KafkaPublisher {
	return &KafkaPublisher{client: client, topic: topic}
}

// Publish blocks until the brokers acknowledge the record.
func (p *KafkaPublisher) Publish(ctx context.Context, n finding.Notification) error {
	rec, err := newRecord(p.topic, n)
	if err != nil {
		return err
	}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce finding notification: %w", err)
	}
	return nil
}

func newRecord(topic string, n finding.Notification) (*kgo.Record, error) {
	value, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("encode finding notification: %w", err)
	}
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(n.FindingID.String()),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: headerEvent, Value: []byte(n.Event)},
		},
	}, nil
}

// LogPublisher writes notifications to the log. Used when no brokers are
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, n finding.Notification) error {
	p.logger.InfoContext(ctx, "finding notification",
		"request_id", requestcontext.RequestID(ctx),
		"organization_id", n.OrganizationID,
		"finding_id", n.FindingID,
		"event", n.Event,
		"status", n.Status,
		"url", n.URL,
	)
	return nil
}
