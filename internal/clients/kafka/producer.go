package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Producer handles publishing messages to one Kafka topic
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Topic:    config.Topic,
		Balancer: &kafka.LeastBytes{},
		Async:    false,
		// Compression for better throughput
		Compression: kafka.Snappy,
		// Batching for efficiency
		BatchSize: 100,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage represents a domain event on the events topic
type EventMessage struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	StoreSlug  string                 `json:"store_slug"`
	CampaignID *string                `json:"campaign_id,omitempty"`
	Data       map[string]interface{} `json:"data"`
	Timestamp  string                 `json:"timestamp"`
}

// DispatchMessage represents one queued message handed to the dispatch workers
type DispatchMessage struct {
	MessageID  string `json:"message_id"`
	CampaignID string `json:"campaign_id"`
}

// PublishEvent publishes a domain event, partitioned by store for ordering
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.StoreSlug),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// PublishDispatchJobs publishes a batch of dispatch jobs, partitioned by
// campaign so one campaign's sends stay ordered
func (p *Producer) PublishDispatchJobs(ctx context.Context, jobs []DispatchMessage) error {
	if len(jobs) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(jobs))
	for _, job := range jobs {
		jobBytes, err := json.Marshal(job)
		if err != nil {
			p.logger.Error(ctx, fmt.Sprintf("failed to marshal dispatch job %s", job.MessageID), err)
			continue
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(job.CampaignID),
			Value: jobBytes,
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error(ctx, "failed to write dispatch jobs to kafka", err)
		return fmt.Errorf("failed to write dispatch jobs to kafka: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("published %d dispatch jobs to kafka", len(messages)))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
