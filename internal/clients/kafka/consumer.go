package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Consumer handles consuming dispatch jobs from Kafka
type Consumer struct {
	reader *kafka.Reader
	logger *observability.Logger
}

// ConsumerConfig contains configuration for Kafka consumer
type ConsumerConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	MinBytes int
	MaxBytes int
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, logger *observability.Logger) *Consumer {
	// Set defaults
	if config.MinBytes == 0 {
		config.MinBytes = 10e3 // 10KB
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = 10e6 // 10MB
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  config.Brokers,
		Topic:    config.Topic,
		GroupID:  config.GroupID,
		MinBytes: config.MinBytes,
		MaxBytes: config.MaxBytes,
		// Start reading from the earliest message if no offset exists
		StartOffset: kafka.FirstOffset,
		// Manual commit after successful processing
		CommitInterval: 0,
	})

	return &Consumer{
		reader: reader,
		logger: logger,
	}
}

// ConsumeDispatchJobs continuously consumes dispatch jobs and processes them
func (c *Consumer) ConsumeDispatchJobs(ctx context.Context, handler func(context.Context, DispatchMessage) error) error {
	c.logger.Info(ctx, "Starting dispatch job consumer")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info(ctx, "Stopping dispatch job consumer")
			return ctx.Err()
		default:
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				c.logger.Error(ctx, "failed to fetch message from kafka", err)
				continue
			}

			var job DispatchMessage
			if err := json.Unmarshal(msg.Value, &job); err != nil {
				c.logger.Error(ctx, "failed to unmarshal dispatch job", err)
				// Commit even on error to skip bad messages
				c.reader.CommitMessages(ctx, msg)
				continue
			}

			msgCtx := observability.WithFields(ctx,
				observability.Field{Key: "message_id", Value: job.MessageID},
				observability.Field{Key: "campaign_id", Value: job.CampaignID},
				observability.Field{Key: "partition", Value: msg.Partition},
				observability.Field{Key: "offset", Value: msg.Offset},
			)

			if err := handler(msgCtx, job); err != nil {
				c.logger.Error(msgCtx, "failed to process dispatch job", err)
				// Don't commit on processing error - will retry
				continue
			}

			if err := c.reader.CommitMessages(msgCtx, msg); err != nil {
				c.logger.Error(msgCtx, "failed to commit message", err)
			}
		}
	}
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	c.logger.Info(context.Background(), fmt.Sprintf("Closing kafka consumer for topic %s", c.reader.Config().Topic))
	return c.reader.Close()
}
