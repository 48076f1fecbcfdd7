package kafka

import (
	"context"
	"errors"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"credlock/internal/lockout/models"
	"credlock/internal/platform/config"
)

// Handler processes a decoded attempt-change event. A nil return marks the
// event handled; any error leaves the offset uncommitted for redelivery.
type Handler interface {
	Process(ctx context.Context, event models.AttemptChangeEvent) error
}

// Consumer reads attempt-change events from the configured topic as part of a
// consumer group. Autocommit is disabled; offsets advance only past records
// the handler accepted, which is what gives at-least-once delivery.
type Consumer struct {
	client  *kgo.Client
	handler Handler
	logger  *slog.Logger
}

func NewConsumer(cfg config.KafkaConfig, handler Handler, logger *slog.Logger) (*Consumer, error) {
	if handler == nil {
		return nil, errors.New("handler is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumeTopics(cfg.Topic),
		kgo.ConsumerGroup(cfg.Group),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, err
	}
	return &Consumer{client: client, handler: handler, logger: logger}, nil
}

// Run polls until the context is canceled. Records within a partition are
// handled in order; the first failure in a partition stops that partition's
// batch so no later offset is committed over an unhandled event.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.client.Close()

	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.ErrorContext(ctx, "fetch error",
				"topic", topic, "partition", partition, "error", err)
		})

		var handled []*kgo.Record
		fetches.EachPartition(func(p kgo.FetchTopicPartition) {
			for _, record := range p.Records {
				if err := c.handleRecord(ctx, record); err != nil {
					c.logger.WarnContext(ctx, "event left for redelivery",
						"topic", record.Topic,
						"partition", record.Partition,
						"offset", record.Offset,
						"error", err,
					)
					return
				}
				handled = append(handled, record)
			}
		})

		if len(handled) == 0 {
			continue
		}
		if err := c.client.CommitRecords(ctx, handled...); err != nil {
			// Failed commits redeliver already-handled events; the engine's
			// read-before-write guard absorbs the duplicates.
			c.logger.ErrorContext(ctx, "commit failed", "error", err)
		}
	}
}

func (c *Consumer) handleRecord(ctx context.Context, record *kgo.Record) error {
	event, err := DecodeEvent(record.Value)
	if err != nil {
		// Malformed payloads are not retryable; log and move on.
		c.logger.ErrorContext(ctx, "dropping undecodable event",
			"topic", record.Topic,
			"partition", record.Partition,
			"offset", record.Offset,
			"error", err,
		)
		return nil
	}
	return c.handler.Process(ctx, event)
}
