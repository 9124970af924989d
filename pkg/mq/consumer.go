package mq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Handle func(ctx context.Context, body []byte) error

type Consumer interface {
	// Consume blocks until ctx is done or the delivery channel closes.
	Consume(ctx context.Context, prefetch int, queue string, handle Handle) error
}

type rabbitConsumer struct {
	ch     *amqp.Channel
	logger *zap.Logger
}

func (c *rabbitConsumer) Consume(ctx context.Context, prefetch int, queue string, handle Handle) error {
	if prefetch <= 0 {
		prefetch = 1
	}

	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return err
	}

	deliveries, err := c.ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			_ = c.ch.Close()
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			err := handle(ctx, d.Body)
			if err == nil {
				_ = d.Ack(false)
				continue
			}

			requeue := IsTemporary(err)
			c.logger.Warn("Message handling failed",
				zap.String("queue", queue),
				zap.Bool("requeue", requeue),
				zap.Error(err),
			)
			_ = d.Nack(false, requeue)
		}
	}
}
