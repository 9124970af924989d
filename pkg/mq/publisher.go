package mq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	// Publish sends body as a persistent JSON message on the default exchange, routed by queue name.
	Publish(ctx context.Context, queue string, body []byte) error
	Close() error
}

type rabbitPublisher struct {
	ch *amqp.Channel
}

func (p *rabbitPublisher) Publish(ctx context.Context, queue string, body []byte) error {
	return p.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (p *rabbitPublisher) Close() error {
	return p.ch.Close()
}
