package publishers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/Behyna/social-payments/pkg/mq"
	"go.uber.org/zap"
)

type remindPublisher struct {
	publisher mq.Publisher
	queue     string
	logger    *zap.Logger
}

// NewRemindPublisher returns a service.Reminder that hands reminders to the push worker over RabbitMQ.
func NewRemindPublisher(publisher mq.Publisher, queue string, logger *zap.Logger) service.Reminder {
	return &remindPublisher{publisher: publisher, queue: queue, logger: logger}
}

func (r *remindPublisher) Remind(ctx context.Context, reminder model.Reminder) error {
	body, err := json.Marshal(reminder)
	if err != nil {
		return fmt.Errorf("encoding reminder: %w", err)
	}

	if err := r.publisher.Publish(ctx, r.queue, body); err != nil {
		r.logger.Error("Failed to publish reminder",
			zap.String("transactionID", reminder.TransactionID),
			zap.String("queue", r.queue),
			zap.Error(err))
		return err
	}

	r.logger.Info("Reminder queued",
		zap.String("transactionID", reminder.TransactionID),
		zap.String("payerID", reminder.PayerID))

	return nil
}
