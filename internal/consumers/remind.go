package consumers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/Behyna/social-payments/pkg/mq"
	"go.uber.org/zap"
)

var ErrInvalidReminder = errors.New("INVALID_REMINDER")

type RemindConsumer interface {
	Consume(ctx context.Context) error
}

type remindConsumer struct {
	push     service.Reminder
	consumer mq.Consumer
	queue    string
	logger   *zap.Logger
}

// NewRemindConsumer delivers queued reminders through push.
func NewRemindConsumer(push service.Reminder, consumer mq.Consumer, queue string, logger *zap.Logger) RemindConsumer {
	return &remindConsumer{push: push, consumer: consumer, queue: queue, logger: logger}
}

func (r *remindConsumer) Consume(ctx context.Context) error {
	return r.consumer.Consume(ctx, 1, r.queue, r.HandleMessage)
}

// HandleMessage drops malformed bodies and asks for redelivery when the push itself fails.
func (r *remindConsumer) HandleMessage(ctx context.Context, body []byte) error {
	var reminder model.Reminder
	if err := json.Unmarshal(body, &reminder); err != nil {
		r.logger.Warn("Invalid reminder message", zap.Error(err))
		return err
	}

	if reminder.TransactionID == "" || reminder.PayerID == "" {
		r.logger.Warn("Reminder without transaction or payer", zap.ByteString("body", body))
		return ErrInvalidReminder
	}

	if err := r.push.Remind(ctx, reminder); err != nil {
		return mq.Temporary(err)
	}

	return nil
}
