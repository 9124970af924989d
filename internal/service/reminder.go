package service

import (
	"context"

	"github.com/Behyna/social-payments/internal/model"
	"go.uber.org/zap"
)

// Reminder delivers a payment nudge to the payer. Implementations must not touch the stores.
type Reminder interface {
	Remind(ctx context.Context, reminder model.Reminder) error
}

type logReminder struct {
	logger *zap.Logger
}

// NewLogReminder only logs; it is used when no message broker is configured.
func NewLogReminder(logger *zap.Logger) Reminder {
	return &logReminder{logger: logger}
}

func (l *logReminder) Remind(_ context.Context, r model.Reminder) error {
	l.logger.Info("Payment reminder",
		zap.String("transactionID", r.TransactionID),
		zap.String("requesterID", r.RequesterID),
		zap.String("payerID", r.PayerID),
		zap.Int64("amount", r.Amount))
	return nil
}
