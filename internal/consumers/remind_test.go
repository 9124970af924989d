package consumers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Behyna/social-payments/internal/consumers"
	"github.com/Behyna/social-payments/internal/mocks"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/pkg/mq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type handler interface {
	HandleMessage(ctx context.Context, body []byte) error
}

func TestRemindConsumer_HandleMessage(t *testing.T) {
	body := []byte(`{"transaction_id":"tx-1","requester_id":"user-a","payer_id":"user-b","amount":50000}`)

	t.Run("delivers reminder", func(t *testing.T) {
		push := &mocks.Reminder{}
		push.On("Remind", mock.Anything, mock.MatchedBy(func(r model.Reminder) bool {
			return r.TransactionID == "tx-1" && r.PayerID == "user-b" && r.Amount == 50000
		})).Return(nil)
		c := consumers.NewRemindConsumer(push, nil, "payment.remind", zap.NewNop()).(handler)

		assert.NoError(t, c.HandleMessage(context.Background(), body))
		push.AssertExpectations(t)
	})

	t.Run("push failure is retried", func(t *testing.T) {
		push := &mocks.Reminder{}
		push.On("Remind", mock.Anything, mock.Anything).Return(errors.New("push gateway down"))
		c := consumers.NewRemindConsumer(push, nil, "payment.remind", zap.NewNop()).(handler)

		err := c.HandleMessage(context.Background(), body)

		assert.True(t, mq.IsTemporary(err))
	})

	t.Run("malformed body is dropped", func(t *testing.T) {
		push := &mocks.Reminder{}
		c := consumers.NewRemindConsumer(push, nil, "payment.remind", zap.NewNop()).(handler)

		err := c.HandleMessage(context.Background(), []byte(`{`))

		assert.Error(t, err)
		assert.False(t, mq.IsTemporary(err))
		push.AssertNotCalled(t, "Remind", mock.Anything, mock.Anything)
	})

	t.Run("missing payer is dropped", func(t *testing.T) {
		push := &mocks.Reminder{}
		c := consumers.NewRemindConsumer(push, nil, "payment.remind", zap.NewNop()).(handler)

		err := c.HandleMessage(context.Background(), []byte(`{"transaction_id":"tx-1"}`))

		assert.ErrorIs(t, err, consumers.ErrInvalidReminder)
		assert.False(t, mq.IsTemporary(err))
	})
}
