package mocks

import (
	"context"

	"github.com/Behyna/social-payments/internal/model"
	"github.com/stretchr/testify/mock"
)

type Reminder struct {
	mock.Mock
}

func (r *Reminder) Remind(ctx context.Context, reminder model.Reminder) error {
	args := r.Called(ctx, reminder)
	return args.Error(0)
}
