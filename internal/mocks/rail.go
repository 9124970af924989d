package mocks

import (
	"context"

	"github.com/Behyna/social-payments/pkg/rails"
	"github.com/stretchr/testify/mock"
)

type Rail struct {
	mock.Mock
}

func (r *Rail) Charge(ctx context.Context, request rails.ChargeRequest) (rails.Charge, error) {
	args := r.Called(ctx, request)
	return args.Get(0).(rails.Charge), args.Error(1)
}
