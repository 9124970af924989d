package mocks

import (
	"context"

	"github.com/Behyna/social-payments/internal/model"
	"github.com/stretchr/testify/mock"
)

type SettingsRepository struct {
	mock.Mock
}

func (s *SettingsRepository) Get(userID string) (model.UserSettings, error) {
	args := s.Called(userID)
	return args.Get(0).(model.UserSettings), args.Error(1)
}

func (s *SettingsRepository) Save(ctx context.Context, settings *model.UserSettings) error {
	args := s.Called(ctx, settings)
	return args.Error(0)
}
