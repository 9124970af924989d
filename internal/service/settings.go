package service

import (
	"context"
	"time"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/metrics"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"go.uber.org/zap"
)

type SettingsService interface {
	Get(userID string) (model.UserSettings, error)
	Update(ctx context.Context, cmd UpdateSettingsCommand) (model.UserSettings, error)
}

type settings struct {
	repo    repository.SettingsRepository
	users   repository.UserRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewSettingsService(repo repository.SettingsRepository, users repository.UserRepository,
	metrics *metrics.Metrics, logger *zap.Logger) SettingsService {
	return &settings{repo: repo, users: users, metrics: metrics, logger: logger}
}

func (s *settings) Get(userID string) (model.UserSettings, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return model.UserSettings{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	start := time.Now()
	us, err := s.repo.Get(userID)
	if err != nil {
		s.metrics.RecordSettingsQuery("select", "error", time.Since(start))
		s.logger.Error("Failed to load user settings", zap.String("userID", userID), zap.Error(err))
		return model.UserSettings{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	s.metrics.RecordSettingsQuery("select", "success", time.Since(start))

	return us, nil
}

// Update merges the provided fields over the stored settings.
func (s *settings) Update(ctx context.Context, cmd UpdateSettingsCommand) (model.UserSettings, error) {
	if cmd.DefaultPrivacy != "" && !cmd.DefaultPrivacy.Valid() {
		return model.UserSettings{}, NewServiceError(constants.ErrCodeValidationFailed, ErrInvalidPrivacy)
	}

	us, err := s.Get(cmd.UserID)
	if err != nil {
		return model.UserSettings{}, err
	}
	us.UserID = cmd.UserID

	if cmd.DefaultPrivacy != "" {
		us.DefaultPrivacy = cmd.DefaultPrivacy
	}
	if cmd.NotifyPayments != nil {
		us.NotifyPayments = *cmd.NotifyPayments
	}
	if cmd.NotifyRequests != nil {
		us.NotifyRequests = *cmd.NotifyRequests
	}
	if cmd.NotifySocial != nil {
		us.NotifySocial = *cmd.NotifySocial
	}

	start := time.Now()
	if err := s.repo.Save(ctx, &us); err != nil {
		s.metrics.RecordSettingsQuery("upsert", "error", time.Since(start))
		s.logger.Error("Failed to save user settings", zap.String("userID", cmd.UserID), zap.Error(err))
		return model.UserSettings{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	s.metrics.RecordSettingsQuery("upsert", "success", time.Since(start))

	s.logger.Info("User settings updated",
		zap.String("userID", cmd.UserID),
		zap.String("defaultPrivacy", string(us.DefaultPrivacy)))

	return us, nil
}
