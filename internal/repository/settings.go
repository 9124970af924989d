package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Behyna/social-payments/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	Get(userID string) (model.UserSettings, error)
	Save(ctx context.Context, settings *model.UserSettings) error
}

type settings struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) (SettingsRepository, error) {
	if err := db.AutoMigrate(&model.UserSettings{}); err != nil {
		return nil, fmt.Errorf("failed to migrate user settings: %w", err)
	}

	return &settings{db: db}, nil
}

// Get falls back to the defaults for users that never saved preferences.
func (s *settings) Get(userID string) (model.UserSettings, error) {
	var us model.UserSettings

	err := s.db.Where("user_id = ?", userID).First(&us).Error
	if err == nil {
		return us, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultUserSettings(userID), nil
	}

	return model.UserSettings{}, err
}

func (s *settings) Save(ctx context.Context, us *model.UserSettings) error {
	us.UpdatedAt = time.Now()

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(us).Error
}
