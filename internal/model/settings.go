package model

import "time"

type UserSettings struct {
	UserID         string    `gorm:"column:user_id;primaryKey;type:varchar(64)" json:"user_id"`
	DefaultPrivacy Privacy   `gorm:"column:default_privacy;type:varchar(16);not null;default:'public'" json:"default_privacy"`
	NotifyPayments bool      `gorm:"column:notify_payments;not null" json:"notify_payments"`
	NotifyRequests bool      `gorm:"column:notify_requests;not null" json:"notify_requests"`
	NotifySocial   bool      `gorm:"column:notify_social;not null" json:"notify_social"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:         userID,
		DefaultPrivacy: PrivacyPublic,
		NotifyPayments: true,
		NotifyRequests: true,
		NotifySocial:   true,
	}
}
