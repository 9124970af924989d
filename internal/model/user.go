package model

import (
	"strings"
	"time"
)

const merchantPrefix = "merchant-"

type User struct {
	ID           string    `json:"id" mapstructure:"id"`
	Username     string    `json:"username" mapstructure:"username"`
	Phone        string    `json:"phone" mapstructure:"phone"`
	Name         string    `json:"name" mapstructure:"name"`
	ProfilePhoto string    `json:"profile_photo,omitempty" mapstructure:"profile_photo"`
	KYCVerified  bool      `json:"kyc_verified" mapstructure:"kyc_verified"`
	CreatedAt    time.Time `json:"created_at" mapstructure:"-"`
}

// IsMerchant reports whether id belongs to a non-person payee.
func IsMerchant(id string) bool {
	return strings.HasPrefix(id, merchantPrefix)
}
