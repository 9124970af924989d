package service

import (
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/pkg/rails"
)

type CreateRequestResponse struct {
	Transaction   model.Transaction
	Notifications []model.Notification
}

type PaymentResponse struct {
	Transaction model.Transaction
	Charge      rails.Charge
	// RequiresQRISConfirmation tells the caller to show the QRIS confirmation view.
	RequiresQRISConfirmation bool
}

type NotificationCounts struct {
	Unread            int
	PendingActionable int
}

type ProfileView struct {
	User       model.User
	Relation   model.Relation
	Friends    int
	BetweenYou []model.Transaction
	Others     []model.Transaction
}

type MerchantView struct {
	Merchant          model.User
	Transactions      []model.Transaction
	TotalTransactions int
	TotalVolume       int64
	AverageAmount     int64
	UniqueCustomers   int
	RepeatRate        int
	FriendsWhoPaid    []model.User
}
