package v1

import (
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/Behyna/social-payments/pkg/rails"
)

type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

type CreateRequestResponse struct {
	Transaction   model.Transaction    `json:"transaction"`
	Notifications []model.Notification `json:"notifications"`
}

type PaymentResponse struct {
	Transaction              model.Transaction `json:"transaction"`
	Charge                   *rails.Charge     `json:"charge,omitempty"`
	RequiresQRISConfirmation bool              `json:"requires_qris_confirmation"`
}

type CountsResponse struct {
	Unread            int `json:"unread"`
	PendingActionable int `json:"pending_actionable"`
}

type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}

type ProfileResponse struct {
	User        model.User          `json:"user"`
	Relation    model.Relation      `json:"relation"`
	FriendCount int                 `json:"friend_count"`
	BetweenYou  []model.Transaction `json:"between_you"`
	Others      []model.Transaction `json:"others"`
}

type MerchantResponse struct {
	Merchant          model.User          `json:"merchant"`
	Transactions      []model.Transaction `json:"transactions"`
	TotalTransactions int                 `json:"total_transactions"`
	TotalVolume       int64               `json:"total_volume"`
	AverageAmount     int64               `json:"average_amount"`
	UniqueCustomers   int                 `json:"unique_customers"`
	RepeatRate        int                 `json:"repeat_rate"`
	FriendsWhoPaid    []model.User        `json:"friends_who_paid"`
}

type FriendsResponse struct {
	Friends []model.User `json:"friends"`
	Count   int          `json:"count"`
}

type RelationResponse struct {
	UserID   string         `json:"user_id"`
	Relation model.Relation `json:"relation"`
}

func toPaymentResponse(res service.PaymentResponse) PaymentResponse {
	out := PaymentResponse{
		Transaction:              res.Transaction,
		RequiresQRISConfirmation: res.RequiresQRISConfirmation,
	}
	if res.Charge.PaymentID != "" {
		charge := res.Charge
		out.Charge = &charge
	}
	return out
}

func toProfileResponse(view service.ProfileView) ProfileResponse {
	return ProfileResponse{
		User:        view.User,
		Relation:    view.Relation,
		FriendCount: view.Friends,
		BetweenYou:  view.BetweenYou,
		Others:      view.Others,
	}
}

func toMerchantResponse(view service.MerchantView) MerchantResponse {
	return MerchantResponse{
		Merchant:          view.Merchant,
		Transactions:      view.Transactions,
		TotalTransactions: view.TotalTransactions,
		TotalVolume:       view.TotalVolume,
		AverageAmount:     view.AverageAmount,
		UniqueCustomers:   view.UniqueCustomers,
		RepeatRate:        view.RepeatRate,
		FriendsWhoPaid:    view.FriendsWhoPaid,
	}
}
