package service

import "github.com/Behyna/social-payments/internal/model"

type CreateRequestCommand struct {
	SenderID    string
	RecipientID string
	Amount      int64
	Note        string
	// Privacy may be empty; the requester's saved default applies then.
	Privacy model.Privacy
}

type CreatePaymentCommand struct {
	SenderID    string
	RecipientID string
	Amount      int64
	Note        string
	Privacy     model.Privacy
	Method      model.PaymentMethod
}

// ActorID on the request commands is optional. When set it must be the party allowed to act.
type PayRequestCommand struct {
	TransactionID string
	Method        model.PaymentMethod
	ActorID       string
}

type DeclineRequestCommand struct {
	TransactionID string
	ActorID       string
}

type CancelRequestCommand struct {
	TransactionID string
	ActorID       string
}

// RemindRequestCommand carries what the caller already rendered, so reminding needs no store lookup.
type RemindRequestCommand struct {
	TransactionID string
	RequesterID   string
	PayerID       string
	Amount        int64
	Note          string
}

type CommentCommand struct {
	TransactionID string
	UserID        string
	Content       string
}

type UpdateSettingsCommand struct {
	UserID         string
	DefaultPrivacy model.Privacy
	NotifyPayments *bool
	NotifyRequests *bool
	NotifySocial   *bool
}
