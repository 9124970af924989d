package model

import (
	"slices"
	"time"
)

type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyFriends Privacy = "friends"
	PrivacyPrivate Privacy = "private"
)

func (p Privacy) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyFriends, PrivacyPrivate:
		return true
	default:
		return false
	}
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusDeclined  TransactionStatus = "declined"
	TransactionStatusCancelled TransactionStatus = "cancelled"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Terminal reports whether no further transition is allowed out of s.
func (s TransactionStatus) Terminal() bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusDeclined, TransactionStatusCancelled:
		return true
	case TransactionStatusPending, TransactionStatusFailed:
		return false
	default:
		return false
	}
}

type TransactionType string

const (
	TransactionTypePayment TransactionType = "payment"
	TransactionTypeRequest TransactionType = "request"
)

type PaymentMethod string

const (
	PaymentMethodQRIS      PaymentMethod = "qris"
	PaymentMethodBCA       PaymentMethod = "bca"
	PaymentMethodMandiri   PaymentMethod = "mandiri"
	PaymentMethodBNI       PaymentMethod = "bni"
	PaymentMethodBRI       PaymentMethod = "bri"
	PaymentMethodOVO       PaymentMethod = "ovo"
	PaymentMethodDANA      PaymentMethod = "dana"
	PaymentMethodShopeePay PaymentMethod = "shopeepay"
)

type PaymentChannel string

const (
	PaymentChannelQRIS    PaymentChannel = "qris"
	PaymentChannelBankVA  PaymentChannel = "bank_va"
	PaymentChannelEWallet PaymentChannel = "ewallet"
)

// Channel maps a method to the rail that settles it. ok is false for unknown methods.
func (m PaymentMethod) Channel() (channel PaymentChannel, ok bool) {
	switch m {
	case PaymentMethodQRIS:
		return PaymentChannelQRIS, true
	case PaymentMethodBCA, PaymentMethodMandiri, PaymentMethodBNI, PaymentMethodBRI:
		return PaymentChannelBankVA, true
	case PaymentMethodOVO, PaymentMethodDANA, PaymentMethodShopeePay:
		return PaymentChannelEWallet, true
	default:
		return "", false
	}
}

func (m PaymentMethod) Valid() bool {
	_, ok := m.Channel()
	return ok
}

type Like struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	User          User      `json:"user"`
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type Comment struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	User          User      `json:"user"`
	TransactionID string    `json:"transaction_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

type Transaction struct {
	ID               string            `json:"id"`
	SenderID         string            `json:"sender_id"`
	Sender           User              `json:"sender"`
	RecipientID      string            `json:"recipient_id"`
	Recipient        User              `json:"recipient"`
	Amount           int64             `json:"amount"`
	Note             string            `json:"note"`
	Privacy          Privacy           `json:"privacy"`
	Status           TransactionStatus `json:"status"`
	PaymentMethod    PaymentMethod     `json:"payment_method"`
	Type             TransactionType   `json:"type"`
	CreatedAt        time.Time         `json:"created_at"`
	Likes            []Like            `json:"likes"`
	Comments         []Comment         `json:"comments"`
	ShowAmountOnFeed bool              `json:"show_amount_on_feed"`
}

// Clone returns a deep copy safe to embed as a snapshot.
func (t Transaction) Clone() Transaction {
	c := t
	c.Likes = slices.Clone(t.Likes)
	c.Comments = slices.Clone(t.Comments)
	return c
}

func (t Transaction) Involves(userID string) bool {
	return t.SenderID == userID || t.RecipientID == userID
}

func (t Transaction) LikedBy(userID string) bool {
	for _, l := range t.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// TransactionPatch carries the fields to merge into a stored transaction; nil fields are left untouched.
type TransactionPatch struct {
	SenderID      *string
	Sender        *User
	RecipientID   *string
	Recipient     *User
	Status        *TransactionStatus
	Type          *TransactionType
	PaymentMethod *PaymentMethod
}

func (p TransactionPatch) Apply(t *Transaction) {
	if p.SenderID != nil {
		t.SenderID = *p.SenderID
	}
	if p.Sender != nil {
		t.Sender = *p.Sender
	}
	if p.RecipientID != nil {
		t.RecipientID = *p.RecipientID
	}
	if p.Recipient != nil {
		t.Recipient = *p.Recipient
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.PaymentMethod != nil {
		t.PaymentMethod = *p.PaymentMethod
	}
}
