package model

import "time"

type NotificationType string

const (
	NotificationTypePaymentRequest   NotificationType = "payment_request"
	NotificationTypePaymentReceived  NotificationType = "payment_received"
	NotificationTypePaymentCompleted NotificationType = "payment_completed"
)

type Notification struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	TransactionID string           `json:"transaction_id"`
	Transaction   Transaction      `json:"transaction"`
	Type          NotificationType `json:"type"`
	Read          bool             `json:"read"`
	CreatedAt     time.Time        `json:"created_at"`
}

// IsRequestFor reports whether n is the payment_request notification owned by userID for transactionID.
func (n Notification) IsRequestFor(transactionID, userID string) bool {
	return n.Type == NotificationTypePaymentRequest && n.TransactionID == transactionID && n.UserID == userID
}

func (n Notification) Clone() Notification {
	c := n
	c.Transaction = n.Transaction.Clone()
	return c
}
