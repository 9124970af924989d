package model

import "time"

// Reminder is the push payload sent to a payer who has not settled a request yet.
type Reminder struct {
	TransactionID string    `json:"transaction_id"`
	RequesterID   string    `json:"requester_id"`
	PayerID       string    `json:"payer_id"`
	Amount        int64     `json:"amount"`
	Note          string    `json:"note"`
	SentAt        time.Time `json:"sent_at"`
}
