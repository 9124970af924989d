package v1

type CreateRequestRequest struct {
	PayerID string `json:"payer_id" validate:"required"`
	Amount  int64  `json:"amount" validate:"required,min=1"`
	Note    string `json:"note" validate:"max=140"`
	Privacy string `json:"privacy" validate:"omitempty,privacy"`
}

type CreatePaymentRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,min=1"`
	Note        string `json:"note" validate:"max=140"`
	Privacy     string `json:"privacy" validate:"omitempty,privacy"`
	Method      string `json:"method" validate:"required,payment_method"`
}

type PayRequestRequest struct {
	Method string `json:"method" validate:"required,payment_method"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=280"`
}

type UpdateSettingsRequest struct {
	DefaultPrivacy string `json:"default_privacy" validate:"omitempty,privacy"`
	NotifyPayments *bool  `json:"notify_payments"`
	NotifyRequests *bool  `json:"notify_requests"`
	NotifySocial   *bool  `json:"notify_social"`
}

type RenameRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type QRISChargeRequest struct {
	Amount int64 `json:"amount" validate:"required,min=1"`
}

type VAChargeRequest struct {
	Bank   string `json:"bank" validate:"required,bank"`
	Amount int64  `json:"amount" validate:"required,min=1"`
}

type EWalletChargeRequest struct {
	Provider string `json:"provider" validate:"required,ewallet"`
	Amount   int64  `json:"amount" validate:"required,min=1"`
}
