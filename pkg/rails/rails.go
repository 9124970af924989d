// Package rails fabricates QRIS, bank virtual-account and e-wallet charges for the demo payment flow.
package rails

import (
	"context"
	"strings"
	"time"
)

type Channel string

const (
	ChannelQRIS    Channel = "qris"
	ChannelBankVA  Channel = "bank_va"
	ChannelEWallet Channel = "ewallet"
)

var (
	Banks    = []string{"BCA", "Mandiri", "BRI", "BNI", "CIMB"}
	EWallets = []string{"ovo", "dana", "shopeepay"}
)

type ChargeRequest struct {
	Channel Channel `json:"channel"`
	// Provider is the bank for ChannelBankVA and the wallet for ChannelEWallet; ignored for QRIS.
	Provider  string `json:"provider,omitempty"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
}

type Charge struct {
	PaymentID   string    `json:"payment_id"`
	Channel     Channel   `json:"channel"`
	Provider    string    `json:"provider,omitempty"`
	Amount      int64     `json:"amount"`
	QRCode      string    `json:"qr_code,omitempty"`
	VANumber    string    `json:"va_number,omitempty"`
	RedirectURL string    `json:"redirect_url,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}

type Rail interface {
	Charge(ctx context.Context, request ChargeRequest) (Charge, error)
}

// NormalizeBank returns the canonical bank name for a case-insensitive match against Banks.
func NormalizeBank(bank string) (string, bool) {
	for _, b := range Banks {
		if strings.EqualFold(b, bank) {
			return b, true
		}
	}
	return "", false
}

func NormalizeEWallet(provider string) (string, bool) {
	for _, w := range EWallets {
		if strings.EqualFold(w, provider) {
			return w, true
		}
	}
	return "", false
}
