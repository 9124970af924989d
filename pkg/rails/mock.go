package rails

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const qrisPayload = "00020101021226610014COM.MIDTRANS.WWW011893600914300000000102151234567890123450303UMI51440014ID.CO.QRIS.WWW0215ID10200000000000303UMI5204599953033605802ID5916SOCIAL PAYMENTS6007JAKARTA61051234062070703A0163044C7D"

const EWalletCallbackPath = "/payments/ewallet/callback"

type mockRail struct {
	config Config
	now    func() time.Time
}

// NewMockRail returns a Rail that fabricates charges locally after the configured delay.
func NewMockRail(cfg Config) Rail {
	if cfg.QRISExpiry <= 0 {
		cfg.QRISExpiry = defaultQRISExpiry
	}
	if cfg.VAExpiry <= 0 {
		cfg.VAExpiry = defaultVAExpiry
	}
	return &mockRail{config: cfg, now: time.Now}
}

func (m *mockRail) Charge(ctx context.Context, request ChargeRequest) (Charge, error) {
	if request.Amount <= 0 {
		return Charge{}, ErrInvalidAmount
	}

	if err := m.wait(ctx); err != nil {
		return Charge{}, err
	}

	if m.failing(request.Provider) || m.failing(string(request.Channel)) {
		return Charge{}, ErrDeclined
	}

	switch request.Channel {
	case ChannelQRIS:
		return m.qris(request), nil
	case ChannelBankVA:
		return m.virtualAccount(request)
	case ChannelEWallet:
		return m.eWallet(request)
	default:
		return Charge{}, ErrInvalidChannel
	}
}

func (m *mockRail) wait(ctx context.Context) error {
	if m.config.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(m.config.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ErrTimeout
	case <-timer.C:
		return nil
	}
}

func (m *mockRail) failing(provider string) bool {
	if provider == "" {
		return false
	}
	return slices.ContainsFunc(m.config.FailingProviders, func(p string) bool {
		return strings.EqualFold(p, provider)
	})
}

func (m *mockRail) qris(request ChargeRequest) Charge {
	now := m.now()
	return Charge{
		PaymentID: "QRIS_" + uuid.NewString(),
		Channel:   ChannelQRIS,
		Amount:    request.Amount,
		QRCode:    qrisPayload,
		ExpiresAt: now.Add(m.config.QRISExpiry),
	}
}

func (m *mockRail) virtualAccount(request ChargeRequest) (Charge, error) {
	bank, ok := NormalizeBank(request.Provider)
	if !ok {
		return Charge{}, ErrInvalidBank
	}

	now := m.now()
	return Charge{
		PaymentID: "VA_" + uuid.NewString(),
		Channel:   ChannelBankVA,
		Provider:  bank,
		Amount:    request.Amount,
		VANumber:  vaPrefix(bank) + lastDigits(now.UnixMilli(), 10),
		ExpiresAt: now.Add(m.config.VAExpiry),
	}, nil
}

func (m *mockRail) eWallet(request ChargeRequest) (Charge, error) {
	provider, ok := NormalizeEWallet(request.Provider)
	if !ok {
		return Charge{}, ErrInvalidProvider
	}

	paymentID := "EW_" + uuid.NewString()

	query := url.Values{}
	query.Set("provider", provider)
	query.Set("amount", strconv.FormatInt(request.Amount, 10))
	query.Set("status", "pending")
	query.Set("paymentId", paymentID)

	return Charge{
		PaymentID:   paymentID,
		Channel:     ChannelEWallet,
		Provider:    provider,
		Amount:      request.Amount,
		RedirectURL: EWalletCallbackPath + "?" + query.Encode(),
	}, nil
}

func vaPrefix(bank string) string {
	switch bank {
	case "BCA":
		return "68888"
	case "Mandiri":
		return "89208"
	default:
		return "80888"
	}
}

func lastDigits(n int64, count int) string {
	s := fmt.Sprintf("%0*d", count, n)
	return s[len(s)-count:]
}
