package rails_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Behyna/social-payments/pkg/rails"
	"github.com/stretchr/testify/assert"
)

func TestMockRail_Charge(t *testing.T) {
	ctx := context.Background()

	t.Run("qris charge expires in fifteen minutes", func(t *testing.T) {
		rail := rails.NewMockRail(rails.Config{})

		before := time.Now()
		charge, err := rail.Charge(ctx, rails.ChargeRequest{Channel: rails.ChannelQRIS, Amount: 50000})

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(charge.PaymentID, "QRIS_"))
		assert.NotEmpty(t, charge.QRCode)
		assert.Equal(t, int64(50000), charge.Amount)
		assert.WithinDuration(t, before.Add(15*time.Minute), charge.ExpiresAt, 5*time.Second)
	})

	t.Run("virtual account uses bank prefix", func(t *testing.T) {
		rail := rails.NewMockRail(rails.Config{})

		cases := map[string]string{"bca": "68888", "Mandiri": "89208", "BRI": "80888", "cimb": "80888"}
		for bank, prefix := range cases {
			charge, err := rail.Charge(ctx, rails.ChargeRequest{Channel: rails.ChannelBankVA, Provider: bank, Amount: 10000})

			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(charge.VANumber, prefix), bank)
			assert.Len(t, charge.VANumber, 15)
			assert.True(t, strings.HasPrefix(charge.PaymentID, "VA_"))
		}
	})

	t.Run("virtual account rejects unknown bank", func(t *testing.T) {
		rail := rails.NewMockRail(rails.Config{})

		_, err := rail.Charge(ctx, rails.ChargeRequest{Channel: rails.ChannelBankVA, Provider: "HSBC", Amount: 10000})

		assert.ErrorIs(t, err, rails.ErrInvalidBank)
	})

	t.Run("ewallet builds callback redirect", func(t *testing.T) {
		rail := rails.NewMockRail(rails.Config{})

		charge, err := rail.Charge(ctx, rails.ChargeRequest{Channel: rails.ChannelEWallet, Provider: "OVO", Amount: 25000})

		assert.NoError(t, err)
		assert.Equal(t, "ovo", charge.Provider)

		u, err := url.Parse(charge.RedirectURL)
		assert.NoError(t, err)
		assert.Equal(t, rails.EWalletCallbackPath, u.Path)
		assert.Equal(t, "ovo", u.Query().Get("provider"))
		assert.Equal(t, "25000", u.Query().Get("amount"))
		assert.Equal(t, "pending", u.Query().Get("status"))
		assert.Equal(t, charge.PaymentID, u.Query().Get("paymentId"))
	})

	t.Run("ewallet rejects unknown provider", func(t *testing.T) {
		rail := rails.NewMockRail(rails.Config{})

		_, err := rail.Charge(ctx, rails.ChargeRequest{Channel: rails.ChannelEWallet, Provider: "gopay", Amount: 25000})

		assert.ErrorIs(t, err, rails.ErrInvalidProvider)
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		rail := rails.NewMockRail(rails.Config{})

		_, err := rail.Charge(ctx, rails.ChargeRequest{Channel: rails.ChannelQRIS})

		assert.ErrorIs(t, err, rails.ErrInvalidAmount)
	})

	t.Run("unknown channel", func(t *testing.T) {
		rail := rails.NewMockRail(rails.Config{})

		_, err := rail.Charge(ctx, rails.ChargeRequest{Channel: "cash", Amount: 1})

		assert.ErrorIs(t, err, rails.ErrInvalidChannel)
	})

	t.Run("failing provider is declined", func(t *testing.T) {
		rail := rails.NewMockRail(rails.Config{FailingProviders: []string{"dana"}})

		_, err := rail.Charge(ctx, rails.ChargeRequest{Channel: rails.ChannelEWallet, Provider: "DANA", Amount: 1000})

		assert.ErrorIs(t, err, rails.ErrDeclined)
	})

	t.Run("context expires before delay elapses", func(t *testing.T) {
		rail := rails.NewMockRail(rails.Config{Delay: time.Second})

		timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err := rail.Charge(timeoutCtx, rails.ChargeRequest{Channel: rails.ChannelQRIS, Amount: 1000})

		assert.ErrorIs(t, err, rails.ErrTimeout)
	})
}
