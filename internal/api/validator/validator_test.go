package validator_test

import (
	"testing"

	"github.com/Behyna/social-payments/internal/api/validator"
	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payment struct {
	Privacy string `validate:"omitempty,privacy"`
	Method  string `validate:"required,payment_method"`
	Bank    string `validate:"omitempty,bank"`
	Wallet  string `validate:"omitempty,ewallet"`
}

func TestXValidator_Validate(t *testing.T) {
	x, err := validator.NewXValidator(playground.New(), nil)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		data   payment
		failed []string
	}{
		{name: "valid", data: payment{Privacy: "friends", Method: "bca", Bank: "mandiri", Wallet: "OVO"}},
		{name: "empty privacy allowed", data: payment{Method: "qris"}},
		{name: "unknown privacy", data: payment{Privacy: "everyone", Method: "qris"}, failed: []string{"Privacy"}},
		{name: "unknown method", data: payment{Method: "gopay"}, failed: []string{"Method"}},
		{name: "missing method", data: payment{}, failed: []string{"Method"}},
		{name: "unknown bank and wallet", data: payment{Method: "bri", Bank: "hsbc", Wallet: "gopay"}, failed: []string{"Bank", "Wallet"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := x.Validate(&tc.data)

			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.FailedField)
			}
			assert.ElementsMatch(t, tc.failed, fields)
		})
	}
}
