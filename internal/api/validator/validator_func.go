package validator

import (
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/pkg/rails"
	"github.com/go-playground/validator/v10"
)

const (
	PrivacyTag       = "privacy"
	PaymentMethodTag = "payment_method"
	BankTag          = "bank"
	EWalletTag       = "ewallet"
)

var validations = map[string]validator.Func{
	PrivacyTag:       ValidatePrivacy,
	PaymentMethodTag: ValidatePaymentMethod,
	BankTag:          ValidateBank,
	EWalletTag:       ValidateEWallet,
}

func ValidatePrivacy(fl validator.FieldLevel) bool {
	return model.Privacy(fl.Field().String()).Valid()
}

func ValidatePaymentMethod(fl validator.FieldLevel) bool {
	return model.PaymentMethod(fl.Field().String()).Valid()
}

func ValidateBank(fl validator.FieldLevel) bool {
	_, ok := rails.NormalizeBank(fl.Field().String())
	return ok
}

func ValidateEWallet(fl validator.FieldLevel) bool {
	_, ok := rails.NormalizeEWallet(fl.Field().String())
	return ok
}
