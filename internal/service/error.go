package service

import "errors"

var (
	ErrRequestNotPending    = errors.New("REQUEST_NOT_PENDING")
	ErrNotRequest           = errors.New("NOT_A_PAYMENT_REQUEST")
	ErrNotificationMissing  = errors.New("PAIRED_NOTIFICATION_MISSING")
	ErrNotificationNotFound = errors.New("NOTIFICATION_NOT_FOUND")
	ErrInvalidPrivacy       = errors.New("INVALID_PRIVACY")
	ErrInvalidPaymentMethod = errors.New("INVALID_PAYMENT_METHOD")
	ErrNotPayer             = errors.New("NOT_THE_PAYER")
	ErrNotRequester         = errors.New("NOT_THE_REQUESTER")
	ErrSelfFriend           = errors.New("SELF_FRIEND_REQUEST")
	ErrMerchantFriend       = errors.New("MERCHANT_FRIEND_REQUEST")
	ErrRailFailed           = errors.New("RAIL_FAILED")
	ErrMissingField         = errors.New("MISSING_FIELD")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// CodeOf returns the code of the first Error in err's chain, or "" when there is none.
func CodeOf(err error) string {
	var se Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
