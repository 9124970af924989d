package rails

import "errors"

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnprocessableEntity = 422
	StatusServiceUnavailable  = 503
)

const (
	ErrCodeInvalidChannel  = "INVALID_CHANNEL"
	ErrCodeInvalidBank     = "INVALID_BANK"
	ErrCodeInvalidProvider = "INVALID_EWALLET_PROVIDER"
	ErrCodeInvalidAmount   = "INVALID_AMOUNT"
	ErrCodeDeclined        = "CHARGE_DECLINED"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeServerError     = "SERVER_ERROR"
)

var (
	ErrInvalidChannel  = errors.New(ErrCodeInvalidChannel)
	ErrInvalidBank     = errors.New(ErrCodeInvalidBank)
	ErrInvalidProvider = errors.New(ErrCodeInvalidProvider)
	ErrInvalidAmount   = errors.New(ErrCodeInvalidAmount)
	ErrDeclined        = errors.New(ErrCodeDeclined)
	ErrTimeout         = errors.New(ErrCodeTimeout)
	ErrServerError     = errors.New(ErrCodeServerError)
)

var statusErrorMap = map[int]error{
	StatusBadRequest:          ErrInvalidChannel,
	StatusUnprocessableEntity: ErrDeclined,
	StatusServiceUnavailable:  ErrTimeout,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}
