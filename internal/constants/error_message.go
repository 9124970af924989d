package constants

import "net/http"

const MessageErrorFormat = "The '%s' field is invalid"

const (
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeTransactionNotFound = "TRANSACTION_NOT_FOUND"
	ErrCodeNotificationMissing = "NOTIFICATION_NOT_FOUND"
	ErrCodeNotAllowed          = "NOT_ALLOWED"
	ErrCodeConsistency         = "CONSISTENCY_ERROR"
	ErrCodeExternalRail        = "EXTERNAL_RAIL_ERROR"
	ErrCodeOperationFailed     = "OPERATION_FAILED"
)

const (
	ErrMsgValidationFailed    = "validation failed"
	ErrMsgUserNotFound        = "user not found"
	ErrMsgTransactionNotFound = "transaction not found"
	ErrMsgNotificationMissing = "notification not found"
	ErrMsgNotAllowed          = "action not allowed for this user"
	ErrMsgConsistency         = "request can no longer be processed"
	ErrMsgExternalRail        = "payment method failed, please retry"
	ErrMsgOperationFailed     = "operation failed"
)

var errorMessages = map[string]string{
	ErrCodeValidationFailed:    ErrMsgValidationFailed,
	ErrCodeUserNotFound:        ErrMsgUserNotFound,
	ErrCodeTransactionNotFound: ErrMsgTransactionNotFound,
	ErrCodeNotificationMissing: ErrMsgNotificationMissing,
	ErrCodeNotAllowed:          ErrMsgNotAllowed,
	ErrCodeConsistency:         ErrMsgConsistency,
	ErrCodeExternalRail:        ErrMsgExternalRail,
	ErrCodeOperationFailed:     ErrMsgOperationFailed,
}

var httpStatuses = map[string]int{
	ErrCodeValidationFailed:    http.StatusBadRequest,
	ErrCodeUserNotFound:        http.StatusNotFound,
	ErrCodeTransactionNotFound: http.StatusNotFound,
	ErrCodeNotificationMissing: http.StatusNotFound,
	ErrCodeNotAllowed:          http.StatusForbidden,
	ErrCodeConsistency:         http.StatusConflict,
	ErrCodeExternalRail:        http.StatusBadGateway,
	ErrCodeOperationFailed:     http.StatusInternalServerError,
}

func GetErrorMessage(code string) string {
	msg, exists := errorMessages[code]
	if !exists {
		return ""
	}
	return msg
}

// GetHTTPStatus falls back to 500 for codes without a mapping.
func GetHTTPStatus(code string) int {
	status, exists := httpStatuses[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}
