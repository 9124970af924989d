package constants_test

import (
	"net/http"
	"testing"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	testCases := []struct {
		code   string
		status int
	}{
		{code: constants.ErrCodeValidationFailed, status: http.StatusBadRequest},
		{code: constants.ErrCodeUserNotFound, status: http.StatusNotFound},
		{code: constants.ErrCodeTransactionNotFound, status: http.StatusNotFound},
		{code: constants.ErrCodeNotAllowed, status: http.StatusForbidden},
		{code: constants.ErrCodeConsistency, status: http.StatusConflict},
		{code: constants.ErrCodeExternalRail, status: http.StatusBadGateway},
		{code: constants.ErrCodeOperationFailed, status: http.StatusInternalServerError},
		{code: "SOMETHING_ELSE", status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.status, constants.GetHTTPStatus(tc.code))
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	assert.Equal(t, constants.ErrMsgConsistency, constants.GetErrorMessage(constants.ErrCodeConsistency))
	assert.Empty(t, constants.GetErrorMessage("SOMETHING_ELSE"))
}
