package mq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Behyna/social-payments/pkg/mq"
	"github.com/stretchr/testify/assert"
)

func TestIsTemporary(t *testing.T) {
	base := errors.New("broker busy")

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "plain error", err: base, expected: false},
		{name: "temporary", err: mq.Temporary(base), expected: true},
		{name: "wrapped temporary", err: fmt.Errorf("publish: %w", mq.Temporary(base)), expected: true},
		{name: "nil", err: nil, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mq.IsTemporary(tc.err))
		})
	}
}

func TestTempError_Unwrap(t *testing.T) {
	base := errors.New("broker busy")

	err := mq.Temporary(base)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "broker busy", err.Error())
}
