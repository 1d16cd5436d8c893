package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func apiError(code, message string) error {
	return &smithy.GenericAPIError{Code: code, Message: message}
}

func TestIsAlreadyExists(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "stack already exists",
			err:      apiError("AlreadyExistsException", "Stack [ollama-test] already exists"),
			expected: true,
		},
		{
			name:     "key pair already exists",
			err:      apiError("InvalidKeyPair.Duplicate", "The keypair already exists"),
			expected: true,
		},
		{
			name:     "wrapped conflict",
			err:      fmt.Errorf("failed to create stack: %w", apiError("AlreadyExistsException", "exists")),
			expected: true,
		},
		{
			name:     "unrelated api error",
			err:      apiError("ValidationError", "Template format error"),
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("connection refused"),
			expected: false,
		},
		{
			name:     "nil",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAlreadyExists(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "missing stack",
			err:      apiError("ValidationError", "Stack with id ollama-test does not exist"),
			expected: true,
		},
		{
			name:     "other validation error",
			err:      apiError("ValidationError", "Template format error"),
			expected: false,
		},
		{
			name:     "missing key pair",
			err:      apiError("InvalidKeyPair.NotFound", "The key pair does not exist"),
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("does not exist"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFound(tt.err))
		})
	}
}

func TestIsThrottling(t *testing.T) {
	assert.True(t, IsThrottling(apiError("Throttling", "Rate exceeded")))
	assert.True(t, IsThrottling(apiError("RequestLimitExceeded", "Request limit exceeded")))
	assert.False(t, IsThrottling(apiError("AccessDenied", "not authorized")))
	assert.False(t, IsThrottling(nil))
}
