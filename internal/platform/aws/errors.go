package aws

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// IsAlreadyExists checks if an error indicates a name conflict: the stack
// or key pair already exists. These errors are fatal and must be surfaced
// verbatim rather than retried.
func IsAlreadyExists(err error) bool {
	return isAPIErrorCode(err,
		"AlreadyExistsException",  // CloudFormation stack name taken
		"InvalidKeyPair.Duplicate", // EC2 key pair name taken
	)
}

// IsNotFound checks if an error indicates the resource does not exist.
// CloudFormation reports a missing stack as a ValidationError whose
// message mentions the stack does not exist.
func IsNotFound(err error) bool {
	if isAPIErrorCode(err, "InvalidKeyPair.NotFound") {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationError" &&
			strings.Contains(apiErr.ErrorMessage(), "does not exist")
	}
	return false
}

// IsThrottling checks if an error indicates API rate limiting. These
// errors are transient and safe to retry with backoff.
func IsThrottling(err error) bool {
	return isAPIErrorCode(err,
		"Throttling",
		"ThrottlingException",
		"RequestLimitExceeded",
	)
}

// isAPIErrorCode checks if the error is an AWS API error with one of the
// given codes.
func isAPIErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		for _, c := range codes {
			if code == c {
				return true
			}
		}
	}
	return false
}
