package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds the configurable wait and retry values for the stack
// workflow. Each value can be overridden via environment variable.
type Timeouts struct {
	StackWait         time.Duration // Overall bound on the stack polling loop
	PollInterval      time.Duration // Delay between stack status checks
	RetryMaxAttempts  int           // Retries for transient describe errors
	RetryInitialDelay time.Duration // Initial backoff delay for retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// Unset or unparsable variables fall back to defaults.
//
// Environment variables:
//   - OLLAMASTACK_TIMEOUT_STACK_WAIT (default: 30m)
//   - OLLAMASTACK_POLL_INTERVAL (default: 10s)
//   - OLLAMASTACK_RETRY_MAX_ATTEMPTS (default: 4)
//   - OLLAMASTACK_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		StackWait:         parseDuration("OLLAMASTACK_TIMEOUT_STACK_WAIT", 30*time.Minute),
		PollInterval:      parseDuration("OLLAMASTACK_POLL_INTERVAL", 10*time.Second),
		RetryMaxAttempts:  parseInt("OLLAMASTACK_RETRY_MAX_ATTEMPTS", 4),
		RetryInitialDelay: parseDuration("OLLAMASTACK_RETRY_INITIAL_DELAY", time.Second),
	}
}

func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
