package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}, WithInitialDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoExhaustsRetryBudget(t *testing.T) {
	attempts := 0
	sentinel := errors.New("persistent")
	err := Do(context.Background(), func() error {
		attempts++
		return sentinel
	}, WithMaxRetries(2), WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, attempts, "one attempt plus two retries")
}

func TestDoStopsOnFatal(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return Fatal(errors.New("name conflict"))
	}, WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.Equal(t, 1, attempts)
}

func TestDoRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Do(ctx, func() error {
		attempts++
		return errors.New("transient")
	}, WithInitialDelay(10*time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestFatalNil(t *testing.T) {
	assert.NoError(t, Fatal(nil))
}

func TestIsFatalWrapped(t *testing.T) {
	err := Fatal(errors.New("base"))
	wrapped := errors.Join(err, errors.New("context"))
	assert.True(t, IsFatal(wrapped))
	assert.False(t, IsFatal(errors.New("plain")))
}
