package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTemporary = errors.New("temporary")

func TestDo(t *testing.T) {
	noWait := retry.LinearBackoff(time.Millisecond)

	t.Run("SucceedsAfterRetries", func(t *testing.T) {
		var calls int
		err := retry.Do(t.Context(), retry.RetryConfig{
			MaxAttempts: 5,
			Backoff:     noWait,
		}, func() error {
			calls++
			if calls < 3 {
				return errTemporary
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("AttemptsExhausted", func(t *testing.T) {
		var calls int
		err := retry.Do(t.Context(), retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     noWait,
		}, func() error {
			calls++
			return errTemporary
		})
		assert.ErrorIs(t, err, errTemporary)
		assert.Equal(t, 3, calls)
	})

	t.Run("NotRetriable", func(t *testing.T) {
		permanent := errors.New("permanent")
		var calls int
		err := retry.Do(t.Context(), retry.RetryConfig{
			MaxAttempts: 5,
			Backoff:     noWait,
			ShouldRetry: func(err error) bool {
				return errors.Is(err, errTemporary)
			},
		}, func() error {
			calls++
			return permanent
		})
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("ZeroConfigCallsOnce", func(t *testing.T) {
		var calls int
		err := retry.Do(t.Context(), retry.RetryConfig{}, func() error {
			calls++
			return errTemporary
		})
		assert.ErrorIs(t, err, errTemporary)
		assert.Equal(t, 1, calls)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := retry.Do(ctx, retry.RetryConfig{}, func() error {
			t.Fatal("must not be called")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("CanceledWhileWaiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		err := retry.Do(ctx, retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(time.Hour),
		}, func() error {
			cancel()
			return errTemporary
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, errTemporary)
	})
}

func TestPermanent(t *testing.T) {
	var calls int
	err := retry.Do(t.Context(), retry.RetryConfig{
		MaxAttempts: 5,
		Backoff:     retry.LinearBackoff(time.Millisecond),
	}, func() error {
		calls++
		return retry.Permanent(errTemporary)
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, errTemporary, err)

	assert.NoError(t, retry.Permanent(nil))
}

func TestOnRetry(t *testing.T) {
	var attempts []int
	err := retry.Do(t.Context(), retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.LinearBackoff(time.Millisecond),
		OnRetry: func(attempt int, err error) {
			assert.ErrorIs(t, err, errTemporary)
			attempts = append(attempts, attempt)
		},
	}, func() error {
		return errTemporary
	})
	assert.ErrorIs(t, err, errTemporary)
	assert.Equal(t, []int{1, 2}, attempts, "last failure is returned, not retried")
}

func TestDoWithResult(t *testing.T) {
	v, err := retry.DoWithResult(t.Context(), retry.RetryConfig{}, func() (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestExponentialBackoff(t *testing.T) {
	b := retry.ExponentialBackoff(10 * time.Millisecond)
	for attempt := 1; attempt <= 4; attempt++ {
		base := time.Duration(1<<attempt) * 10 * time.Millisecond
		d := b(attempt)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}

	t.Run("Capped", func(t *testing.T) {
		d := retry.ExponentialBackoff(time.Second)(40)
		assert.GreaterOrEqual(t, d, 10*time.Second)
		assert.LessOrEqual(t, d, 15*time.Second)
	})
}
