package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	defaultDelay    = 100 * time.Millisecond
	defaultMaxDelay = 10 * time.Second
)

// A Backoff returns the pause before the given attempt. Attempts start at 1.
type Backoff func(attempt int) time.Duration

type ShouldRetry func(error) bool

// A RetryConfig describes how [Do] repeats a call.
//
// The zero value calls once. OnRetry, when set, is called after every
// failed attempt that is going to be repeated.
type RetryConfig struct {
	MaxAttempts int
	Backoff     Backoff
	ShouldRetry ShouldRetry
	OnRetry     func(attempt int, err error)
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 1
	}
	if c.Backoff == nil {
		c.Backoff = ExponentialBackoff(defaultDelay)
	}
	if c.ShouldRetry == nil {
		c.ShouldRetry = func(error) bool { return true }
	}
	if c.OnRetry == nil {
		c.OnRetry = func(int, error) {}
	}
	return c
}

type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }

func (e permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth another attempt regardless of
// ShouldRetry. [Do] returns the wrapped error.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{err}
}

func isPermanent(err error) bool {
	var p permanentError
	return errors.As(err, &p)
}

// ExponentialBackoff doubles the delay on every attempt and adds up to
// half of it as jitter. The pause never exceeds ten seconds.
func ExponentialBackoff(delay time.Duration) Backoff {
	return func(attempt int) time.Duration {
		base := delay << min(attempt, 30)
		if base <= 0 || base > defaultMaxDelay {
			base = defaultMaxDelay
		}
		jitter := time.Duration(rand.Int64N(int64(base/2) + 1))
		return min(base+jitter, defaultMaxDelay+defaultMaxDelay/2)
	}
}

func LinearBackoff(delay time.Duration) Backoff {
	return func(int) time.Duration {
		return delay
	}
}

func Do(ctx context.Context, c RetryConfig, fn func() error) error {
	_, err := DoWithResult(ctx, c, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult calls fn until it succeeds, returns an error that should
// not be retried, or the attempts are exhausted.
func DoWithResult[T any](
	ctx context.Context, c RetryConfig, fn func() (T, error),
) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c = c.withDefaults()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for attempt := 1; ; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		if isPermanent(err) {
			return zero, errors.Unwrap(err)
		}
		if attempt >= c.MaxAttempts || !c.ShouldRetry(err) {
			return zero, err
		}
		c.OnRetry(attempt, err)

		pause := c.Backoff(attempt)
		if timer == nil {
			timer = time.NewTimer(pause)
		} else {
			timer.Reset(pause)
		}

		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}
}
