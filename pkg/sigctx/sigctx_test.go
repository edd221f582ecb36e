package sigctx

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyContext(t *testing.T) {
	t.Run("Signal", func(t *testing.T) {
		ctx, stop := notifyContext(t.Context(), syscall.SIGUSR1)
		defer stop()

		require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("context is not canceled")
		}
		assert.EqualError(t, context.Cause(ctx), "signal: user defined signal 1")
	})

	t.Run("Stop", func(t *testing.T) {
		ctx, stop := notifyContext(t.Context(), syscall.SIGUSR2)
		stop()

		<-ctx.Done()
		assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
	})
}
