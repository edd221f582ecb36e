package sigctx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// NotifyContext returns a context canceled on SIGINT, SIGTERM or SIGQUIT.
// The received signal is the context cause.
func NotifyContext() (context.Context, context.CancelFunc) {
	return notifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}

func notifyContext(
	parent context.Context, signals ...os.Signal,
) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)

	go func() {
		select {
		case sig := <-ch:
			slog.Info("signal received", "signal", sig.String())
			cancel(fmt.Errorf("signal: %s", sig))
		case <-ctx.Done():
		}
		signal.Stop(ch)
	}()

	return ctx, func() { cancel(context.Canceled) }
}
