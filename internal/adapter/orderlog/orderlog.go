package orderlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.OrderPlacerCloser = (*Placer)(nil)

// A Placer accepts every order and only writes it to the log. It stands in
// for the orders stream when no brokers are configured.
type Placer struct {
	log *slog.Logger
}

func New(logger *slog.Logger) Placer {
	if logger == nil {
		logger = slog.Default()
	}
	return Placer{logger}
}

func (p Placer) PlaceOrder(ctx context.Context, o domain.Order) error {
	const op = "Placer.PlaceOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.log.InfoContext(ctx, "order accepted",
		"op", op,
		"orderID", o.ID,
		"email", o.CustomerEmail,
		"lines", len(o.Lines),
		"total", o.Total,
		"paymentMethod", o.PaymentMethod,
	)
	return nil
}

func (Placer) Close() {}
