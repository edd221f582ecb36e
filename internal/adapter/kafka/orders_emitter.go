package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/retry"
	"github.com/niksmo/storefront/pkg/schema"
)

var _ port.OrderPlacerCloser = (*OrdersEmitter)(nil)

// An orderCodec used for serde [schema.OrderV1]
type orderCodec struct {
	serde Serde
}

func newOrderCodec(s Serde) orderCodec {
	return orderCodec{s}
}

func (c orderCodec) Encode(v any) ([]byte, error) {
	const op = "orderCodec.Encode"
	if _, ok := v.(schema.OrderV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c orderCodec) Decode(data []byte) (any, error) {
	const op = "orderCodec.Decode"
	var s schema.OrderV1
	if err := c.serde.Decode(data, &s); err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

type emitter interface {
	EmitSync(key string, msg any) error
	Finish() error
}

// An OrdersEmitterConfig used for setup [OrdersEmitter].
//
// SeedBrokers, Topic and Serde are required.
type OrdersEmitterConfig struct {
	SeedBrokers []string
	Topic       string
	Serde       Serde
	Retry       retry.RetryConfig
}

// An OrdersEmitter publishes placed orders to the orders stream keyed by
// order id.
type OrdersEmitter struct {
	ge       emitter
	retryCfg retry.RetryConfig
}

func NewOrdersEmitter(config OrdersEmitterConfig) (*OrdersEmitter, error) {
	const op = "NewOrdersEmitter"

	if len(config.SeedBrokers) == 0 || config.Topic == "" || config.Serde == nil {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	ge, err := goka.NewEmitter(
		config.SeedBrokers,
		goka.Stream(config.Topic),
		newOrderCodec(config.Serde),
	)
	if err != nil {
		return nil, opErr(err, op)
	}

	return newOrdersEmitter(ge, config.Retry), nil
}

func newOrdersEmitter(ge emitter, rc retry.RetryConfig) *OrdersEmitter {
	if rc.MaxAttempts == 0 {
		rc = retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.ExponentialBackoff(100 * time.Millisecond),
		}
	}
	return &OrdersEmitter{ge: ge, retryCfg: rc}
}

func (e *OrdersEmitter) PlaceOrder(ctx context.Context, o domain.Order) error {
	const op = "OrdersEmitter.PlaceOrder"
	log := slog.With("op", op, "orderID", o.ID)

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	v := orderToSchemaV1(o)
	rc := e.retryCfg
	rc.OnRetry = func(attempt int, err error) {
		log.Warn("failed to emit order", "attempt", attempt, "err", err)
	}
	err := retry.Do(ctx, rc, func() error {
		return e.ge.EmitSync(v.OrderID, v)
	})
	if err != nil {
		return opErr(err, op)
	}

	log.Debug("order emitted")
	return nil
}

func (e *OrdersEmitter) Close() {
	const op = "OrdersEmitter.Close"
	log := slog.With("op", op)

	log.Info("closing emitter...")
	if err := e.ge.Finish(); err != nil {
		log.Error("failed to finish gracefully", "err", err)
		return
	}
	log.Info("emitter is closed")
}
