package orderlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/orderlog"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrder(t *testing.T) {
	var buf bytes.Buffer
	p := orderlog.New(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := p.PlaceOrder(t.Context(), domain.Order{
		ID: "ORD-0007", CustomerEmail: "ada@example.com", Total: 110,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"orderID":"ORD-0007"`)
	assert.Contains(t, buf.String(), `"total":110`)

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		assert.ErrorIs(t, p.PlaceOrder(ctx, domain.Order{}), context.Canceled)
	})
}
