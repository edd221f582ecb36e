package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/retry"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) EmitSync(key string, msg any) error {
	args := m.Called(key, msg)
	return args.Error(0)
}

func (m *MockEmitter) Finish() error {
	args := m.Called()
	return args.Error(0)
}

type MockSerde struct {
	mock.Mock
}

func (m *MockSerde) Encode(v any) ([]byte, error) {
	args := m.Called(v)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *MockSerde) Decode(data []byte, v any) error {
	args := m.Called(data, v)
	return args.Error(0)
}

var placedAt = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func testOrder() domain.Order {
	return domain.Order{
		ID:            "ORD-0042",
		CustomerEmail: "ada@example.com",
		Lines: []domain.CartLineItem{
			{
				ID: "p1-M-Black", ProductID: "p1", Name: "Essential Hoodie",
				Price: 89.99, Quantity: 2, Size: "M", Color: "Black",
			},
		},
		Subtotal:      179.98,
		Tax:           18,
		Total:         197.98,
		Shipping:      domain.ShippingInfo{FirstName: "Ada", City: "London"},
		PaymentMethod: domain.PaymentPayPal,
		PlacedAt:      placedAt,
	}
}

func noWait() retry.RetryConfig {
	return retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.LinearBackoff(time.Millisecond),
	}
}

func TestOrderToSchemaV1(t *testing.T) {
	s := orderToSchemaV1(testOrder())

	assert.Equal(t, "ORD-0042", s.OrderID)
	assert.Equal(t, "paypal", s.PaymentMethod)
	assert.Equal(t, 197.98, s.Total)
	assert.Equal(t, "London", s.Shipping.City)
	assert.True(t, placedAt.Equal(s.PlacedAt))
	require.Len(t, s.Lines, 1)
	assert.Equal(t, schema.OrderLineV1{
		LineID: "p1-M-Black", ProductID: "p1", Name: "Essential Hoodie",
		Price: 89.99, Quantity: 2, Size: "M", Color: "Black",
	}, s.Lines[0])
}

func TestOrdersEmitterPlaceOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ge := new(MockEmitter)
		ge.On("EmitSync", "ORD-0042", orderToSchemaV1(testOrder())).Return(nil).Once()

		e := newOrdersEmitter(ge, noWait())
		require.NoError(t, e.PlaceOrder(t.Context(), testOrder()))
		ge.AssertExpectations(t)
	})

	t.Run("RetriedUntilDelivered", func(t *testing.T) {
		ge := new(MockEmitter)
		ge.On("EmitSync", "ORD-0042", mock.Anything).Return(errors.New("leader not available")).Twice()
		ge.On("EmitSync", "ORD-0042", mock.Anything).Return(nil).Once()

		e := newOrdersEmitter(ge, noWait())
		require.NoError(t, e.PlaceOrder(t.Context(), testOrder()))
		ge.AssertNumberOfCalls(t, "EmitSync", 3)
	})

	t.Run("AttemptsExhausted", func(t *testing.T) {
		brokerErr := errors.New("broker down")
		ge := new(MockEmitter)
		ge.On("EmitSync", mock.Anything, mock.Anything).Return(brokerErr)

		e := newOrdersEmitter(ge, noWait())
		err := e.PlaceOrder(t.Context(), testOrder())
		require.Error(t, err)
		assert.ErrorIs(t, err, brokerErr)
		ge.AssertNumberOfCalls(t, "EmitSync", 3)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		ge := new(MockEmitter)

		e := newOrdersEmitter(ge, noWait())
		err := e.PlaceOrder(ctx, testOrder())
		assert.ErrorIs(t, err, context.Canceled)
		ge.AssertNotCalled(t, "EmitSync", mock.Anything, mock.Anything)
	})
}

func TestOrdersEmitterClose(t *testing.T) {
	ge := new(MockEmitter)
	ge.On("Finish").Return(nil).Once()

	newOrdersEmitter(ge, retry.RetryConfig{}).Close()
	ge.AssertExpectations(t)
}

func TestOrderCodec(t *testing.T) {
	t.Run("EncodeRejectsForeignValue", func(t *testing.T) {
		c := newOrderCodec(new(MockSerde))
		_, err := c.Encode("not an order")
		assert.ErrorIs(t, err, ErrInvalidValueType)
	})

	t.Run("Encode", func(t *testing.T) {
		serde := new(MockSerde)
		v := orderToSchemaV1(testOrder())
		serde.On("Encode", v).Return([]byte{0x0, 0x1}, nil)

		b, err := newOrderCodec(serde).Encode(v)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x0, 0x1}, b)
	})

	t.Run("DecodeError", func(t *testing.T) {
		serde := new(MockSerde)
		serde.On("Decode", mock.Anything, mock.Anything).Return(errors.New("bad magic"))

		_, err := newOrderCodec(serde).Decode([]byte{0x1})
		require.Error(t, err)
	})
}
