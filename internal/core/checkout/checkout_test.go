package checkout_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/checkout"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) PlaceOrder(ctx context.Context, o domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type memStorage map[string][]byte

func (s memStorage) Load(_ context.Context, ns string) ([]byte, error) {
	return s[ns], nil
}

func (s memStorage) Save(_ context.Context, ns string, data []byte) error {
	s[ns] = data
	return nil
}

var placedAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func shipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+1 555 0100",
		Address:   "1 Analytical Way",
		City:      "London",
		State:     "LDN",
		Zip:       "10001",
		Country:   "United States",
	}
}

func card() domain.PaymentInfo {
	return domain.PaymentInfo{
		Method: domain.PaymentCreditCard,
		Card: domain.CardInfo{
			Number: "4242 4242 4242 4242",
			Name:   "Ada Lovelace",
			Expiry: "12/30",
			CVC:    "123",
		},
	}
}

func cartWith(t *testing.T, price float64, qty int) *cart.Engine {
	t.Helper()
	c := cart.New(t.Context(), memStorage{}, "cart/checkout")
	if qty > 0 {
		require.NoError(t, c.AddItem(t.Context(), domain.CartItemInput{
			ProductID: "p9", Name: "Item", Price: price, Size: "M",
		}, qty))
	}
	return c
}

func newOrchestrator(placer *MockOrderPlacer) checkout.Orchestrator {
	return checkout.New(placer,
		checkout.WithOrderIDFunc(func() string { return "ORD-0042" }),
		checkout.WithClock(func() time.Time { return placedAt }),
	)
}

func TestSubmit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		placer := new(MockOrderPlacer)
		placer.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(o domain.Order) bool {
			return o.ID == "ORD-0042" &&
				o.Subtotal == 100 && o.Tax == 10 && o.Total == 110 &&
				len(o.Lines) == 1 && o.CustomerEmail == "ada@example.com" &&
				o.PaymentMethod == domain.PaymentCreditCard &&
				o.PlacedAt.Equal(placedAt)
		})).Return(nil)

		c := cartWith(t, 25, 4)
		got, err := newOrchestrator(placer).Submit(t.Context(), checkout.Request{
			Authenticated: true,
			Cart:          c,
			Shipping:      shipping(),
			Payment:       card(),
		})
		require.NoError(t, err)

		assert.Equal(t, domain.OrderConfirmation{
			OrderID:    "ORD-0042",
			Subtotal:   100,
			Tax:        10,
			Total:      110,
			TotalItems: 4,
			PlacedAt:   placedAt,
		}, got)
		assert.Zero(t, c.TotalItems())
		assert.True(t, c.IsEmpty())
		placer.AssertExpectations(t)
	})

	t.Run("EmptyCartBlocked", func(t *testing.T) {
		placer := new(MockOrderPlacer)
		c := cartWith(t, 0, 0)

		_, err := newOrchestrator(placer).Submit(t.Context(), checkout.Request{
			Authenticated: true,
			Cart:          c,
			Shipping:      shipping(),
			Payment:       card(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
		assert.True(t, c.IsEmpty())
		placer.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
	})

	t.Run("UnauthenticatedBlocked", func(t *testing.T) {
		placer := new(MockOrderPlacer)
		c := cartWith(t, 10, 1)

		_, err := newOrchestrator(placer).Submit(t.Context(), checkout.Request{
			Cart:     c,
			Shipping: shipping(),
			Payment:  card(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, checkout.ErrUnauthenticated)
		assert.Equal(t, 1, c.TotalItems())
		placer.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
	})

	t.Run("MissingFields", func(t *testing.T) {
		placer := new(MockOrderPlacer)
		c := cartWith(t, 10, 1)
		s := shipping()
		s.City = "  "
		s.Zip = ""
		p := card()
		p.Card.CVC = ""

		_, err := newOrchestrator(placer).Submit(t.Context(), checkout.Request{
			Authenticated: true, Cart: c, Shipping: s, Payment: p,
		})

		var verr *checkout.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"city", "zip", "cvc"}, verr.Fields)
		assert.Equal(t, 1, c.TotalItems())
	})

	t.Run("PayPalNeedsNoCard", func(t *testing.T) {
		placer := new(MockOrderPlacer)
		placer.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil)

		_, err := newOrchestrator(placer).Submit(t.Context(), checkout.Request{
			Authenticated: true,
			Cart:          cartWith(t, 10, 1),
			Shipping:      shipping(),
			Payment:       domain.PaymentInfo{Method: domain.PaymentPayPal},
		})
		require.NoError(t, err)
	})

	t.Run("UnknownPaymentMethod", func(t *testing.T) {
		_, err := newOrchestrator(new(MockOrderPlacer)).Submit(t.Context(), checkout.Request{
			Authenticated: true,
			Cart:          cartWith(t, 10, 1),
			Shipping:      shipping(),
			Payment:       domain.PaymentInfo{Method: "barter"},
		})
		var verr *checkout.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"paymentMethod"}, verr.Fields)
	})

	t.Run("PlacerFailureKeepsCart", func(t *testing.T) {
		placer := new(MockOrderPlacer)
		placer.On("PlaceOrder", mock.Anything, mock.Anything).
			Return(errors.New("broker unavailable"))
		c := cartWith(t, 10, 2)

		_, err := newOrchestrator(placer).Submit(t.Context(), checkout.Request{
			Authenticated: true, Cart: c, Shipping: shipping(), Payment: card(),
		})
		require.Error(t, err)
		assert.Equal(t, 2, c.TotalItems())
	})
}

func TestTotals(t *testing.T) {
	sub, tax, total := checkout.Totals(100)
	assert.Equal(t, 100.0, sub)
	assert.Equal(t, 10.0, tax)
	assert.Equal(t, 110.0, total)

	sub, tax, total = checkout.Totals(2*39.99 + 89.99)
	assert.Equal(t, 169.97, sub)
	assert.Equal(t, 17.0, tax)
	assert.Equal(t, 186.97, total)
}

func TestRandomOrderID(t *testing.T) {
	placer := new(MockOrderPlacer)
	placer.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil)

	got, err := checkout.New(placer).Submit(t.Context(), checkout.Request{
		Authenticated: true,
		Cart:          cartWith(t, 5, 1),
		Shipping:      shipping(),
		Payment:       card(),
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{4}$`), got.OrderID)
}
