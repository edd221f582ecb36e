package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

// LoginURL is where an unauthenticated shopper is sent to sign in
// before coming back to the checkout.
const LoginURL = "/login?redirect=/checkout"

var (
	ErrUnauthenticated = errors.New("sign in to complete your order")
	ErrEmptyCart       = errors.New("your cart is empty")
)

var taxRate = decimal.NewFromFloat(0.10)

// A ValidationError lists the form fields left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// A Cart is the cart being checked out.
type Cart interface {
	Items() []domain.CartLineItem
	IsEmpty() bool
	TotalItems() int
	TotalPrice() float64
	Clear(context.Context) error
}

type Request struct {
	Authenticated bool
	Cart          Cart
	Shipping      domain.ShippingInfo
	Payment       domain.PaymentInfo
}

type Opt func(*Orchestrator)

func WithOrderIDFunc(fn func() string) Opt {
	return func(o *Orchestrator) { o.newOrderID = fn }
}

func WithClock(now func() time.Time) Opt {
	return func(o *Orchestrator) { o.now = now }
}

type Orchestrator struct {
	placer     port.OrderPlacer
	newOrderID func() string
	now        func() time.Time
}

func New(placer port.OrderPlacer, opts ...Opt) Orchestrator {
	o := Orchestrator{
		placer:     placer,
		newOrderID: randomOrderID,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Submit places the order for the cart and clears it.
//
// The cart is left untouched when the shopper is not signed in, the cart
// is empty, the form is incomplete or the order could not be placed.
func (o Orchestrator) Submit(
	ctx context.Context, req Request,
) (domain.OrderConfirmation, error) {
	const op = "Orchestrator.Submit"
	log := slog.With("op", op)

	if !req.Authenticated {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if req.Cart == nil || req.Cart.IsEmpty() {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	payment := req.Payment
	if payment.Method == "" {
		payment.Method = domain.PaymentCreditCard
	}
	if err := validate(req.Shipping, payment); err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	subtotal, tax, total := Totals(req.Cart.TotalPrice())
	order := domain.Order{
		ID:            o.newOrderID(),
		CustomerEmail: req.Shipping.Email,
		Lines:         req.Cart.Items(),
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Shipping:      req.Shipping,
		PaymentMethod: payment.Method,
		PlacedAt:      o.now().UTC(),
	}

	if err := o.placer.PlaceOrder(ctx, order); err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	confirmation := domain.OrderConfirmation{
		OrderID:    order.ID,
		Subtotal:   order.Subtotal,
		Tax:        order.Tax,
		Total:      order.Total,
		TotalItems: req.Cart.TotalItems(),
		PlacedAt:   order.PlacedAt,
	}

	if err := req.Cart.Clear(ctx); err != nil {
		log.Error("order placed but cart not cleared",
			"orderID", order.ID, "err", err,
		)
	}

	log.Info("order placed", "orderID", order.ID, "total", order.Total)
	return confirmation, nil
}

// Totals returns subtotal, flat-rate tax and total rounded to cents.
func Totals(subtotal float64) (sub, tax, total float64) {
	s := decimal.NewFromFloat(subtotal).Round(2)
	t := s.Mul(taxRate).Round(2)
	return s.InexactFloat64(), t.InexactFloat64(), s.Add(t).InexactFloat64()
}

type field struct {
	name  string
	value string
}

func validate(s domain.ShippingInfo, p domain.PaymentInfo) error {
	required := []field{
		{"firstName", s.FirstName},
		{"lastName", s.LastName},
		{"email", s.Email},
		{"phone", s.Phone},
		{"address", s.Address},
		{"city", s.City},
		{"state", s.State},
		{"zip", s.Zip},
		{"country", s.Country},
	}

	switch p.Method {
	case domain.PaymentCreditCard:
		required = append(required,
			field{"cardNumber", p.Card.Number},
			field{"cardName", p.Card.Name},
			field{"expiry", p.Card.Expiry},
			field{"cvc", p.Card.CVC},
		)
	case domain.PaymentPayPal, domain.PaymentApplePay:
	default:
		return &ValidationError{Fields: []string{"paymentMethod"}}
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) != 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func randomOrderID() string {
	return fmt.Sprintf("ORD-%04d", rand.IntN(10000))
}
