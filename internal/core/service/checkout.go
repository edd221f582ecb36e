package service

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/core/checkout"
	"github.com/niksmo/storefront/internal/core/domain"
)

// Checkout places the session's cart as an order. Only a signed-in
// session may check out.
func (s *Service) Checkout(
	ctx context.Context,
	sid string,
	shipping domain.ShippingInfo,
	payment domain.PaymentInfo,
) (domain.OrderConfirmation, error) {
	const op = "Service.Checkout"

	var c domain.OrderConfirmation
	err := s.withSession(ctx, sid, func(ss *session) error {
		var err error
		c, err = s.checkout.Submit(ctx, checkout.Request{
			Authenticated: ss.user != nil,
			Cart:          ss.cart,
			Shipping:      shipping,
			Payment:       payment,
		})
		return err
	})
	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}
