package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/domain"
)

var ErrInvalidOption = errors.New("product option is not available")

type CartView struct {
	Items      []domain.CartLineItem
	TotalItems int
	TotalPrice float64
}

func cartView(e *cart.Engine) CartView {
	return CartView{
		Items:      e.Items(),
		TotalItems: e.TotalItems(),
		TotalPrice: e.TotalPrice(),
	}
}

func (s *Service) Cart(ctx context.Context, sid string) (CartView, error) {
	const op = "Service.Cart"

	var v CartView
	err := s.withSession(ctx, sid, func(ss *session) error {
		v = cartView(ss.cart)
		return nil
	})
	if err != nil {
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// AddToCart adds quantity units of the product variant. An empty size or
// color selects the first option the product offers.
func (s *Service) AddToCart(
	ctx context.Context, sid, productID, size, color string, quantity int,
) (CartView, error) {
	const op = "Service.AddToCart"

	p, err := s.catalog.Product(productID)
	if err != nil {
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	size, err = pickOption(p.Sizes, size, "size")
	if err != nil {
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}
	color, err = pickOption(p.Colors, color, "color")
	if err != nil {
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	item := domain.CartItemFromProduct(p, size, color)
	return s.mutateCart(ctx, op, sid, func(e *cart.Engine) error {
		return e.AddItem(ctx, item, quantity)
	})
}

func (s *Service) UpdateCartLine(
	ctx context.Context, sid, lineID string, quantity int,
) (CartView, error) {
	const op = "Service.UpdateCartLine"
	return s.mutateCart(ctx, op, sid, func(e *cart.Engine) error {
		return e.UpdateQuantity(ctx, lineID, quantity)
	})
}

func (s *Service) IncrementCartLine(
	ctx context.Context, sid, lineID string,
) (CartView, error) {
	const op = "Service.IncrementCartLine"
	return s.mutateCart(ctx, op, sid, func(e *cart.Engine) error {
		return e.Increment(ctx, lineID)
	})
}

func (s *Service) DecrementCartLine(
	ctx context.Context, sid, lineID string,
) (CartView, error) {
	const op = "Service.DecrementCartLine"
	return s.mutateCart(ctx, op, sid, func(e *cart.Engine) error {
		return e.Decrement(ctx, lineID)
	})
}

func (s *Service) RemoveCartLine(
	ctx context.Context, sid, lineID string,
) (CartView, error) {
	const op = "Service.RemoveCartLine"
	return s.mutateCart(ctx, op, sid, func(e *cart.Engine) error {
		return e.RemoveItem(ctx, lineID)
	})
}

func (s *Service) ClearCart(ctx context.Context, sid string) (CartView, error) {
	const op = "Service.ClearCart"
	return s.mutateCart(ctx, op, sid, func(e *cart.Engine) error {
		return e.Clear(ctx)
	})
}

func (s *Service) mutateCart(
	ctx context.Context, op, sid string, fn func(*cart.Engine) error,
) (CartView, error) {
	var v CartView
	err := s.withSession(ctx, sid, func(ss *session) error {
		if err := fn(ss.cart); err != nil {
			return err
		}
		v = cartView(ss.cart)
		return nil
	})
	if err != nil {
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func pickOption(options []string, chosen, name string) (string, error) {
	if chosen == "" {
		if len(options) == 0 {
			return "", nil
		}
		return options[0], nil
	}
	if !slices.Contains(options, chosen) {
		return "", fmt.Errorf("%w: %s %q", ErrInvalidOption, name, chosen)
	}
	return chosen, nil
}
