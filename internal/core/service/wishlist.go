package service

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/wishlist"
)

type WishlistView struct {
	Items      []domain.WishlistItem
	TotalItems int
}

func wishlistView(e *wishlist.Engine) WishlistView {
	return WishlistView{Items: e.Items(), TotalItems: e.TotalItems()}
}

func (s *Service) Wishlist(ctx context.Context, sid string) (WishlistView, error) {
	const op = "Service.Wishlist"

	var v WishlistView
	err := s.withSession(ctx, sid, func(ss *session) error {
		v = wishlistView(ss.wishlist)
		return nil
	})
	if err != nil {
		return WishlistView{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (s *Service) AddToWishlist(
	ctx context.Context, sid, productID string,
) (WishlistView, error) {
	const op = "Service.AddToWishlist"

	p, err := s.catalog.Product(productID)
	if err != nil {
		return WishlistView{}, fmt.Errorf("%s: %w", op, err)
	}

	var v WishlistView
	err = s.withSession(ctx, sid, func(ss *session) error {
		if err := ss.wishlist.AddItem(ctx, p); err != nil {
			return err
		}
		v = wishlistView(ss.wishlist)
		return nil
	})
	if err != nil {
		return WishlistView{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// RemoveFromWishlist removes the product. Ids that are not saved, or no
// longer in the catalog, are accepted.
func (s *Service) RemoveFromWishlist(
	ctx context.Context, sid, productID string,
) (WishlistView, error) {
	const op = "Service.RemoveFromWishlist"

	var v WishlistView
	err := s.withSession(ctx, sid, func(ss *session) error {
		if err := ss.wishlist.RemoveItem(ctx, productID); err != nil {
			return err
		}
		v = wishlistView(ss.wishlist)
		return nil
	})
	if err != nil {
		return WishlistView{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// ToggleWishlist saves the product, or removes it when already saved.
// It reports whether the product is saved afterwards.
func (s *Service) ToggleWishlist(
	ctx context.Context, sid, productID string,
) (bool, WishlistView, error) {
	const op = "Service.ToggleWishlist"

	p, err := s.catalog.Product(productID)
	if err != nil {
		return false, WishlistView{}, fmt.Errorf("%s: %w", op, err)
	}

	var (
		saved bool
		v     WishlistView
	)
	err = s.withSession(ctx, sid, func(ss *session) error {
		in, err := ss.wishlist.Toggle(ctx, p)
		if err != nil {
			return err
		}
		saved = in
		v = wishlistView(ss.wishlist)
		return nil
	})
	if err != nil {
		return false, WishlistView{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, v, nil
}

func (s *Service) InWishlist(
	ctx context.Context, sid, productID string,
) (bool, error) {
	const op = "Service.InWishlist"

	var in bool
	err := s.withSession(ctx, sid, func(ss *session) error {
		in = ss.wishlist.IsInWishlist(productID)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return in, nil
}
