package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var ErrPersist = errors.New("failed to persist wishlist")

// An Engine owns the saved products of one shopper. Each product id
// appears at most once. An Engine is not safe for concurrent use.
type Engine struct {
	storage   port.SnapshotStorage
	namespace string
	items     []domain.WishlistItem
}

func New(
	ctx context.Context, storage port.SnapshotStorage, namespace string,
) *Engine {
	e := &Engine{storage: storage, namespace: namespace}
	e.items = e.rehydrate(ctx)
	return e
}

func (e *Engine) rehydrate(ctx context.Context) []domain.WishlistItem {
	const op = "wishlist.Engine.rehydrate"
	log := slog.With("op", op, "namespace", e.namespace)

	data, err := e.storage.Load(ctx, e.namespace)
	if err != nil {
		log.Warn("failed to load snapshot, starting empty", "err", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var stored []domain.WishlistItem
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Warn("corrupt snapshot, starting empty", "err", err)
		return nil
	}

	items := make([]domain.WishlistItem, 0, len(stored))
	seen := make(map[string]struct{}, len(stored))
	for _, it := range stored {
		if _, dup := seen[it.ID]; dup || it.ID == "" {
			continue
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	return items
}

// AddItem saves the product. Already saved products are left as is.
func (e *Engine) AddItem(ctx context.Context, p domain.Product) error {
	const op = "wishlist.Engine.AddItem"

	if e.IsInWishlist(p.ID) {
		return nil
	}

	next := append(slices.Clone(e.items), domain.WishlistItemFromProduct(p))
	if err := e.commit(ctx, next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (e *Engine) RemoveItem(ctx context.Context, productID string) error {
	const op = "wishlist.Engine.RemoveItem"

	i := e.index(productID)
	if i < 0 {
		return nil
	}

	next := slices.Delete(slices.Clone(e.items), i, i+1)
	if err := e.commit(ctx, next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Toggle removes a saved product or saves an absent one. It reports
// whether the product is saved afterwards.
func (e *Engine) Toggle(ctx context.Context, p domain.Product) (bool, error) {
	const op = "wishlist.Engine.Toggle"

	if e.IsInWishlist(p.ID) {
		if err := e.RemoveItem(ctx, p.ID); err != nil {
			return true, fmt.Errorf("%s: %w", op, err)
		}
		return false, nil
	}

	if err := e.AddItem(ctx, p); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (e *Engine) IsInWishlist(productID string) bool {
	return e.index(productID) >= 0
}

func (e *Engine) TotalItems() int {
	return len(e.items)
}

// Items returns a copy of the saved products in the order they were added.
func (e *Engine) Items() []domain.WishlistItem {
	return slices.Clone(e.items)
}

func (e *Engine) index(productID string) int {
	return slices.IndexFunc(e.items, func(it domain.WishlistItem) bool {
		return it.ID == productID
	})
}

func (e *Engine) commit(ctx context.Context, next []domain.WishlistItem) error {
	if next == nil {
		next = []domain.WishlistItem{}
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	if err := e.storage.Save(ctx, e.namespace, data); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	e.items = next
	return nil
}
