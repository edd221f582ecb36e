package cart

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

var ErrPersist = errors.New("failed to persist cart")

// An Engine owns the line items of one shopper's cart.
//
// Every mutation is written to the snapshot storage before it becomes
// visible. An Engine is not safe for concurrent use.
type Engine struct {
	storage   port.SnapshotStorage
	namespace string
	lines     []domain.CartLineItem
}

// New returns the cart stored under the namespace. A missing or
// unreadable snapshot yields an empty cart.
func New(
	ctx context.Context, storage port.SnapshotStorage, namespace string,
) *Engine {
	e := &Engine{storage: storage, namespace: namespace}
	e.lines = e.rehydrate(ctx)
	return e
}

func (e *Engine) rehydrate(ctx context.Context) []domain.CartLineItem {
	const op = "cart.Engine.rehydrate"
	log := slog.With("op", op, "namespace", e.namespace)

	data, err := e.storage.Load(ctx, e.namespace)
	if err != nil {
		log.Warn("failed to load snapshot, starting empty", "err", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var lines []domain.CartLineItem
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Warn("corrupt snapshot, starting empty", "err", err)
		return nil
	}

	return slices.DeleteFunc(lines, func(l domain.CartLineItem) bool {
		return l.Quantity < 1 || l.ID == ""
	})
}

// AddItem adds quantity units of the variant. An existing line with the
// same key is incremented. A quantity below 1 is ignored.
func (e *Engine) AddItem(
	ctx context.Context, item domain.CartItemInput, quantity int,
) error {
	const op = "cart.Engine.AddItem"

	if quantity < 1 {
		return nil
	}

	id := item.LineID()
	next := slices.Clone(e.lines)
	if i := e.index(id); i >= 0 {
		next[i].Quantity += quantity
	} else {
		next = append(next, domain.CartLineItem{
			ID:        id,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	if err := e.commit(ctx, next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateQuantity sets the quantity of the line. Quantities below 1 and
// unknown lines are ignored.
func (e *Engine) UpdateQuantity(
	ctx context.Context, lineID string, quantity int,
) error {
	const op = "cart.Engine.UpdateQuantity"

	i := e.index(lineID)
	if quantity < 1 || i < 0 || e.lines[i].Quantity == quantity {
		return nil
	}

	next := slices.Clone(e.lines)
	next[i].Quantity = quantity

	if err := e.commit(ctx, next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (e *Engine) Increment(ctx context.Context, lineID string) error {
	const op = "cart.Engine.Increment"

	i := e.index(lineID)
	if i < 0 {
		return nil
	}
	if err := e.UpdateQuantity(ctx, lineID, e.lines[i].Quantity+1); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Decrement lowers the line quantity by one, removing the line instead
// of letting it reach zero.
func (e *Engine) Decrement(ctx context.Context, lineID string) error {
	const op = "cart.Engine.Decrement"

	i := e.index(lineID)
	if i < 0 {
		return nil
	}

	var err error
	if q := e.lines[i].Quantity; q > 1 {
		err = e.UpdateQuantity(ctx, lineID, q-1)
	} else {
		err = e.RemoveItem(ctx, lineID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (e *Engine) RemoveItem(ctx context.Context, lineID string) error {
	const op = "cart.Engine.RemoveItem"

	i := e.index(lineID)
	if i < 0 {
		return nil
	}

	next := slices.Delete(slices.Clone(e.lines), i, i+1)
	if err := e.commit(ctx, next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (e *Engine) Clear(ctx context.Context) error {
	const op = "cart.Engine.Clear"

	if err := e.commit(ctx, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Items returns a copy of the lines in insertion order.
func (e *Engine) Items() []domain.CartLineItem {
	return slices.Clone(e.lines)
}

func (e *Engine) Line(lineID string) (domain.CartLineItem, bool) {
	i := e.index(lineID)
	if i < 0 {
		return domain.CartLineItem{}, false
	}
	return e.lines[i], true
}

func (e *Engine) IsEmpty() bool {
	return len(e.lines) == 0
}

func (e *Engine) TotalItems() (n int) {
	for _, l := range e.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the subtotal without tax and shipping.
func (e *Engine) TotalPrice() (total float64) {
	for _, l := range e.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

func (e *Engine) index(lineID string) int {
	return slices.IndexFunc(e.lines, func(l domain.CartLineItem) bool {
		return l.ID == lineID
	})
}

func (e *Engine) commit(ctx context.Context, next []domain.CartLineItem) error {
	if next == nil {
		next = []domain.CartLineItem{}
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	if err := e.storage.Save(ctx, e.namespace, data); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	e.lines = next
	return nil
}
