package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

type closer interface {
	Close()
}

// A SnapshotStorage keeps namespaced records of client state.
//
// Load returns nil data and nil error when the namespace has no record.
type SnapshotStorage interface {
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, data []byte) error
}

type Catalog interface {
	All() []domain.Product
	Product(id string) (domain.Product, error)
	ByCategory(slug string) []domain.Product
	ByCollection(slug string) []domain.Product
	Featured() []domain.Product
	New() []domain.Product
	BestSellers() []domain.Product
	Related(id string, count int) []domain.Product
	Categories() []domain.Category
	Collections() []domain.Collection
}

type Authenticator interface {
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type OrderPlacer interface {
	PlaceOrder(context.Context, domain.Order) error
}

type OrderPlacerCloser interface {
	OrderPlacer
	closer
}
