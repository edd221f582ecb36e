package catalog

import (
	"fmt"
	"slices"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Catalog = (*Store)(nil)

const DefaultRelatedCount = 4

// A Store is the immutable product catalog.
//
// Every query returns a copy, callers may modify the result freely.
type Store struct {
	products    []domain.Product
	categories  []domain.Category
	collections []domain.Collection
	byID        map[string]int
}

func New(
	products []domain.Product,
	categories []domain.Category,
	collections []domain.Collection,
) *Store {
	s := &Store{
		products:    make([]domain.Product, len(products)),
		categories:  slices.Clone(categories),
		collections: slices.Clone(collections),
		byID:        make(map[string]int, len(products)),
	}
	for i, p := range products {
		s.products[i] = cloneProduct(p)
		if _, ok := s.byID[p.ID]; !ok {
			s.byID[p.ID] = i
		}
	}
	return s
}

// Default returns the store seeded with the built-in storefront data.
func Default() *Store {
	return New(seedProducts(), seedCategories(), seedCollections())
}

func (s *Store) All() []domain.Product {
	return s.filter(func(domain.Product) bool { return true })
}

func (s *Store) Product(id string) (domain.Product, error) {
	const op = "Store.Product"

	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf(
			"%s: %q: %w", op, id, domain.ErrProductNotFound,
		)
	}
	return cloneProduct(s.products[i]), nil
}

func (s *Store) ByCategory(slug string) []domain.Product {
	return s.filter(func(p domain.Product) bool {
		return p.Category == slug
	})
}

func (s *Store) ByCollection(slug string) []domain.Product {
	return s.filter(func(p domain.Product) bool {
		return p.InCollection(slug)
	})
}

func (s *Store) Featured() []domain.Product {
	return s.filter(func(p domain.Product) bool { return p.IsFeatured })
}

func (s *Store) New() []domain.Product {
	return s.filter(func(p domain.Product) bool { return p.IsNew })
}

func (s *Store) BestSellers() []domain.Product {
	return s.filter(func(p domain.Product) bool { return p.IsBestSeller })
}

// Related returns up to count products sharing the category of the
// product id, excluding the product itself. Unknown id yields nothing.
func (s *Store) Related(id string, count int) []domain.Product {
	i, ok := s.byID[id]
	if !ok || count <= 0 {
		return nil
	}
	category := s.products[i].Category

	var related []domain.Product
	for _, p := range s.products {
		if len(related) == count {
			break
		}
		if p.ID != id && p.Category == category {
			related = append(related, cloneProduct(p))
		}
	}
	return related
}

func (s *Store) Categories() []domain.Category {
	return slices.Clone(s.categories)
}

// Category returns the category with the slug.
func (s *Store) Category(slug string) (domain.Category, bool) {
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return domain.Category{}, false
}

func (s *Store) Collections() []domain.Collection {
	return slices.Clone(s.collections)
}

func (s *Store) filter(keep func(domain.Product) bool) []domain.Product {
	var ps []domain.Product
	for _, p := range s.products {
		if keep(p) {
			ps = append(ps, cloneProduct(p))
		}
	}
	return ps
}

func cloneProduct(p domain.Product) domain.Product {
	p.Collections = slices.Clone(p.Collections)
	p.Colors = slices.Clone(p.Colors)
	p.Sizes = slices.Clone(p.Sizes)
	return p
}
