package service

import (
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/filter"
)

var ErrUnknownFilterAction = errors.New("unknown filter action")

type FilterAction string

const (
	FilterSetCategory    FilterAction = "set-category"
	FilterToggleCategory FilterAction = "toggle-category"
	FilterSetSort        FilterAction = "set-sort"
	FilterClearSort      FilterAction = "clear-sort"
	FilterSetPriceRange  FilterAction = "set-price-range"
	FilterClearAll       FilterAction = "clear-all"
)

// A FilterChange is one filter control interaction.
type FilterChange struct {
	Action     FilterAction
	Category   string
	Sort       domain.SortOption
	PriceRange domain.PriceRange
}

// A Listing is a filtered product page. Query is the canonical location
// of the page.
type Listing struct {
	State    domain.FilterState
	Query    url.Values
	Products []domain.Product
}

type ProductDetail struct {
	Product domain.Product
	Related []domain.Product
}

// ListProducts lists the page described by the query.
func (s *Service) ListProducts(q url.Values) Listing {
	e := filter.NewEngine(s.source, filter.WithQuery(q))
	return listingOf(e.Result())
}

// ChangeFilter applies the change to the page described by the query and
// returns the page at its new location.
func (s *Service) ChangeFilter(q url.Values, c FilterChange) (Listing, error) {
	const op = "Service.ChangeFilter"

	var location url.Values
	nav := filter.NavigatorFunc(func(next url.Values) { location = next })
	e := filter.NewEngine(s.source, filter.WithQuery(q), filter.WithNavigator(nav))

	switch c.Action {
	case FilterSetCategory:
		e.SetCategory(c.Category)
	case FilterToggleCategory:
		e.ToggleCategory(c.Category)
	case FilterSetSort:
		e.SetSort(c.Sort)
	case FilterClearSort:
		e.ClearSort()
	case FilterSetPriceRange:
		e.SetPriceRange(c.PriceRange)
	case FilterClearAll:
		e.ClearAll()
	default:
		err := fmt.Errorf("%w: %q", ErrUnknownFilterAction, c.Action)
		return Listing{}, fmt.Errorf("%s: %w", op, err)
	}

	l := listingOf(e.Result())
	l.Query = location
	return l, nil
}

// source lists new arrivals for filter=new and narrows to a collection
// when one is given.
func (s *Service) source(q url.Values) []domain.Product {
	var products []domain.Product
	if q.Get(filter.KeyListing) == filter.ListingNew {
		products = s.catalog.New()
	} else {
		products = s.catalog.All()
	}

	if slug := q.Get(filter.KeyCollection); slug != "" {
		products = slices.DeleteFunc(products, func(p domain.Product) bool {
			return !p.InCollection(slug)
		})
	}
	return products
}

func listingOf(r filter.Result) Listing {
	return Listing{State: r.State, Query: r.Query, Products: r.Products}
}

func (s *Service) Product(id string) (ProductDetail, error) {
	const op = "Service.Product"

	p, err := s.catalog.Product(id)
	if err != nil {
		return ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}
	return ProductDetail{
		Product: p,
		Related: s.catalog.Related(id, s.relatedCount),
	}, nil
}

func (s *Service) Categories() []domain.Category {
	return s.catalog.Categories()
}

func (s *Service) Collections() []domain.Collection {
	return s.catalog.Collections()
}

func (s *Service) Featured() []domain.Product {
	return s.catalog.Featured()
}

func (s *Service) NewArrivals() []domain.Product {
	return s.catalog.New()
}

func (s *Service) BestSellers() []domain.Product {
	return s.catalog.BestSellers()
}
