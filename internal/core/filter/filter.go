package filter

import (
	"slices"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Apply projects the products through the filter state: category match,
// inclusive price range and a stable sort. The input is not modified.
func Apply(products []domain.Product, s domain.FilterState) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if s.Category != "" && p.Category != s.Category {
			continue
		}
		if !s.PriceRange.Contains(p.Price) {
			continue
		}
		result = append(result, p)
	}

	slices.SortStableFunc(result, compareFunc(s.Sort))
	return result
}

func compareFunc(o domain.SortOption) func(a, b domain.Product) int {
	switch o {
	case domain.SortPriceLow:
		return func(a, b domain.Product) int {
			return cmpPrice(a.Price, b.Price)
		}
	case domain.SortPriceHigh:
		return func(a, b domain.Product) int {
			return cmpPrice(b.Price, a.Price)
		}
	case domain.SortPopular:
		return flagFirst(func(p domain.Product) bool { return p.IsBestSeller })
	default:
		return flagFirst(func(p domain.Product) bool { return p.IsNew })
	}
}

func cmpPrice(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// flagFirst orders flagged products before the rest.
func flagFirst(flag func(domain.Product) bool) func(a, b domain.Product) int {
	rank := func(p domain.Product) int {
		if flag(p) {
			return 0
		}
		return 1
	}
	return func(a, b domain.Product) int {
		return rank(a) - rank(b)
	}
}
