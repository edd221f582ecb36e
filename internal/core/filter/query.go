package filter

import (
	"math"
	"net/url"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Query keys owned by the filter.
const (
	KeyCategory = "category"
	KeySort     = "sort"
	KeyPriceMin = "price_min"
	KeyPriceMax = "price_max"
)

// Listing keys read by product listings and never written by the filter.
const (
	KeyListing    = "filter"
	KeyCollection = "collection"

	ListingNew = "new"
)

// QueryToFilterState derives the filter state from the query.
// Absent or malformed values fall back to their defaults.
func QueryToFilterState(q url.Values) domain.FilterState {
	s := domain.DefaultFilterState()
	s.Category = q.Get(KeyCategory)
	s.Sort = domain.ParseSortOption(q.Get(KeySort))
	s.PriceRange = domain.PriceRange{
		Low:  parsePrice(q.Get(KeyPriceMin), domain.MinPrice),
		High: parsePrice(q.Get(KeyPriceMax), domain.MaxPrice),
	}.Normalize()
	return s
}

// FilterStateToQuery encodes the state over a copy of base. Keys the
// filter does not own are carried over; default values are omitted.
func FilterStateToQuery(s domain.FilterState, base url.Values) url.Values {
	q := cloneValues(base)

	setOrDelete(q, KeyCategory, s.Category, s.Category == "")

	sort := domain.ParseSortOption(string(s.Sort))
	setOrDelete(q, KeySort, string(sort), sort == domain.SortNewest)

	r := s.PriceRange.Normalize()
	setOrDelete(q, KeyPriceMin, formatPrice(r.Low), r.IsDefault())
	setOrDelete(q, KeyPriceMax, formatPrice(r.High), r.IsDefault())

	return q
}

func setOrDelete(q url.Values, key, value string, del bool) {
	if del {
		q.Del(key)
		return
	}
	q.Set(key, value)
}

func parsePrice(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return fallback
	}
	return v
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
