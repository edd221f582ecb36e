package domain

type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortPopular   SortOption = "popular"
)

const (
	MinPrice float64 = 0
	MaxPrice float64 = 200
)

// ParseSortOption returns the option named by s, or [SortNewest]
// when s is empty or unknown.
func ParseSortOption(s string) SortOption {
	switch o := SortOption(s); o {
	case SortNewest, SortPriceLow, SortPriceHigh, SortPopular:
		return o
	default:
		return SortNewest
	}
}

type PriceRange struct {
	Low  float64
	High float64
}

func DefaultPriceRange() PriceRange {
	return PriceRange{Low: MinPrice, High: MaxPrice}
}

// Normalize clamps the range into [MinPrice, MaxPrice] and orders its ends.
func (r PriceRange) Normalize() PriceRange {
	r.Low = clamp(r.Low)
	r.High = clamp(r.High)
	if r.Low > r.High {
		r.Low, r.High = r.High, r.Low
	}
	return r
}

func (r PriceRange) IsDefault() bool {
	return r == DefaultPriceRange()
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Low && price <= r.High
}

func clamp(v float64) float64 {
	return min(max(v, MinPrice), MaxPrice)
}

// A FilterState is the active catalog filter. An empty Category means
// no category filter.
type FilterState struct {
	Category   string
	PriceRange PriceRange
	Sort       SortOption
}

func DefaultFilterState() FilterState {
	return FilterState{
		PriceRange: DefaultPriceRange(),
		Sort:       SortNewest,
	}
}
