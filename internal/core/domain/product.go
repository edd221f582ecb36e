package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

type (
	Product struct {
		ID           string
		Name         string
		Description  string
		Price        float64
		Image        string
		Category     string
		Collections  []string
		Colors       []string
		Sizes        []string
		IsFeatured   bool
		IsNew        bool
		IsBestSeller bool
	}

	Category struct {
		ID    string
		Name  string
		Slug  string
		Image string
	}

	Collection struct {
		ID   string
		Name string
		Slug string
	}
)

// InCollection reports whether the product is tagged with the collection slug.
func (p Product) InCollection(slug string) bool {
	for _, c := range p.Collections {
		if c == slug {
			return true
		}
	}
	return false
}
