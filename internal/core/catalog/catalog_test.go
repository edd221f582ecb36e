package catalog_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/catalog"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ps []domain.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestStoreProduct(t *testing.T) {
	s := catalog.Default()

	t.Run("Found", func(t *testing.T) {
		p, err := s.Product("p3")
		require.NoError(t, err)
		assert.Equal(t, "Horizon Oversized Jacket", p.Name)
		assert.Equal(t, 129.99, p.Price)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := s.Product("unknown")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("ReturnsCopy", func(t *testing.T) {
		p, err := s.Product("p1")
		require.NoError(t, err)
		p.Sizes[0] = "XXS"
		p.Name = "changed"

		again, err := s.Product("p1")
		require.NoError(t, err)
		assert.Equal(t, "S", again.Sizes[0])
		assert.Equal(t, "Pulse Wave Hoodie", again.Name)
	})
}

func TestStoreSelectors(t *testing.T) {
	s := catalog.Default()

	assert.Len(t, s.All(), 8)
	assert.Equal(t, []string{"p5", "p7"}, ids(s.ByCategory("accessories")))
	assert.Empty(t, s.ByCategory("Accessories"))
	assert.Equal(t, []string{"p1", "p3", "p6"}, ids(s.Featured()))
	assert.Equal(t, []string{"p1", "p3", "p7"}, ids(s.New()))
	assert.Equal(t, []string{"p2", "p4", "p5", "p8"}, ids(s.BestSellers()))
	assert.Equal(t, []string{"p4", "p7"}, ids(s.ByCollection("streetwear")))
	assert.Len(t, s.Categories(), 6)
	assert.Len(t, s.Collections(), 4)

	c, ok := s.Category("t-shirts")
	require.True(t, ok)
	assert.Equal(t, "T-Shirts", c.Name)

	_, ok = s.Category("socks")
	assert.False(t, ok)
}

func TestStoreRelated(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Category: "hoodies"},
		{ID: "b", Category: "hoodies"},
		{ID: "c", Category: "pants"},
		{ID: "d", Category: "hoodies"},
		{ID: "e", Category: "hoodies"},
	}
	s := catalog.New(products, nil, nil)

	t.Run("SameCategoryExcludingSelf", func(t *testing.T) {
		assert.Equal(t, []string{"a", "d", "e"}, ids(s.Related("b", 4)))
	})

	t.Run("Capped", func(t *testing.T) {
		assert.Equal(t, []string{"b", "d"}, ids(s.Related("a", 2)))
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		assert.Empty(t, s.Related("zzz", 4))
	})

	t.Run("NoSiblings", func(t *testing.T) {
		assert.Empty(t, s.Related("c", catalog.DefaultRelatedCount))
	})
}
