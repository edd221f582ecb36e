package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage(t *testing.T) {
	t.Run("MissingRecord", func(t *testing.T) {
		s := NewMemoryStorage()
		data, err := s.Load(t.Context(), "cart/abc")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("SaveLoad", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		s := NewFileStorage(fs)

		require.NoError(t, s.Save(t.Context(), "cart/abc", []byte(`[1]`)))
		require.NoError(t, s.Save(t.Context(), "cart/abc", []byte(`[1,2]`)))

		data, err := s.Load(t.Context(), "cart/abc")
		require.NoError(t, err)
		assert.Equal(t, `[1,2]`, string(data))

		exists, err := afero.Exists(fs, "/cart/abc.json")
		require.NoError(t, err)
		assert.True(t, exists)

		tmp, err := afero.Exists(fs, "/cart/abc.json.tmp")
		require.NoError(t, err)
		assert.False(t, tmp)
	})

	t.Run("NamespacesIsolated", func(t *testing.T) {
		s := NewMemoryStorage()
		require.NoError(t, s.Save(t.Context(), "cart/abc", []byte(`"cart"`)))
		require.NoError(t, s.Save(t.Context(), "wishlist/abc", []byte(`"wish"`)))

		c, err := s.Load(t.Context(), "cart/abc")
		require.NoError(t, err)
		w, err := s.Load(t.Context(), "wishlist/abc")
		require.NoError(t, err)
		assert.Equal(t, `"cart"`, string(c))
		assert.Equal(t, `"wish"`, string(w))
	})

	t.Run("InvalidNamespace", func(t *testing.T) {
		s := NewMemoryStorage()
		err := s.Save(t.Context(), "../etc/passwd", []byte(`x`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidNamespace)

		_, err = s.Load(t.Context(), "")
		assert.ErrorIs(t, err, ErrInvalidNamespace)
	})

	t.Run("ReadOnlyFs", func(t *testing.T) {
		s := NewFileStorage(afero.NewReadOnlyFs(afero.NewMemMapFs()))
		err := s.Save(t.Context(), "cart/abc", []byte(`[]`))
		require.Error(t, err)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		s := NewMemoryStorage()
		assert.ErrorIs(t, s.Save(ctx, "cart/abc", nil), context.Canceled)
		_, err := s.Load(ctx, "cart/abc")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDirStorage(t *testing.T) {
	s, err := NewDirStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(t.Context(), "wishlist/s1", []byte(`[]`)))
	data, err := s.Load(t.Context(), "wishlist/s1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestValidNamespace(t *testing.T) {
	valid := []string{"cart/0b6e", "wishlist/a-b_c", "cart.v2/x"}
	for _, ns := range valid {
		assert.True(t, validNamespace(ns), ns)
	}

	invalid := []string{"", "/abs", "cart/../x", "cart/a b", "cart/ü", `cart\x`}
	for _, ns := range invalid {
		assert.False(t, validNamespace(ns), ns)
	}
}
