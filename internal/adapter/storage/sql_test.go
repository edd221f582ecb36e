package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLStorageGuards(t *testing.T) {
	// nil sqldb: every case must return before a query is issued.
	s := NewSQLStorage(nil)

	t.Run("InvalidNamespace", func(t *testing.T) {
		_, err := s.Load(t.Context(), "../cart")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidNamespace)

		err = s.Save(t.Context(), "cart/a b", []byte(`[]`))
		assert.ErrorIs(t, err, ErrInvalidNamespace)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := s.Load(ctx, "cart/abc")
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, s.Save(ctx, "cart/abc", nil), context.Canceled)
	})
}

func TestNewSQLDBInvalidDSN(t *testing.T) {
	_, err := NewSQLDB(t.Context(), "postgres://%zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dsn")
}
