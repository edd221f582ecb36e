package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/adapter/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService() *auth.Service {
	return auth.New(auth.WithCost(bcrypt.MinCost))
}

func TestRegister(t *testing.T) {
	s := newService()

	u, err := s.Register(t.Context(), " Ada ", "Ada@Example.com", "secret-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, "ada@example.com", u.Email)
	_, err = uuid.Parse(u.ID)
	assert.NoError(t, err)

	t.Run("EmailTaken", func(t *testing.T) {
		_, err := s.Register(t.Context(), "Other", "ADA@example.com", "another-1")
		assert.ErrorIs(t, err, auth.ErrEmailTaken)
	})

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"EmptyName", "  ", "x@example.com", "secret-1", auth.ErrInvalidName},
		{"BadEmail", "X", "not-an-email", "secret-1", auth.ErrInvalidEmail},
		{"DisplayNameEmail", "X", "X <x@example.com>", "secret-1", auth.ErrInvalidEmail},
		{"ShortPassword", "X", "x@example.com", "12345", auth.ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(t.Context(), tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin(t *testing.T) {
	s := newService()
	registered, err := s.Register(t.Context(), "Ada", "ada@example.com", "secret-1")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		u, err := s.Login(t.Context(), "ADA@example.com", "secret-1")
		require.NoError(t, err)
		assert.Equal(t, registered, u)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := s.Login(t.Context(), "ada@example.com", "secret-2")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := s.Login(t.Context(), "bob@example.com", "secret-1")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("MalformedEmail", func(t *testing.T) {
		_, err := s.Login(t.Context(), "ada", "secret-1")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := s.Login(ctx, "ada@example.com", "secret-1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWithCostOutOfRange(t *testing.T) {
	s := auth.New(auth.WithCost(100))
	_, err := s.Register(t.Context(), "Ada", "ada@example.com", "secret-1")
	require.NoError(t, err)
}
