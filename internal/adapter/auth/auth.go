package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLen = 6

var (
	ErrInvalidCredentials = domain.ErrInvalidCredentials
	ErrEmailTaken         = domain.ErrEmailTaken
	ErrInvalidName        = fmt.Errorf("%w: name is required", domain.ErrInvalidUserData)
	ErrInvalidEmail       = fmt.Errorf("%w: email is invalid", domain.ErrInvalidUserData)
	ErrWeakPassword       = fmt.Errorf(
		"%w: password must be at least %d characters",
		domain.ErrInvalidUserData, MinPasswordLen,
	)
)

var _ port.Authenticator = (*Service)(nil)

type account struct {
	user domain.User
	hash []byte
}

type Opt func(*Service)

// WithCost sets the bcrypt cost. Values outside bcrypt bounds fall back to
// [bcrypt.DefaultCost].
func WithCost(cost int) Opt {
	return func(s *Service) {
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		s.cost = cost
	}
}

// A Service keeps accounts in memory. Accounts do not survive a restart.
type Service struct {
	mu       sync.RWMutex
	cost     int
	accounts map[string]account
}

func New(opts ...Opt) *Service {
	s := &Service{
		cost:     bcrypt.DefaultCost,
		accounts: make(map[string]account),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Register(
	ctx context.Context, name, email, password string,
) (domain.User, error) {
	const op = "Service.Register"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	name = strings.TrimSpace(name)
	key, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if name == "" {
		return domain.User{}, fmt.Errorf("%s: %w", op, ErrInvalidName)
	}
	if len(password) < MinPasswordLen {
		return domain.User{}, fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[key]; ok {
		return domain.User{}, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}

	u := domain.User{ID: uuid.NewString(), Name: name, Email: key}
	s.accounts[key] = account{user: u, hash: hash}

	log.Info("user registered", "userID", u.ID)
	return u, nil
}

func (s *Service) Login(
	ctx context.Context, email, password string,
) (domain.User, error) {
	const op = "Service.Login"

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	key, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	s.mu.RLock()
	acc, ok := s.accounts[key]
	s.mu.RUnlock()
	if !ok {
		return domain.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	err = bcrypt.CompareHashAndPassword(acc.hash, []byte(password))
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	return acc.user, nil
}

func normalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Name != "" {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}
