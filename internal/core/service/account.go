package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Register creates the account and signs the session in.
func (s *Service) Register(
	ctx context.Context, sid, name, email, password string,
) (domain.User, error) {
	const op = "Service.Register"

	u, err := s.auth.Register(ctx, name, email, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.signIn(ctx, sid, u); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (s *Service) Login(
	ctx context.Context, sid, email, password string,
) (domain.User, error) {
	const op = "Service.Login"

	u, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.signIn(ctx, sid, u); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Logout signs the session out. Cart and wishlist are kept.
func (s *Service) Logout(ctx context.Context, sid string) error {
	const op = "Service.Logout"

	err := s.withSession(ctx, sid, func(ss *session) error {
		ss.user = nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CurrentUser returns the signed-in user of the session.
func (s *Service) CurrentUser(
	ctx context.Context, sid string,
) (domain.User, bool, error) {
	const op = "Service.CurrentUser"

	var (
		u  domain.User
		ok bool
	)
	err := s.withSession(ctx, sid, func(ss *session) error {
		if ss.user != nil {
			u, ok = *ss.user, true
		}
		return nil
	})
	if err != nil {
		return domain.User{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return u, ok, nil
}

func (s *Service) signIn(ctx context.Context, sid string, u domain.User) error {
	return s.withSession(ctx, sid, func(ss *session) error {
		ss.user = &u
		slog.Debug("session signed in", "op", "Service.signIn", "userID", u.ID)
		return nil
	})
}
