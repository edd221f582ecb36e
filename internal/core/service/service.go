package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/catalog"
	"github.com/niksmo/storefront/internal/core/checkout"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/wishlist"
)

var ErrInvalidSession = errors.New("invalid session id")

type session struct {
	mu       sync.Mutex
	cart     *cart.Engine
	wishlist *wishlist.Engine
	user     *domain.User
	lastSeen time.Time
	evicted  bool
}

type Opt func(*Service)

// WithRelatedCount sets how many related products a detail lists.
func WithRelatedCount(n int) Opt {
	return func(s *Service) {
		if n > 0 {
			s.relatedCount = n
		}
	}
}

func WithClock(now func() time.Time) Opt {
	return func(s *Service) { s.now = now }
}

// WithCheckoutOpts configures the checkout orchestrator.
func WithCheckoutOpts(opts ...checkout.Opt) Opt {
	return func(s *Service) {
		s.checkoutOpts = append(s.checkoutOpts, opts...)
	}
}

// A Service is the storefront: the catalog shared by everyone plus one
// cart, wishlist and signed-in user per session.
//
// Sessions are independent actors. Calls for the same session are
// serialised, calls for different sessions run in parallel.
type Service struct {
	catalog      port.Catalog
	storage      port.SnapshotStorage
	auth         port.Authenticator
	checkout     checkout.Orchestrator
	checkoutOpts []checkout.Opt
	relatedCount int
	now          func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func New(
	catalog port.Catalog,
	storage port.SnapshotStorage,
	auth port.Authenticator,
	placer port.OrderPlacer,
	opts ...Opt,
) *Service {
	s := &Service{
		catalog:      catalog,
		storage:      storage,
		auth:         auth,
		relatedCount: defaultRelatedCount,
		now:          time.Now,
		sessions:     make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.checkout = checkout.New(placer, s.checkoutOpts...)
	return s
}

const defaultRelatedCount = catalog.DefaultRelatedCount

// NewSessionID returns a fresh opaque session id.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidSessionID reports whether sid could have been issued by
// [NewSessionID].
func ValidSessionID(sid string) bool {
	id, err := uuid.Parse(sid)
	return err == nil && id.Version() == 4 && id.String() == sid
}

// EvictIdle forgets sessions not used for maxIdle. Their carts and
// wishlists stay in the snapshot storage and are rehydrated on the next
// request, the signed-in user is not.
func (s *Service) EvictIdle(maxIdle time.Duration) int {
	const op = "Service.EvictIdle"

	deadline := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for sid, ss := range s.sessions {
		if !ss.mu.TryLock() {
			continue
		}
		if ss.lastSeen.Before(deadline) {
			ss.evicted = true
			delete(s.sessions, sid)
			n++
		}
		ss.mu.Unlock()
	}

	if n != 0 {
		slog.Debug("idle sessions evicted", "op", op, "count", n)
	}
	return n
}

// withSession runs fn holding the session lock. The session is created
// and its engines rehydrated on first use.
func (s *Service) withSession(
	ctx context.Context, sid string, fn func(*session) error,
) error {
	if !ValidSessionID(sid) {
		return ErrInvalidSession
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ss := s.lockSession(sid)
	defer ss.mu.Unlock()

	if ss.cart == nil {
		ss.cart = cart.New(ctx, s.storage, "cart/"+sid)
		ss.wishlist = wishlist.New(ctx, s.storage, "wishlist/"+sid)
	}
	ss.lastSeen = s.now()

	return fn(ss)
}

func (s *Service) lockSession(sid string) *session {
	for {
		s.mu.Lock()
		ss, ok := s.sessions[sid]
		if !ok {
			ss = new(session)
			s.sessions[sid] = ss
		}
		s.mu.Unlock()

		ss.mu.Lock()
		if !ss.evicted {
			return ss
		}
		ss.mu.Unlock()
	}
}
