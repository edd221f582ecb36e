package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/internal/core/wishlist"
)

const maxBodyBytes = 1 << 16

type CatalogService interface {
	ListProducts(q url.Values) service.Listing
	ChangeFilter(q url.Values, c service.FilterChange) (service.Listing, error)
	Product(id string) (service.ProductDetail, error)
	Categories() []domain.Category
	Collections() []domain.Collection
	Featured() []domain.Product
	NewArrivals() []domain.Product
	BestSellers() []domain.Product
}

type CartService interface {
	Cart(ctx context.Context, sid string) (service.CartView, error)
	AddToCart(ctx context.Context, sid, productID, size, color string, quantity int) (service.CartView, error)
	UpdateCartLine(ctx context.Context, sid, lineID string, quantity int) (service.CartView, error)
	IncrementCartLine(ctx context.Context, sid, lineID string) (service.CartView, error)
	DecrementCartLine(ctx context.Context, sid, lineID string) (service.CartView, error)
	RemoveCartLine(ctx context.Context, sid, lineID string) (service.CartView, error)
	ClearCart(ctx context.Context, sid string) (service.CartView, error)
}

type WishlistService interface {
	Wishlist(ctx context.Context, sid string) (service.WishlistView, error)
	AddToWishlist(ctx context.Context, sid, productID string) (service.WishlistView, error)
	RemoveFromWishlist(ctx context.Context, sid, productID string) (service.WishlistView, error)
	ToggleWishlist(ctx context.Context, sid, productID string) (bool, service.WishlistView, error)
	InWishlist(ctx context.Context, sid, productID string) (bool, error)
}

type AccountService interface {
	Register(ctx context.Context, sid, name, email, password string) (domain.User, error)
	Login(ctx context.Context, sid, email, password string) (domain.User, error)
	Logout(ctx context.Context, sid string) error
	CurrentUser(ctx context.Context, sid string) (domain.User, bool, error)
}

type CheckoutService interface {
	Checkout(
		ctx context.Context,
		sid string,
		shipping domain.ShippingInfo,
		payment domain.PaymentInfo,
	) (domain.OrderConfirmation, error)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func writeMessage(w http.ResponseWriter, log *slog.Logger, status int, msg string) {
	writeJSON(w, log, status, ErrorResponse{Error: msg})
}

func writeBadJSON(w http.ResponseWriter, log *slog.Logger, err error) {
	log.Warn("failed to parse JSON", "err", err)
	writeMessage(w, log, http.StatusBadRequest, "invalid JSON data")
}

// writeError maps a use case error to a response. Server side failures
// are logged and answered without details.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "err", err)
		writeMessage(w, log, status, http.StatusText(status))
		return
	}
	log.Debug("request rejected", "status", status, "err", err)
	writeMessage(w, log, status, clientMessage(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidOption),
		errors.Is(err, service.ErrUnknownFilterAction),
		errors.Is(err, domain.ErrInvalidUserData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidSession):
		return http.StatusBadRequest
	case errors.Is(err, cart.ErrPersist),
		errors.Is(err, wishlist.ErrPersist),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage returns the innermost known error text, without the op
// chain.
func clientMessage(err error) string {
	for _, known := range []error{
		domain.ErrProductNotFound,
		domain.ErrInvalidCredentials,
		domain.ErrEmailTaken,
		service.ErrInvalidSession,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	details := []error{
		domain.ErrInvalidUserData,
		service.ErrInvalidOption,
		service.ErrUnknownFilterAction,
	}
	for {
		next := errors.Unwrap(err)
		if next == nil || slices.Contains(details, next) || !isAnyOf(next, details) {
			return err.Error()
		}
		err = next
	}
}

func isAnyOf(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
