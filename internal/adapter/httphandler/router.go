package httphandler

import "net/http"

type Storefront interface {
	CatalogService
	CartService
	WishlistService
	AccountService
	CheckoutService
}

// NewRouter registers the storefront API. Every request runs inside a
// session and JSON bodies only are accepted.
func NewRouter(svc Storefront, sessions SessionConfig) http.Handler {
	mux := http.NewServeMux()
	RegisterCatalog(mux, svc)
	RegisterCart(mux, svc)
	RegisterWishlist(mux, svc)
	RegisterAccount(mux, svc)
	RegisterCheckout(mux, svc)

	return AllowJSON(Sessions(sessions)(mux))
}
