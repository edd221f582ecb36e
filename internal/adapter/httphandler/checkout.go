package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/checkout"
)

// POST v1/checkout JSON CheckoutRequest
// (201 Created, 400, 401 with login_url, 409 empty cart, 422 with fields, 503)

type CheckoutHandler struct {
	svc CheckoutService
}

func RegisterCheckout(mux *http.ServeMux, svc CheckoutService) {
	h := CheckoutHandler{svc}
	mux.HandleFunc("POST /v1/checkout", h.Checkout)
}

func (h CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Checkout"
	log := slog.With("op", op)

	var req CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadJSON(w, log, err)
		return
	}

	c, err := h.svc.Checkout(
		r.Context(), SessionID(r.Context()),
		req.Shipping.toDomain(), req.Payment.toDomain(),
	)

	var verr *checkout.ValidationError
	switch {
	case err == nil:
		writeJSON(w, log, http.StatusCreated, confirmationFromDomain(c))
	case errors.Is(err, checkout.ErrUnauthenticated):
		writeJSON(w, log, http.StatusUnauthorized, ErrorResponse{
			Error:    checkout.ErrUnauthenticated.Error(),
			LoginURL: checkout.LoginURL,
		})
	case errors.Is(err, checkout.ErrEmptyCart):
		writeMessage(w, log, http.StatusConflict, "Your cart is empty")
	case errors.As(err, &verr):
		writeJSON(w, log, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  verr.Error(),
			Fields: verr.Fields,
		})
	default:
		log.Error("failed to place order", "err", err)
		writeMessage(w, log, http.StatusServiceUnavailable,
			"failed to place order, please try again")
	}
}
