package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/service"
)

// GET v1/cart (200 OK)
// POST v1/cart/items JSON AddCartItem (200 OK, 400, 404, 422)
// PATCH v1/cart/items/{lineID} JSON UpdateCartItem (200 OK, 400)
// DELETE v1/cart/items/{lineID} (200 OK)
// DELETE v1/cart (200 OK)
//
// Unknown line ids are accepted and leave the cart as is.

type CartHandler struct {
	svc CartService
}

func RegisterCart(mux *http.ServeMux, svc CartService) {
	h := CartHandler{svc}
	mux.HandleFunc("GET /v1/cart", h.Cart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PATCH /v1/cart/items/{lineID}", h.UpdateItem)
	mux.HandleFunc("DELETE /v1/cart/items/{lineID}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.Clear)
}

func (h CartHandler) Cart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.Cart"
	log := slog.With("op", op)

	v, err := h.svc.Cart(r.Context(), SessionID(r.Context()))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, cartFromService(v))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var req AddCartItem
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadJSON(w, log, err)
		return
	}
	if req.ProductID == "" {
		writeMessage(w, log, http.StatusBadRequest, "product_id is required")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	v, err := h.svc.AddToCart(
		r.Context(), SessionID(r.Context()),
		req.ProductID, req.Size, req.Color, quantity,
	)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, cartFromService(v))
}

func (h CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.UpdateItem"
	log := slog.With("op", op)

	var req UpdateCartItem
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadJSON(w, log, err)
		return
	}

	ctx, sid, lineID := r.Context(), SessionID(r.Context()), r.PathValue("lineID")

	var (
		v   service.CartView
		err error
	)
	switch {
	case req.Op == "" && req.Quantity != nil:
		v, err = h.svc.UpdateCartLine(ctx, sid, lineID, *req.Quantity)
	case req.Op == "increment" && req.Quantity == nil:
		v, err = h.svc.IncrementCartLine(ctx, sid, lineID)
	case req.Op == "decrement" && req.Quantity == nil:
		v, err = h.svc.DecrementCartLine(ctx, sid, lineID)
	default:
		writeMessage(w, log, http.StatusBadRequest,
			`either quantity or op ("increment", "decrement") is required`)
		return
	}
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, cartFromService(v))
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.RemoveItem"
	log := slog.With("op", op)

	v, err := h.svc.RemoveCartLine(
		r.Context(), SessionID(r.Context()), r.PathValue("lineID"),
	)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, cartFromService(v))
}

func (h CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.Clear"
	log := slog.With("op", op)

	v, err := h.svc.ClearCart(r.Context(), SessionID(r.Context()))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, cartFromService(v))
}
