package httphandler

import (
	"log/slog"
	"net/http"
)

// GET v1/wishlist (200 OK)
// POST v1/wishlist/items JSON WishlistItemRef (200 OK, 400, 404)
// POST v1/wishlist/toggle JSON WishlistItemRef (200 OK, 400, 404)
// GET v1/wishlist/items/{productID} (200 OK)
// DELETE v1/wishlist/items/{productID} (200 OK)

type WishlistHandler struct {
	svc WishlistService
}

func RegisterWishlist(mux *http.ServeMux, svc WishlistService) {
	h := WishlistHandler{svc}
	mux.HandleFunc("GET /v1/wishlist", h.Wishlist)
	mux.HandleFunc("POST /v1/wishlist/items", h.AddItem)
	mux.HandleFunc("POST /v1/wishlist/toggle", h.Toggle)
	mux.HandleFunc("GET /v1/wishlist/items/{productID}", h.Membership)
	mux.HandleFunc("DELETE /v1/wishlist/items/{productID}", h.RemoveItem)
}

func (h WishlistHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.Wishlist"
	log := slog.With("op", op)

	v, err := h.svc.Wishlist(r.Context(), SessionID(r.Context()))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, wishlistFromService(v))
}

func (h WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.AddItem"
	log := slog.With("op", op)

	productID, ok := h.decodeRef(w, r, log)
	if !ok {
		return
	}

	v, err := h.svc.AddToWishlist(r.Context(), SessionID(r.Context()), productID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, wishlistFromService(v))
}

func (h WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.Toggle"
	log := slog.With("op", op)

	productID, ok := h.decodeRef(w, r, log)
	if !ok {
		return
	}

	in, v, err := h.svc.ToggleWishlist(r.Context(), SessionID(r.Context()), productID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	wl := wishlistFromService(v)
	writeJSON(w, log, http.StatusOK, WishlistMembership{
		ProductID:  productID,
		InWishlist: in,
		Wishlist:   &wl,
	})
}

func (h WishlistHandler) Membership(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.Membership"
	log := slog.With("op", op)

	productID := r.PathValue("productID")
	in, err := h.svc.InWishlist(r.Context(), SessionID(r.Context()), productID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, WishlistMembership{
		ProductID:  productID,
		InWishlist: in,
	})
}

func (h WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.RemoveItem"
	log := slog.With("op", op)

	v, err := h.svc.RemoveFromWishlist(
		r.Context(), SessionID(r.Context()), r.PathValue("productID"),
	)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, wishlistFromService(v))
}

func (WishlistHandler) decodeRef(
	w http.ResponseWriter, r *http.Request, log *slog.Logger,
) (string, bool) {
	var req WishlistItemRef
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadJSON(w, log, err)
		return "", false
	}
	if req.ProductID == "" {
		writeMessage(w, log, http.StatusBadRequest, "product_id is required")
		return "", false
	}
	return req.ProductID, true
}
