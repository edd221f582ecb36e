package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
)

// GET v1/products?category&sort&price_min&price_max&filter&collection (200 OK)
// POST v1/products/filter?<current query> JSON FilterChange (200 OK, 400, 422)
// GET v1/products/{id} (200 OK, 404 Not found)
// GET v1/categories, v1/collections, v1/featured, v1/new-arrivals, v1/best-sellers (200 OK)

type CatalogHandler struct {
	svc CatalogService
}

func RegisterCatalog(mux *http.ServeMux, svc CatalogService) {
	h := CatalogHandler{svc}
	mux.HandleFunc("GET /v1/products", h.ListProducts)
	mux.HandleFunc("POST /v1/products/filter", h.ChangeFilter)
	mux.HandleFunc("GET /v1/products/{id}", h.Product)
	mux.HandleFunc("GET /v1/categories", h.Categories)
	mux.HandleFunc("GET /v1/collections", h.Collections)
	mux.HandleFunc("GET /v1/featured", h.selection(svc.Featured))
	mux.HandleFunc("GET /v1/new-arrivals", h.selection(svc.NewArrivals))
	mux.HandleFunc("GET /v1/best-sellers", h.selection(svc.BestSellers))
}

func (h CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ListProducts"
	log := slog.With("op", op)

	l := h.svc.ListProducts(r.URL.Query())
	writeJSON(w, log, http.StatusOK, listingFromService(l))
}

func (h CatalogHandler) ChangeFilter(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ChangeFilter"
	log := slog.With("op", op)

	var req FilterChange
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadJSON(w, log, err)
		return
	}

	change := service.FilterChange{
		Action:     service.FilterAction(req.Action),
		Category:   req.Category,
		Sort:       domain.SortOption(req.Sort),
		PriceRange: domain.DefaultPriceRange(),
	}
	if req.PriceMin != nil {
		change.PriceRange.Low = *req.PriceMin
	}
	if req.PriceMax != nil {
		change.PriceRange.High = *req.PriceMax
	}

	l, err := h.svc.ChangeFilter(r.URL.Query(), change)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, listingFromService(l))
}

func (h CatalogHandler) Product(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.Product"
	log := slog.With("op", op)

	d, err := h.svc.Product(r.PathValue("id"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, ProductDetail{
		Product: productFromDomain(d.Product),
		Related: productsFromDomain(d.Related),
	})
}

func (h CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.Categories"
	log := slog.With("op", op)

	cs := h.svc.Categories()
	out := make([]Category, len(cs))
	for i, c := range cs {
		out[i] = Category{ID: c.ID, Name: c.Name, Slug: c.Slug, Image: c.Image}
	}
	writeJSON(w, log, http.StatusOK, out)
}

func (h CatalogHandler) Collections(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.Collections"
	log := slog.With("op", op)

	cs := h.svc.Collections()
	out := make([]Collection, len(cs))
	for i, c := range cs {
		out[i] = Collection{ID: c.ID, Name: c.Name, Slug: c.Slug}
	}
	writeJSON(w, log, http.StatusOK, out)
}

func (h CatalogHandler) selection(
	list func() []domain.Product,
) http.HandlerFunc {
	const op = "CatalogHandler.selection"
	return func(w http.ResponseWriter, r *http.Request) {
		log := slog.With("op", op, "path", r.URL.Path)
		writeJSON(w, log, http.StatusOK, productsFromDomain(list()))
	}
}
