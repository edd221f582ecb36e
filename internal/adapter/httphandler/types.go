package httphandler

import (
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
)

type (
	Product struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Price        float64  `json:"price"`
		Image        string   `json:"image"`
		Category     string   `json:"category"`
		Collections  []string `json:"collections"`
		Colors       []string `json:"colors"`
		Sizes        []string `json:"sizes"`
		IsFeatured   bool     `json:"is_featured"`
		IsNew        bool     `json:"is_new"`
		IsBestSeller bool     `json:"is_best_seller"`
	}

	Category struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Slug  string `json:"slug"`
		Image string `json:"image"`
	}

	Collection struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	ProductDetail struct {
		Product Product   `json:"product"`
		Related []Product `json:"related"`
	}
)

type (
	FilterState struct {
		Category string  `json:"category"`
		Sort     string  `json:"sort"`
		PriceMin float64 `json:"price_min"`
		PriceMax float64 `json:"price_max"`
	}

	Listing struct {
		Filters  FilterState `json:"filters"`
		Query    string      `json:"query"`
		Total    int         `json:"total"`
		Products []Product   `json:"products"`
	}

	FilterChange struct {
		Action   string   `json:"action"`
		Category string   `json:"category"`
		Sort     string   `json:"sort"`
		PriceMin *float64 `json:"price_min"`
		PriceMax *float64 `json:"price_max"`
	}
)

type (
	Cart struct {
		Items      []domain.CartLineItem `json:"items"`
		TotalItems int                   `json:"total_items"`
		TotalPrice float64               `json:"total_price"`
	}

	AddCartItem struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  *int   `json:"quantity"`
	}

	// UpdateCartItem either sets the quantity or applies Op, one of
	// "increment" and "decrement".
	UpdateCartItem struct {
		Quantity *int   `json:"quantity"`
		Op       string `json:"op"`
	}
)

type (
	Wishlist struct {
		Items      []domain.WishlistItem `json:"items"`
		TotalItems int                   `json:"total_items"`
	}

	WishlistItemRef struct {
		ProductID string `json:"product_id"`
	}

	WishlistMembership struct {
		ProductID  string    `json:"product_id"`
		InWishlist bool      `json:"in_wishlist"`
		Wishlist   *Wishlist `json:"wishlist,omitempty"`
	}
)

type (
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	Register struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	Login struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
)

type (
	Shipping struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
		City      string `json:"city"`
		State     string `json:"state"`
		Zip       string `json:"zip"`
		Country   string `json:"country"`
	}

	Payment struct {
		Method     string `json:"method"`
		CardNumber string `json:"card_number"`
		CardName   string `json:"card_name"`
		Expiry     string `json:"expiry"`
		CVC        string `json:"cvc"`
	}

	CheckoutRequest struct {
		Shipping Shipping `json:"shipping"`
		Payment  Payment  `json:"payment"`
	}

	OrderConfirmation struct {
		OrderID    string    `json:"order_id"`
		Subtotal   float64   `json:"subtotal"`
		Tax        float64   `json:"tax"`
		Total      float64   `json:"total"`
		TotalItems int       `json:"total_items"`
		PlacedAt   time.Time `json:"placed_at"`
	}
)

type ErrorResponse struct {
	Error    string   `json:"error"`
	Fields   []string `json:"fields,omitempty"`
	LoginURL string   `json:"login_url,omitempty"`
}

func productFromDomain(p domain.Product) Product {
	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Image:        p.Image,
		Category:     p.Category,
		Collections:  nonNil(p.Collections),
		Colors:       nonNil(p.Colors),
		Sizes:        nonNil(p.Sizes),
		IsFeatured:   p.IsFeatured,
		IsNew:        p.IsNew,
		IsBestSeller: p.IsBestSeller,
	}
}

func productsFromDomain(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = productFromDomain(p)
	}
	return out
}

func listingFromService(l service.Listing) Listing {
	return Listing{
		Filters: FilterState{
			Category: l.State.Category,
			Sort:     string(l.State.Sort),
			PriceMin: l.State.PriceRange.Low,
			PriceMax: l.State.PriceRange.High,
		},
		Query:    l.Query.Encode(),
		Total:    len(l.Products),
		Products: productsFromDomain(l.Products),
	}
}

func cartFromService(v service.CartView) Cart {
	return Cart{
		Items:      nonNil(v.Items),
		TotalItems: v.TotalItems,
		TotalPrice: v.TotalPrice,
	}
}

func wishlistFromService(v service.WishlistView) Wishlist {
	return Wishlist{Items: nonNil(v.Items), TotalItems: v.TotalItems}
}

func userFromDomain(u domain.User) User {
	return User{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (s Shipping) toDomain() domain.ShippingInfo {
	return domain.ShippingInfo{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		Zip:       s.Zip,
		Country:   s.Country,
	}
}

func (p Payment) toDomain() domain.PaymentInfo {
	return domain.PaymentInfo{
		Method: domain.PaymentMethod(p.Method),
		Card: domain.CardInfo{
			Number: p.CardNumber,
			Name:   p.CardName,
			Expiry: p.Expiry,
			CVC:    p.CVC,
		},
	}
}

func confirmationFromDomain(c domain.OrderConfirmation) OrderConfirmation {
	return OrderConfirmation{
		OrderID:    c.OrderID,
		Subtotal:   c.Subtotal,
		Tax:        c.Tax,
		Total:      c.Total,
		TotalItems: c.TotalItems,
		PlacedAt:   c.PlacedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
