package domain

type WishlistItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
	IsNew bool    `json:"is_new"`
}

func WishlistItemFromProduct(p Product) WishlistItem {
	return WishlistItem{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
		IsNew: p.IsNew,
	}
}
