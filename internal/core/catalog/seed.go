package catalog

import "github.com/niksmo/storefront/internal/core/domain"

const imageParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&q=80"

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + imageParams
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Name:        "Pulse Wave Hoodie",
			Description: "Ultra-comfortable oversized hoodie with vibrant gradient print. Made from premium cotton blend for maximum comfort and durability.",
			Price:       89.99,
			Image:       unsplash("photo-1556821840-3a63f95609a7"),
			Category:    "hoodies",
			Collections: []string{"summer", "essentials"},
			Colors:      []string{"#9b87f5", "#f472b6", "#000000"},
			Sizes:       []string{"S", "M", "L", "XL"},
			IsFeatured:  true,
			IsNew:       true,
		},
		{
			ID:           "p2",
			Name:         "Digital Pulse Tee",
			Description:  "Minimalist design with digital artwork print. Made from 100% organic cotton for breathability and softness.",
			Price:        39.99,
			Image:        unsplash("photo-1576566588028-4147f3842f27"),
			Category:     "t-shirts",
			Collections:  []string{"essentials", "graphic"},
			Colors:       []string{"#ffffff", "#000000", "#7dd3fc"},
			Sizes:        []string{"S", "M", "L", "XL", "XXL"},
			IsBestSeller: true,
		},
		{
			ID:          "p3",
			Name:        "Horizon Oversized Jacket",
			Description: "Lightweight technical jacket with futuristic design. Water-resistant and perfect for layering in all seasons.",
			Price:       129.99,
			Image:       unsplash("photo-1591047139829-d91aecb6caea"),
			Category:    "jackets",
			Collections: []string{"outerwear", "premium"},
			Colors:      []string{"#000000", "#7dd3fc", "#9b87f5"},
			Sizes:       []string{"S", "M", "L", "XL"},
			IsFeatured:  true,
			IsNew:       true,
		},
		{
			ID:           "p4",
			Name:         "Nebula Cargo Pants",
			Description:  "Utility-inspired design with multiple pockets and comfortable fit. Made from durable cotton twill with slight stretch for mobility.",
			Price:        84.99,
			Image:        unsplash("photo-1473966968600-fa801b869a1a"),
			Category:     "pants",
			Collections:  []string{"essentials", "streetwear"},
			Colors:       []string{"#000000", "#94a3b8", "#d8b4fe"},
			Sizes:        []string{"28", "30", "32", "34", "36"},
			IsBestSeller: true,
		},
		{
			ID:           "p5",
			Name:         "Synth Beanie",
			Description:  "Ribbed knit beanie with embroidered logo. Perfect for adding a finishing touch to any outfit.",
			Price:        29.99,
			Image:        unsplash("photo-1576871337632-b9aef4c17ab9"),
			Category:     "accessories",
			Collections:  []string{"essentials", "winter"},
			Colors:       []string{"#000000", "#9b87f5", "#f472b6"},
			Sizes:        []string{"One Size"},
			IsBestSeller: true,
		},
		{
			ID:          "p6",
			Name:        "Echo Platform Sneakers",
			Description: "Chunky platform sneakers with gradient sole. Combines comfort with bold style for a statement look.",
			Price:       119.99,
			Image:       unsplash("photo-1608231387042-66d1773070a5"),
			Category:    "shoes",
			Collections: []string{"footwear", "premium"},
			Colors:      []string{"#ffffff", "#000000", "#d8b4fe"},
			Sizes:       []string{"US 7", "US 8", "US 9", "US 10", "US 11"},
			IsFeatured:  true,
		},
		{
			ID:          "p7",
			Name:        "Matrix Crossbody Bag",
			Description: "Compact utility bag with multiple compartments. Waterproof and perfect for carrying essentials on the go.",
			Price:       54.99,
			Image:       unsplash("photo-1600857062241-98c0cc523c11"),
			Category:    "accessories",
			Collections: []string{"accessories", "streetwear"},
			Colors:      []string{"#000000", "#9b87f5"},
			Sizes:       []string{"One Size"},
			IsNew:       true,
		},
		{
			ID:           "p8",
			Name:         "Prism Oversized Sweater",
			Description:  "Luxurious knit sweater with unique texture and relaxed fit. Perfect for comfort without sacrificing style.",
			Price:        79.99,
			Image:        unsplash("photo-1624623278313-a930126a11c3"),
			Category:     "sweaters",
			Collections:  []string{"winter", "essentials"},
			Colors:       []string{"#d8b4fe", "#7dd3fc", "#94a3b8"},
			Sizes:        []string{"S", "M", "L", "XL"},
			IsBestSeller: true,
		},
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "cat1", Name: "Hoodies & Sweatshirts", Slug: "hoodies", Image: unsplash("photo-1572495641004-28421ae29ed4")},
		{ID: "cat2", Name: "T-Shirts", Slug: "t-shirts", Image: unsplash("photo-1586790170083-2f9ceadc732d")},
		{ID: "cat3", Name: "Jackets", Slug: "jackets", Image: unsplash("photo-1551028719-00167b16eac5")},
		{ID: "cat4", Name: "Pants", Slug: "pants", Image: unsplash("photo-1541099649105-f69ad21f3246")},
		{ID: "cat5", Name: "Accessories", Slug: "accessories", Image: unsplash("photo-1563903530908-afdd155d057a")},
		{ID: "cat6", Name: "Shoes", Slug: "shoes", Image: unsplash("photo-1560769629-975ec94e6a86")},
	}
}

func seedCollections() []domain.Collection {
	return []domain.Collection{
		{ID: "col1", Name: "Summer Essentials", Slug: "summer"},
		{ID: "col2", Name: "Winter Warmers", Slug: "winter"},
		{ID: "col3", Name: "Streetwear", Slug: "streetwear"},
		{ID: "col4", Name: "Premium Collection", Slug: "premium"},
	}
}
