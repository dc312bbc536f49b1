package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

type memoryRepo struct{ products []Product }

// NewMemoryRepository returns a repository serving the built-in sample
// catalog. Used when no DATABASE_URL is configured.
func NewMemoryRepository() Repository {
	return &memoryRepo{products: sampleProducts()}
}

func (r *memoryRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepo) List(ctx context.Context, category string) ([]Product, error) {
	if category == "" {
		out := make([]Product, len(r.products))
		copy(out, r.products)
		return out, nil
	}
	var out []Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptrFloat(f float64) *float64 { return &f }

func ptrBool(b bool) *bool { return &b }

func sampleProducts() []Product {
	return []Product{
		{
			ID:          1,
			Title:       "Minimalist Wooden Chair",
			Price:       price("249.99"),
			Description: "A beautifully crafted minimalist wooden chair made from sustainable oak. Perfect for any modern home or office space.",
			Category:    "Furniture",
			Image:       "https://images.unsplash.com/photo-1592078615290-033ee584e267?w=500&q=80",
			Rating:      ptrFloat(4.8),
			IsEco:       ptrBool(true),
		},
		{
			ID:          2,
			Title:       "Natural Cotton Throw Pillow",
			Price:       price("39.99"),
			Description: "Add comfort and style to your living space with our natural cotton throw pillows. Made from 100% organic cotton.",
			Category:    "Home Decor",
			Image:       "https://images.unsplash.com/photo-1579656381439-47fdad71406e?w=500&q=80",
			Rating:      ptrFloat(4.7),
			IsEco:       ptrBool(true),
		},
		{
			ID:          3,
			Title:       "Ceramic Pour-Over Coffee Maker",
			Price:       price("64.99"),
			Description: "Brew the perfect cup of coffee with our elegant ceramic pour-over coffee maker. Designed for optimal extraction and flavor.",
			Category:    "Kitchen",
			Image:       "https://images.unsplash.com/photo-1571489528490-146aeb745b10?w=500&q=80",
			Rating:      ptrFloat(4.9),
			IsEco:       ptrBool(false),
		},
		{
			ID:          4,
			Title:       "Handcrafted Ceramic Vase",
			Price:       price("89.99"),
			Description: "Each vase is individually handcrafted by skilled artisans, making each piece unique. Perfect for displaying fresh or dried flowers.",
			Category:    "Home Decor",
			Image:       "https://images.unsplash.com/photo-1612196808214-5991979749a1?w=500&q=80",
			Rating:      ptrFloat(4.6),
			IsEco:       ptrBool(true),
		},
		{
			ID:          5,
			Title:       "Bamboo Toothbrush Set",
			Price:       price("12.99"),
			Description: "Eco-friendly alternative to plastic toothbrushes. Made from sustainably harvested bamboo with soft bristles.",
			Category:    "Bathroom",
			Image:       "https://images.unsplash.com/photo-1607613009820-a29f7bb81c04?w=500&q=80",
			Rating:      ptrFloat(4.5),
			IsEco:       ptrBool(true),
		},
		{
			ID:          6,
			Title:       "Linen Bedding Set",
			Price:       price("199.99"),
			Description: "Luxurious 100% linen bedding set that gets softer with every wash. Includes duvet cover and two pillowcases.",
			Category:    "Bedroom",
			Image:       "https://images.unsplash.com/photo-1614366559478-edf9d1cc4289?w=500&q=80",
			Rating:      ptrFloat(4.9),
			IsEco:       ptrBool(true),
		},
		{
			ID:          7,
			Title:       "Wall Clock Modern Design",
			Price:       price("59.99"),
			Description: "Minimalist wall clock with a sleek design. Silent mechanism ensures no ticking noise.",
			Category:    "Home Decor",
			Image:       "https://images.unsplash.com/photo-1538688525198-9b88f6f53126?w=500&q=80",
			Rating:      ptrFloat(4.2),
			IsEco:       ptrBool(false),
		},
		{
			ID:          8,
			Title:       "Handmade Soap Set",
			Price:       price("24.99"),
			Description: "Artisanal soaps made with natural ingredients and essential oils. Set of four different scents.",
			Category:    "Bathroom",
			Image:       "https://images.unsplash.com/photo-1600857544200-b2f666a9a2ec?w=500&q=80",
			Rating:      ptrFloat(4.7),
			IsEco:       ptrBool(true),
		},
	}
}
