package catalog

import "github.com/shopspring/decimal"

// Product is an immutable record in the storefront catalog. The cart copies
// these fields at add time, so later catalog edits never rewrite a shopper's
// cart.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	Rating      *float64        `json:"rating,omitempty"`
	IsEco       *bool           `json:"isEco,omitempty"`
}
