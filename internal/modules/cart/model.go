package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/verdantliving/verdant-backend/internal/modules/catalog"
)

// LineItem is a catalog product copied into a cart together with the
// desired quantity. Identity is the product id: a cart holds at most one
// line per product, and a persisted quantity is always >= 1.
type LineItem struct {
	ProductID   int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Image       string          `json:"image,omitempty"`
	Rating      *float64        `json:"rating,omitempty"`
	IsEco       *bool           `json:"isEco,omitempty"`
	Quantity    int             `json:"quantity"`
}

func newLineItem(p catalog.Product, quantity int) LineItem {
	return LineItem{
		ProductID:   p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      p.Rating,
		IsEco:       p.IsEco,
		Quantity:    quantity,
	}
}

// Cart is the ordered line item sequence for one shopper session. Insertion
// order is preserved for display.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Totals are derived from the current line items on every read and never
// stored.
type Totals struct {
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
}

var (
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShippingRate      = decimal.NewFromInt(10)
)

// Totals computes the derived cart values. Orders above the free-shipping
// threshold ship free; so does an empty cart.
func (c Cart) Totals() Totals {
	subtotal := decimal.Zero
	count := 0
	for _, li := range c.Items {
		count += li.Quantity
		subtotal = subtotal.Add(li.Price.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}
	shipping := decimal.Zero
	if count > 0 && !subtotal.GreaterThan(freeShippingThreshold) {
		shipping = flatShippingRate
	}
	return Totals{
		TotalItems: count,
		Subtotal:   subtotal,
		Shipping:   shipping,
		Total:      subtotal.Add(shipping),
	}
}

// decodeItems rebuilds a persisted cart snapshot. There is no schema
// version on the wire, so unknown fields are ignored, records that fail to
// decode or lack a product id are dropped, and an out-of-range quantity is
// clamped. A snapshot that is not a JSON array at all degrades to an empty
// cart.
func decodeItems(data []byte) []LineItem {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	items := make([]LineItem, 0, len(raw))
	for _, rec := range raw {
		var li LineItem
		if err := json.Unmarshal(rec, &li); err != nil {
			continue
		}
		if li.ProductID == 0 {
			continue
		}
		if li.Quantity < 1 {
			li.Quantity = 1
		}
		items = append(items, li)
	}
	return items
}
