package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product does not exist in the catalog.
var ErrNotFound = errors.New("product not found")

// Repository defines read-only access to product records.
type Repository interface {
	GetByID(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context, category string) ([]Product, error)
}
