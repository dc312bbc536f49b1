package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service defines catalog read logic.
type Service interface {
	GetProduct(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	ListByCollection(ctx context.Context, collectionID string) ([]Product, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx, "")
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.repo.List(ctx, category)
}

var premiumFloor = decimal.NewFromInt(80)

// ListByCollection resolves a named merchandising collection. Unknown
// collection ids fall back to the full catalog.
func (s *service) ListByCollection(ctx context.Context, collectionID string) ([]Product, error) {
	all, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	switch collectionID {
	case "eco-friendly":
		var out []Product
		for _, p := range all {
			if p.IsEco != nil && *p.IsEco {
				out = append(out, p)
			}
		}
		return out, nil
	case "new-arrivals":
		if len(all) > 4 {
			all = all[:4]
		}
		return all, nil
	case "home-office":
		var out []Product
		for _, p := range all {
			if p.Category == "Furniture" || p.Category == "Home Decor" {
				out = append(out, p)
			}
		}
		return out, nil
	case "premium":
		var out []Product
		for _, p := range all {
			if p.Price.GreaterThan(premiumFloor) {
				out = append(out, p)
			}
		}
		return out, nil
	default:
		return all, nil
	}
}
