package checkout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/verdantliving/verdant-backend/internal/modules/cart"
)

// Service converts a cart snapshot into a hosted payment session. It never
// touches cart state: the cart is cleared only after the shopper comes back
// with a success status, not when the session is created.
type Service interface {
	CreateSession(ctx context.Context, items []cart.LineItem, returnURL string) (*Session, error)
}

type service struct{ gateway Gateway }

func NewService(gateway Gateway) Service { return &service{gateway: gateway} }

var minorUnits = decimal.NewFromInt(100)

func (s *service) CreateSession(ctx context.Context, items []cart.LineItem, returnURL string) (*Session, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := &SessionRequest{
		Items:      make([]SessionLine, 0, len(items)),
		SuccessURL: returnURL + "/checkout?status=success",
		CancelURL:  returnURL + "/checkout?status=cancel",
	}
	for _, li := range items {
		req.Items = append(req.Items, SessionLine{
			Name:       li.Title,
			Image:      li.Image,
			UnitAmount: li.Price.Mul(minorUnits).Round(0).IntPart(),
			Quantity:   li.Quantity,
		})
	}

	session, err := s.gateway.CreateSession(ctx, req)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	if session == nil || session.URL == "" {
		return nil, ErrMissingRedirect
	}
	return session, nil
}
