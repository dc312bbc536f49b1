package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/verdantliving/verdant-backend/internal/modules/catalog"
)

// Service owns all cart state for active shopper sessions. Every mutation
// updates the in-memory cart first and then writes through to the Store,
// so a read immediately after a mutation always sees the new state. A
// failed store write is logged and swallowed: the session keeps working on
// the in-memory copy.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (Cart, Totals)
	AddToCart(ctx context.Context, sessionID string, product catalog.Product, quantity int) (Cart, Totals, Notice)
	RemoveFromCart(ctx context.Context, sessionID string, productID int) (Cart, Totals, Notice)
	UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (Cart, Totals, Notice)
	ClearCart(ctx context.Context, sessionID string) (Cart, Totals, Notice)
}

type service struct {
	store    Store
	notifier Notifier
	log      *logrus.Logger

	mu    sync.Mutex
	carts map[string][]LineItem
}

func NewService(store Store, notifier Notifier, log *logrus.Logger) Service {
	return &service{
		store:    store,
		notifier: notifier,
		log:      log,
		carts:    make(map[string][]LineItem),
	}
}

// items returns the authoritative line items for a session, rehydrating
// from the store on first access. A rehydration failure starts the session
// empty, never errors. Caller must hold s.mu.
func (s *service) items(ctx context.Context, sessionID string) []LineItem {
	if cur, ok := s.carts[sessionID]; ok {
		return cur
	}
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.log.WithError(err).WithField("session", sessionID).
			Warn("cart rehydration failed, starting empty")
		items = nil
	}
	s.carts[sessionID] = items
	return items
}

// persist writes through after a mutation. Failures are non-fatal for the
// session. Caller must hold s.mu.
func (s *service) persist(ctx context.Context, sessionID string, items []LineItem) {
	if err := s.store.Save(ctx, sessionID, items); err != nil {
		s.log.WithError(err).WithField("session", sessionID).
			Warn("cart persistence failed, continuing in memory")
	}
}

func snapshot(items []LineItem) Cart {
	out := make([]LineItem, len(items))
	copy(out, items)
	return Cart{Items: out}
}

func (s *service) notify(n Notice) Notice {
	if n.Message != "" {
		s.notifier.Notify(n)
	}
	return n
}

func (s *service) GetCart(ctx context.Context, sessionID string) (Cart, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := snapshot(s.items(ctx, sessionID))
	return cart, cart.Totals()
}

func (s *service) AddToCart(ctx context.Context, sessionID string, product catalog.Product, quantity int) (Cart, Totals, Notice) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items(ctx, sessionID)
	var notice Notice
	found := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity += quantity
			notice = Notice{Level: NoticeSuccess, Message: fmt.Sprintf("Updated quantity for %s", product.Title)}
			found = true
			break
		}
	}
	if !found {
		items = append(items, newLineItem(product, quantity))
		notice = Notice{Level: NoticeSuccess, Message: fmt.Sprintf("Added %s to your cart", product.Title)}
	}

	s.carts[sessionID] = items
	s.persist(ctx, sessionID, items)
	cart := snapshot(items)
	return cart, cart.Totals(), s.notify(notice)
}

func (s *service) RemoveFromCart(ctx context.Context, sessionID string, productID int) (Cart, Totals, Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items(ctx, sessionID)
	var notice Notice
	kept := items[:0]
	for _, li := range items {
		if li.ProductID == productID {
			notice = Notice{Level: NoticeInfo, Message: fmt.Sprintf("Removed %s from your cart", li.Title)}
			continue
		}
		kept = append(kept, li)
	}
	items = kept

	s.carts[sessionID] = items
	s.persist(ctx, sessionID, items)
	cart := snapshot(items)
	return cart, cart.Totals(), s.notify(notice)
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (Cart, Totals, Notice) {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, sessionID, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items(ctx, sessionID)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}

	s.carts[sessionID] = items
	s.persist(ctx, sessionID, items)
	cart := snapshot(items)
	return cart, cart.Totals(), Notice{}
}

func (s *service) ClearCart(ctx context.Context, sessionID string) (Cart, Totals, Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := []LineItem{}
	s.carts[sessionID] = items
	s.persist(ctx, sessionID, items)
	cart := snapshot(items)
	notice := Notice{Level: NoticeInfo, Message: "Cart has been cleared"}
	return cart, cart.Totals(), s.notify(notice)
}
