package cart

import "context"

// Store persists cart snapshots keyed by shopper session. Load returns
// nil items (not an error) for a session that has never saved a cart.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]LineItem, error)
	Save(ctx context.Context, sessionID string, items []LineItem) error
	Delete(ctx context.Context, sessionID string) error
}
