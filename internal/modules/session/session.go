// Package session scopes cart state to one anonymous shopper. A signed
// cookie carries a random session id; there are no accounts or passwords
// behind it, so two browsers never see each other's cart.
package session

import "context"

type ctxKey struct{}

// NewContext returns a context carrying the shopper session id.
func NewContext(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// FromContext returns the shopper session id set by Middleware, or "" when
// the request never passed through it.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
