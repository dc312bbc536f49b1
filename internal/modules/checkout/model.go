package checkout

import "errors"

// Session is the provider-issued checkout session the shopper is redirected
// to.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionLine is one purchasable line sent to the payment provider.
// UnitAmount is the unit price in minor currency units (cents), rounded
// half-up from the catalog price.
type SessionLine struct {
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	UnitAmount int64  `json:"unit_amount"`
	Quantity   int    `json:"quantity"`
}

// SessionRequest is the payload delivered to the payment-session boundary.
// The success and cancel URLs are the two return targets the provider
// redirects to after the hosted payment flow.
type SessionRequest struct {
	Items      []SessionLine `json:"items"`
	SuccessURL string        `json:"success_url"`
	CancelURL  string        `json:"cancel_url"`
}

var (
	// ErrEmptyCart rejects a checkout attempt with no items before any
	// network call is made.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingRedirect reports a provider success response that carried
	// no usable redirect URL.
	ErrMissingRedirect = errors.New("payment provider returned no redirect url")
)

// ProviderError reports a reachable payment boundary that rejected or
// failed the session request. It is never retried automatically; a retry
// is a fresh user-initiated call.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return "payment provider error: " + e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }
