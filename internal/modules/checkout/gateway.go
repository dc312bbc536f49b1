package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Gateway is the payment-session boundary. Implementations create a hosted
// payment session and return where to redirect the shopper. To swap
// providers, implement this interface.
type Gateway interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
}

// httpGateway posts session requests to an external payment-session
// endpoint. The endpoint responds {id, url} on success and {error} with a
// non-2xx status on failure.
type httpGateway struct {
	endpoint  string
	secretKey string
	client    *http.Client
}

func NewHTTPGateway(endpoint, secretKey string) Gateway {
	return &httpGateway{endpoint: endpoint, secretKey: secretKey, client: http.DefaultClient}
}

func (g *httpGateway) CreateSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encode session request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build session request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.secretKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.secretKey)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "call payment boundary")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return nil, errors.Errorf("payment boundary returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, errors.Errorf("payment boundary returned %d", resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, errors.Wrap(err, "decode session response")
	}
	return &session, nil
}
