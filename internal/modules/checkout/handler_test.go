package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantliving/verdant-backend/internal/modules/cart"
	"github.com/verdantliving/verdant-backend/internal/modules/catalog"
	"github.com/verdantliving/verdant-backend/internal/modules/session"
)

type noopNotifier struct{}

func (noopNotifier) Notify(cart.Notice) {}

func fixedSession(sessionID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sessionID)))
		})
	}
}

func newTestStack(gw Gateway) (*chi.Mux, cart.Service) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	router := chi.NewRouter()
	router.Use(fixedSession("shopper-1"))

	carts := cart.NewService(cart.NewMemoryStore(), noopNotifier{}, log)
	NewHandler(NewService(gw), carts).RegisterRoutes(router)
	return router, carts
}

func seedCart(carts cart.Service) {
	isEco := true
	rating := 4.8
	carts.AddToCart(context.Background(), "shopper-1", catalog.Product{
		ID:       1,
		Title:    "Minimalist Wooden Chair",
		Price:    decimal.RequireFromString("249.99"),
		Category: "Furniture",
		IsEco:    &isEco,
		Rating:   &rating,
	}, 1)
}

func postSession(router *chi.Mux, returnURL string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(createSessionRequest{ReturnURL: returnURL})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/session", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateSessionEndpoint(t *testing.T) {
	gw := &fakeGateway{session: &Session{ID: "cs_9", URL: "https://pay.example/cs_9"}}
	router, carts := newTestStack(gw)
	seedCart(carts)

	rec := postSession(router, "https://shop.example")
	require.Equal(t, http.StatusOK, rec.Code)

	var sess Session
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sess))
	assert.Equal(t, "https://pay.example/cs_9", sess.URL)

	// creating the session must not touch the cart
	c, _ := carts.GetCart(context.Background(), "shopper-1")
	assert.Len(t, c.Items, 1)
}

func TestCreateSessionEndpointEmptyCart(t *testing.T) {
	gw := &fakeGateway{}
	router, _ := newTestStack(gw)

	rec := postSession(router, "https://shop.example")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, gw.calls)
}

func TestCreateSessionEndpointMissingReturnURL(t *testing.T) {
	router, carts := newTestStack(&fakeGateway{})
	seedCart(carts)

	rec := postSession(router, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSessionEndpointProviderFailure(t *testing.T) {
	gw := &fakeGateway{err: context.DeadlineExceeded}
	router, carts := newTestStack(gw)
	seedCart(carts)

	rec := postSession(router, "https://shop.example")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func getReturn(router *chi.Mux, status string) *httptest.ResponseRecorder {
	target := "/api/v1/checkout/return"
	if status != "" {
		target += "?status=" + status
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestReturnSuccessClearsCart(t *testing.T) {
	router, carts := newTestStack(&fakeGateway{})
	seedCart(carts)

	rec := getReturn(router, "success")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp returnStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "completed", resp.Status)

	c, totals := carts.GetCart(context.Background(), "shopper-1")
	assert.Empty(t, c.Items)
	assert.Equal(t, 0, totals.TotalItems)
}

func TestReturnCancelKeepsCart(t *testing.T) {
	router, carts := newTestStack(&fakeGateway{})
	seedCart(carts)

	rec := getReturn(router, "cancel")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp returnStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "cancelled", resp.Status)

	c, _ := carts.GetCart(context.Background(), "shopper-1")
	assert.Len(t, c.Items, 1)
}

func TestReturnUnknownStatusIsPending(t *testing.T) {
	router, carts := newTestStack(&fakeGateway{})
	seedCart(carts)

	for _, status := range []string{"", "weird"} {
		rec := getReturn(router, status)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp returnStatus
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "pending", resp.Status)
	}

	c, _ := carts.GetCart(context.Background(), "shopper-1")
	assert.Len(t, c.Items, 1)
}
