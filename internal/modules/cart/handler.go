package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/verdantliving/verdant-backend/internal/modules/catalog"
	"github.com/verdantliving/verdant-backend/internal/modules/session"
)

// Handler exposes the session-scoped cart over HTTP.
type Handler struct {
	service Service
	catalog catalog.Service
}

func NewHandler(service Service, catalogService catalog.Service) *Handler {
	return &Handler{service: service, catalog: catalogService}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Delete("/", h.clearCart)
		r.Post("/items", h.addItem)
		r.Put("/items/{productID}", h.updateItem)
		r.Delete("/items/{productID}", h.removeItem)
	})
}

// addItemRequest adds a catalog product to the cart. Quantity defaults
// to 1.
type addItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// cartResponse is returned by every cart endpoint: the ordered items, the
// freshly derived totals and, for mutations, the user-visible notice.
type cartResponse struct {
	Items  []LineItem `json:"items"`
	Totals Totals     `json:"totals"`
	Notice *Notice    `json:"notice,omitempty"`
}

func newCartResponse(c Cart, t Totals, n Notice) cartResponse {
	resp := cartResponse{Items: c.Items, Totals: t}
	if n.Message != "" {
		resp.Notice = &n
	}
	return resp
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, t := h.service.GetCart(r.Context(), session.FromContext(r.Context()))
	respond(w, http.StatusOK, newCartResponse(c, t, Notice{}))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	c, t, n := h.service.AddToCart(r.Context(), session.FromContext(r.Context()), *product, req.Quantity)
	respond(w, http.StatusOK, newCartResponse(c, t, n))
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, t, n := h.service.UpdateQuantity(r.Context(), session.FromContext(r.Context()), productID, req.Quantity)
	respond(w, http.StatusOK, newCartResponse(c, t, n))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	c, t, n := h.service.RemoveFromCart(r.Context(), session.FromContext(r.Context()), productID)
	respond(w, http.StatusOK, newCartResponse(c, t, n))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	c, t, n := h.service.ClearCart(r.Context(), session.FromContext(r.Context()))
	respond(w, http.StatusOK, newCartResponse(c, t, n))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
