package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/verdantliving/verdant-backend/internal/modules/cart"
	"github.com/verdantliving/verdant-backend/internal/modules/session"
)

// Handler exposes checkout session creation and the post-payment return
// hop.
type Handler struct {
	service Service
	carts   cart.Service
}

func NewHandler(service Service, carts cart.Service) *Handler {
	return &Handler{service: service, carts: carts}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Post("/session", h.createSession)
		r.Get("/return", h.handleReturn)
	})
}

type createSessionRequest struct {
	ReturnURL string `json:"return_url"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ReturnURL == "" {
		http.Error(w, "return_url is required", http.StatusBadRequest)
		return
	}

	c, _ := h.carts.GetCart(r.Context(), session.FromContext(r.Context()))
	sess, err := h.service.CreateSession(r.Context(), c.Items, req.ReturnURL)
	if errors.Is(err, ErrEmptyCart) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		// ProviderError and ErrMissingRedirect both surface to the shopper
		// as a retryable upstream failure.
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	respond(w, http.StatusOK, sess)
}

// returnStatus reports where the shopper landed after the hosted payment
// flow: completed clears the cart, cancelled keeps it, anything else is
// still mid-flow.
type returnStatus struct {
	Status string `json:"status"`
}

func (h *Handler) handleReturn(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("status") {
	case "success":
		h.carts.ClearCart(r.Context(), session.FromContext(r.Context()))
		respond(w, http.StatusOK, returnStatus{Status: "completed"})
	case "cancel":
		respond(w, http.StatusOK, returnStatus{Status: "cancelled"})
	default:
		respond(w, http.StatusOK, returnStatus{Status: "pending"})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
