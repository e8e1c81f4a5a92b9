package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/toko-checkout/internal/common"
)

// Handler exposes order history over HTTP.
type Handler struct {
	Svc *Service
}

// List handles GET /api/v1/orders.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	orders, err := h.Svc.List(r.Context(), owner)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusOK, orders)
}

// Get handles GET /api/v1/orders/{orderID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	view, err := h.Svc.Get(r.Context(), owner, chi.URLParam(r, "orderID"))
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusOK, view)
}
