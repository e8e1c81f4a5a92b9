package cart

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/toko-checkout/internal/common"
)

// Handler wires cart services to HTTP.
type Handler struct {
	Svc *Service
}

type itemsRequest struct {
	Items []Item `json:"items" validate:"required"`
}

// Get handles GET /api/v1/cart.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	view, err := h.Svc.View(r.Context(), owner)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusOK, view)
}

// Replace handles PUT /api/v1/cart.
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.Svc.Replace)
}

// Merge handles POST /api/v1/cart/merge.
func (h *Handler) Merge(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.Svc.Merge)
}

// Clear handles DELETE /api/v1/cart.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.Svc.Clear(r.Context(), owner); err != nil {
		common.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, op func(context.Context, pgtype.UUID, []Item) (View, error)) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var req itemsRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	view, err := op(r.Context(), owner, req.Items)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusOK, view)
}
