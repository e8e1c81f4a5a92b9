package checkout

import (
	"net/http"

	"github.com/noah-isme/toko-checkout/internal/common"
)

// Handler exposes checkout over HTTP.
type Handler struct {
	Svc *Service
}

// Checkout handles POST /api/v1/checkout.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var req Request
	if err := common.Decode(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	res, err := h.Svc.Checkout(r.Context(), owner, req)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusCreated, res)
}
