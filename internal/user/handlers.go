package user

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/toko-checkout/internal/common"
)

// Handler exposes the profile endpoints under /api/v1/profile.
type Handler struct {
	Service *Service
}

// ListAddresses handles GET /api/v1/profile/addresses.
func (h *Handler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	addresses, err := h.Service.ListAddresses(r.Context(), owner)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusOK, addresses)
}

// CreateAddress handles POST /api/v1/profile/addresses.
func (h *Handler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var req AddressInput
	if err := common.Decode(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	address, err := h.Service.CreateAddress(r.Context(), owner, req)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusCreated, address)
}

// SetDefaultAddress handles PATCH /api/v1/profile/addresses/{id}/default.
func (h *Handler) SetDefaultAddress(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	address, err := h.Service.SetDefaultAddress(r.Context(), owner, id)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusOK, address)
}

// DeleteAddress handles DELETE /api/v1/profile/addresses/{id}.
func (h *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.Service.DeleteAddress(r.Context(), owner, id); err != nil {
		common.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPaymentMethods handles GET /api/v1/profile/payment-methods.
func (h *Handler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	methods, err := h.Service.ListPaymentMethods(r.Context(), owner)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusOK, methods)
}

// CreatePaymentMethod handles POST /api/v1/profile/payment-methods.
func (h *Handler) CreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var req PaymentMethodInput
	if err := common.Decode(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}
	method, err := h.Service.CreatePaymentMethod(r.Context(), owner, req)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusCreated, method)
}

// SetDefaultPaymentMethod handles PATCH /api/v1/profile/payment-methods/{id}/default.
func (h *Handler) SetDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	method, err := h.Service.SetDefaultPaymentMethod(r.Context(), owner, id)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusOK, method)
}

// DeletePaymentMethod handles DELETE /api/v1/profile/payment-methods/{id}.
func (h *Handler) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownerAndID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.Service.DeletePaymentMethod(r.Context(), owner, id); err != nil {
		common.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Routes mounts the profile endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/addresses", h.ListAddresses)
	r.Post("/addresses", h.CreateAddress)
	r.Delete("/addresses/{id}", h.DeleteAddress)
	r.Patch("/addresses/{id}/default", h.SetDefaultAddress)
	r.Get("/payment-methods", h.ListPaymentMethods)
	r.Post("/payment-methods", h.CreatePaymentMethod)
	r.Delete("/payment-methods/{id}", h.DeletePaymentMethod)
	r.Patch("/payment-methods/{id}/default", h.SetDefaultPaymentMethod)
}

func ownerAndID(r *http.Request) (owner pgtype.UUID, id int64, err error) {
	owner, err = common.Owner(r.Context())
	if err != nil {
		return owner, 0, err
	}
	id, err = strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return owner, 0, common.BadRequest("BAD_REQUEST", "invalid id")
	}
	return owner, id, nil
}
