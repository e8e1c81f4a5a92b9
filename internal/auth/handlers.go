package auth

import (
	"net/http"

	"github.com/noah-isme/toko-checkout/internal/common"
)

// Handler exposes registration, login, logout and the current account.
type Handler struct {
	Service          *Service
	AccessCookieName string
	CookieDomain     string
	CookieSecure     bool
	CookieSameSite   http.SameSite
}

// credentials is decoded without validation so malformed logins fail the
// same way as wrong passwords.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/v1/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in registration
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, r, err)
		return
	}
	user, err := h.Service.Register(r.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login. Browser clients also receive the
// token as an HttpOnly cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := common.Decode(r, &in); err != nil {
		common.WriteError(w, r, err)
		return
	}
	res, err := h.Service.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	if c := h.accessCookie(res); c != nil {
		http.SetCookie(w, c)
	}
	common.Data(w, http.StatusOK, res)
}

// Me handles GET /api/v1/auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserID(r.Context())
	if !ok {
		common.WriteError(w, r, common.Unauthorized())
		return
	}
	user, err := h.Service.Me(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusOK, user)
}

// Logout handles POST /api/v1/auth/logout. Tokens are stateless, so logging
// out only expires the browser cookie.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	if c := h.clearedCookie(); c != nil {
		http.SetCookie(w, c)
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateAccount handles PATCH /api/v1/profile/account.
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var in AccountInput
	if err := common.Decode(r, &in); err != nil {
		common.WriteError(w, r, err)
		return
	}
	user, err := h.Service.UpdateAccount(r.Context(), owner, in)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.Data(w, http.StatusOK, user)
}

// ChangePassword handles PATCH /api/v1/profile/account/password.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var in PasswordChange
	if err := common.Decode(r, &in); err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.Service.ChangePassword(r.Context(), owner, in); err != nil {
		common.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAccount handles DELETE /api/v1/profile/account and expires the
// browser cookie.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	owner, err := common.Owner(r.Context())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	var in AccountDeletion
	if err := common.Decode(r, &in); err != nil {
		common.WriteError(w, r, err)
		return
	}
	if err := h.Service.DeleteAccount(r.Context(), owner, in); err != nil {
		common.WriteError(w, r, err)
		return
	}
	if c := h.clearedCookie(); c != nil {
		http.SetCookie(w, c)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearedCookie() *http.Cookie {
	if h.AccessCookieName == "" {
		return nil
	}
	return &http.Cookie{
		Name:     h.AccessCookieName,
		Domain:   h.CookieDomain,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: h.CookieSameSite,
	}
}

func (h *Handler) accessCookie(res LoginResult) *http.Cookie {
	if h.AccessCookieName == "" {
		return nil
	}
	return &http.Cookie{
		Name:     h.AccessCookieName,
		Value:    res.AccessToken,
		Domain:   h.CookieDomain,
		Path:     "/",
		Expires:  res.AccessExpiry,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: h.CookieSameSite,
	}
}
