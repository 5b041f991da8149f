package handlers

import (
	"net/http"

	"github.com/MoodinAhmed1/classicet/internal/model"
)

// Register обрабатывает POST /api/auth/register.
func (h *Handler) Register(res http.ResponseWriter, req *http.Request) {
	var body model.RegisterRequest
	if !h.decodeJSON(res, req, &body) {
		return
	}

	user, err := h.Users.Register(req.Context(), body)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusCreated, map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"tier":  user.Tier,
	})
}

// Login обрабатывает POST /api/auth/login.
func (h *Handler) Login(res http.ResponseWriter, req *http.Request) {
	var body model.LoginRequest
	if !h.decodeJSON(res, req, &body) {
		return
	}

	token, user, err := h.Users.Login(req.Context(), body)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, model.TokenResponse{Token: token, Tier: user.Tier})
}

// Profile обрабатывает GET /api/user/profile.
func (h *Handler) Profile(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}

	user, err := h.Users.Profile(req.Context(), principal)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"tier":     user.Tier,
		"is_admin": user.IsAdmin,
		"created":  user.Created,
	})
}

// UpdateProfile обрабатывает PUT /api/user/profile.
func (h *Handler) UpdateProfile(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}

	var body struct {
		Email string `json:"email" validate:"required,email"`
	}
	if !h.decodeJSON(res, req, &body) {
		return
	}

	if err := h.Users.UpdateEmail(req.Context(), principal, body.Email); err != nil {
		h.serviceError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}
