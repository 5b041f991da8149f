package handlers

import (
	"net/http"

	"github.com/MoodinAhmed1/classicet/internal/model"
)

// AdminListUsers обрабатывает GET /api/admin/users.
func (h *Handler) AdminListUsers(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}

	users, err := h.Admin.ListUsers(req.Context(), principal)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, users)
}

// AdminSetTier обрабатывает PUT /api/admin/users/{id}/tier.
func (h *Handler) AdminSetTier(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}

	var body model.SetTierRequest
	if !h.decodeJSON(res, req, &body) {
		return
	}

	if err := h.Admin.SetUserTier(req.Context(), principal, id, body.Tier); err != nil {
		h.serviceError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// AdminDeactivateLink обрабатывает POST /api/admin/links/{id}/deactivate.
func (h *Handler) AdminDeactivateLink(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}

	if err := h.Admin.DeactivateLink(req.Context(), principal, id); err != nil {
		h.serviceError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// AdminStats обрабатывает GET /api/admin/stats.
func (h *Handler) AdminStats(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}

	stats, err := h.Admin.Stats(req.Context(), principal)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, stats)
}
