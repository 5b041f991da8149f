package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MoodinAhmed1/classicet/internal/model"
)

// CreateLink обрабатывает POST /api/links.
func (h *Handler) CreateLink(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}

	var body model.CreateLinkRequest
	if !h.decodeJSON(res, req, &body) {
		return
	}

	link, err := h.Shortener.CreateLink(req.Context(), principal, body)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusCreated, h.linkResponse(link))
}

// ListLinks обрабатывает GET /api/links.
func (h *Handler) ListLinks(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}

	links, err := h.Shortener.GetUserLinks(req.Context(), principal)
	if err != nil {
		h.serviceError(res, err)
		return
	}

	results := make([]model.LinkResponse, 0, len(links))
	for _, link := range links {
		results = append(results, h.linkResponse(link))
	}
	h.writeJSON(res, http.StatusOK, results)
}

// GetLink обрабатывает GET /api/links/{id}.
func (h *Handler) GetLink(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}

	link, err := h.Shortener.GetLink(req.Context(), principal, id)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, h.linkResponse(link))
}

// UpdateLink обрабатывает PATCH /api/links/{id}.
func (h *Handler) UpdateLink(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}

	var body model.UpdateLinkRequest
	if !h.decodeJSON(res, req, &body) {
		return
	}

	link, err := h.Shortener.UpdateLink(req.Context(), principal, id, body)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, h.linkResponse(link))
}

// DeleteLink обрабатывает DELETE /api/links/{id}.
func (h *Handler) DeleteLink(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}

	if err := h.Shortener.DeleteLink(req.Context(), principal, id); err != nil {
		h.serviceError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// LinkAnalytics обрабатывает GET /api/links/{id}/analytics?days=N.
func (h *Handler) LinkAnalytics(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}

	days := 0
	if raw := req.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(res, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}

	analytics, err := h.Analytics.LinkAnalytics(req.Context(), principal, id, days)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, analytics)
}

func (h *Handler) pathID(res http.ResponseWriter, req *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		h.writeError(res, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
