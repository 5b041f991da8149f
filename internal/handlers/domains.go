package handlers

import (
	"net/http"

	"github.com/MoodinAhmed1/classicet/internal/model"
)

func domainResponse(d *model.CustomDomain) model.DomainResponse {
	return model.DomainResponse{
		ID:                d.ID,
		Domain:            d.Domain,
		VerificationToken: d.VerificationToken,
		IsVerified:        d.IsVerified,
		CreatedAt:         d.Created,
	}
}

// CreateDomain обрабатывает POST /api/domains.
func (h *Handler) CreateDomain(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}

	var body model.CreateDomainRequest
	if !h.decodeJSON(res, req, &body) {
		return
	}

	d, err := h.Domains.CreateDomain(req.Context(), principal, body.Domain)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusCreated, domainResponse(d))
}

// ListDomains обрабатывает GET /api/domains.
func (h *Handler) ListDomains(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}

	domains, err := h.Domains.ListDomains(req.Context(), principal)
	if err != nil {
		h.serviceError(res, err)
		return
	}

	results := make([]model.DomainResponse, 0, len(domains))
	for _, d := range domains {
		results = append(results, domainResponse(d))
	}
	h.writeJSON(res, http.StatusOK, results)
}

// VerifyDomain обрабатывает POST /api/domains/{id}/verify.
func (h *Handler) VerifyDomain(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}

	d, err := h.Domains.VerifyDomain(req.Context(), principal, id)
	if err != nil {
		h.serviceError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, domainResponse(d))
}

// DeleteDomain обрабатывает DELETE /api/domains/{id}.
func (h *Handler) DeleteDomain(res http.ResponseWriter, req *http.Request) {
	principal, ok := h.principal(res, req)
	if !ok {
		return
	}
	id, ok := h.pathID(res, req)
	if !ok {
		return
	}

	if err := h.Domains.DeleteDomain(req.Context(), principal, id); err != nil {
		h.serviceError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}
