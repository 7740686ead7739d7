package http

import (
	"encoding/json"
	"net/http"

	"leads-admin-service/internal/service"
)

func (h *Handler) handleLeadsPurge(w http.ResponseWriter, r *http.Request) {
	const handlerName = "leads_purge"

	var req purgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidatePurgeRequest(req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	res, err := h.Purge.Purge(r.Context(), req.From, req.To)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
