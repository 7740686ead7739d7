package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"leads-admin-service/internal/model"
)

func (h *Handler) handleUnassignedPosters(w http.ResponseWriter, r *http.Request) {
	const handlerName = "posters_unassigned"

	posters, err := h.Users.UnassignedPosters(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	if posters == nil {
		posters = []model.UserSummary{}
	}

	writeJSON(w, http.StatusOK, postersResponse{Posters: posters})
}

func (h *Handler) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_delete"

	userID := chi.URLParam(r, "id")
	if err := ValidatePathID("user id", userID); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	if err := h.Users.DeleteUser(r.Context(), principal(r).UserID, userID); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "User deleted"})
}
