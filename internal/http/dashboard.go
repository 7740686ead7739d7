package http

import "net/http"

func (h *Handler) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	const handlerName = "dashboard_stats"

	st, err := h.Dashboard.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

func (h *Handler) handleDashboardAnalytics(w http.ResponseWriter, r *http.Request) {
	const handlerName = "dashboard_analytics"

	q := r.URL.Query()
	res, err := h.Dashboard.Analytics(r.Context(), q.Get("range"), q.Get("from"), q.Get("to"))
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
