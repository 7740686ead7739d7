package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leads-admin-service/internal/model"
	"leads-admin-service/internal/service"
)

func (h *Handler) handleTeamList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_list"

	teams, err := h.Teams.ListTeams(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	if teams == nil {
		teams = []model.TeamListItem{}
	}

	writeJSON(w, http.StatusOK, teamsResponse{Teams: teams})
}

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	teamID := chi.URLParam(r, "id")
	if err := ValidatePathID("team id", teamID); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	team, err := h.Teams.GetTeam(r.Context(), teamID)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	if team.Members == nil {
		team.Members = []model.User{}
	}

	writeJSON(w, http.StatusOK, teamDetailsResponse{Team: team})
}

func (h *Handler) handleTeamCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_create"

	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCreateTeamRequest(req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	team, err := h.Teams.CreateTeam(r.Context(), req.Name, req.LeaderID)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, teamResponse{Team: team})
}

func (h *Handler) handleTeamDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_delete"

	teamID := chi.URLParam(r, "id")
	if err := ValidatePathID("team id", teamID); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	if err := h.Teams.DeleteTeam(r.Context(), teamID); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Team deleted"})
}

func (h *Handler) handleTeamAssign(w http.ResponseWriter, r *http.Request) {
	h.handleMembership(w, r, "team_assign", h.Teams.AssignMember)
}

func (h *Handler) handleTeamRemove(w http.ResponseWriter, r *http.Request) {
	h.handleMembership(w, r, "team_remove", h.Teams.RemoveMember)
}

// handleMembership — общий разбор запроса для добавления и удаления участника.
func (h *Handler) handleMembership(
	w http.ResponseWriter,
	r *http.Request,
	handlerName string,
	apply func(ctx context.Context, teamID, posterID string) (model.User, error),
) {
	teamID := chi.URLParam(r, "id")
	if err := ValidatePathID("team id", teamID); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}
	if err := ValidateMemberRequest(req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	user, err := apply(r.Context(), teamID, req.PosterID)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: user})
}

func (h *Handler) handleTeamPerformance(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_performance"

	teamID := chi.URLParam(r, "id")
	if err := ValidatePathID("team id", teamID); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	report, err := h.Performance.TeamPerformance(r.Context(), principal(r), teamID)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleLeaderStatus(w http.ResponseWriter, r *http.Request) {
	const handlerName = "leader_status"

	st, err := h.Teams.LeaderStatus(r.Context(), principal(r).UserID)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}
