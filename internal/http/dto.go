// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"time"

	"leads-admin-service/internal/model"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createTeamRequest struct {
	Name     string `json:"name"`
	LeaderID string `json:"leaderId"`
}

type teamResponse struct {
	Team model.Team `json:"team"`
}

type teamDetailsResponse struct {
	Team model.TeamDetails `json:"team"`
}

type teamsResponse struct {
	Teams []model.TeamListItem `json:"teams"`
}

type memberRequest struct {
	PosterID string `json:"posterId"`
}

type userResponse struct {
	User model.User `json:"user"`
}

type postersResponse struct {
	Posters []model.UserSummary `json:"posters"`
}

type purgeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      model.User `json:"user"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
