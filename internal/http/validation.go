package http

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"leads-admin-service/internal/service"
)

// Идентификаторы пользователей и команд: uuid или cuid, без пробелов и спецсимволов.
var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

const maxTeamNameLen = 100

// Teams

// ValidateCreateTeamRequest /teams — тело запроса
func ValidateCreateTeamRequest(req createTeamRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.LeaderID == "" {
		return service.ErrBadRequest("name and leaderId are required")
	}
	if utf8.RuneCountInString(name) > maxTeamNameLen {
		return service.ErrBadRequest("name must be at most 100 characters")
	}
	if !reID.MatchString(req.LeaderID) {
		return service.ErrBadRequest("leaderId is malformed")
	}
	return nil
}

// ValidateMemberRequest /teams/{id}/assign и /teams/{id}/remove — тело запроса
func ValidateMemberRequest(req memberRequest) error {
	if req.PosterID == "" {
		return service.ErrBadRequest("posterId required")
	}
	if !reID.MatchString(req.PosterID) {
		return service.ErrBadRequest("posterId is malformed")
	}
	return nil
}

// ValidatePathID проверяет id из пути.
func ValidatePathID(name, id string) error {
	if id == "" {
		return service.ErrBadRequest(name + " is required")
	}
	if !reID.MatchString(id) {
		return service.ErrBadRequest(name + " is malformed")
	}
	return nil
}

// Leads

// ValidatePurgeRequest /leads/purge — тело запроса; формат дат проверяет сервис
func ValidatePurgeRequest(req purgeRequest) error {
	if strings.TrimSpace(req.From) == "" || strings.TrimSpace(req.To) == "" {
		return service.ErrBadRequest("from and to are required")
	}
	return nil
}

// Account

// ValidateLoginRequest /auth/login — тело запроса
func ValidateLoginRequest(req loginRequest) error {
	if req.UserName == "" || req.Password == "" {
		return service.ErrBadRequest("userName and password are required")
	}
	return nil
}

// ValidateChangePasswordRequest /account/change-password — тело запроса
func ValidateChangePasswordRequest(req changePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return service.ErrBadRequest("Current password and new password are required.")
	}
	return nil
}
