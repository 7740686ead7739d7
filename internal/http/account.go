package http

import (
	"encoding/json"
	"net/http"
	"time"

	"leads-admin-service/internal/service"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	const handlerName = "login"

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateLoginRequest(req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	res, err := h.Account.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(res.Token, res.ExpiresAt))
	writeJSON(w, http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      res.User,
	})
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, principal(r))
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	const handlerName = "change_password"

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateChangePasswordRequest(req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	err := h.Account.ChangePassword(r.Context(), principal(r).UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	// Версия сессии уже увеличена, текущий токен больше не действует.
	http.SetCookie(w, h.sessionCookie("", time.Unix(0, 0)))
	writeJSON(w, http.StatusOK, messageResponse{Message: "Password changed successfully. Please sign in again."})
}

func (h *Handler) sessionCookie(token string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		c.MaxAge = -1
	}
	return c
}
