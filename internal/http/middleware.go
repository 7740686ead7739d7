package http

import (
	"errors"
	"net/http"
	"strings"

	"leads-admin-service/internal/auth"
	"leads-admin-service/internal/model"
	"leads-admin-service/internal/service"
)

// SessionCookie — имя cookie с сессионным токеном.
const SessionCookie = "session_token"

// authenticate достаёт токен из заголовка Authorization или cookie и проверяет версию сессии.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const handlerName = "authenticate"

		raw := bearerToken(r)
		if raw == "" {
			h.writeError(w, r, handlerName, service.ErrUnauthorized("Unauthorized"))
			return
		}

		p, err := h.Auth.Authenticate(r.Context(), raw)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrSessionInvalid) {
				h.writeError(w, r, handlerName, service.ErrUnauthorized("Unauthorized"))
				return
			}
			h.writeError(w, r, handlerName, service.ErrInternal("failed to verify session", err))
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
	})
}

func bearerToken(r *http.Request) string {
	if v := r.Header.Get("Authorization"); v != "" {
		scheme, token, ok := strings.Cut(v, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// requireRole пропускает только вызывающих с одной из перечисленных ролей.
// Недостаточная роль отдаётся как 401, так же как отсутствие сессии.
func requireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := auth.PrincipalFrom(r.Context())
			if ok {
				for _, role := range roles {
					if p.Role == role {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			resp := errorResponse{}
			resp.Error.Code = service.CodeUnauthorized
			resp.Error.Message = "Unauthorized"
			writeJSON(w, http.StatusUnauthorized, resp)
		})
	}
}

// principal возвращает вызывающего; маршрут всегда стоит за authenticate.
func principal(r *http.Request) auth.Principal {
	p, _ := auth.PrincipalFrom(r.Context())
	return p
}
