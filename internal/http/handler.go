package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"leads-admin-service/internal/auth"
	"leads-admin-service/internal/logger"
	"leads-admin-service/internal/model"
	"leads-admin-service/internal/service"
)

// TeamService — операции над командами постеров.
type TeamService interface {
	ListTeams(ctx context.Context) ([]model.TeamListItem, error)
	GetTeam(ctx context.Context, teamID string) (model.TeamDetails, error)
	CreateTeam(ctx context.Context, name, leaderID string) (model.Team, error)
	DeleteTeam(ctx context.Context, teamID string) error
	AssignMember(ctx context.Context, teamID, posterID string) (model.User, error)
	RemoveMember(ctx context.Context, teamID, posterID string) (model.User, error)
	LeaderStatus(ctx context.Context, userID string) (model.LeaderStatus, error)
}

// PerformanceService строит отчёт по команде.
type PerformanceService interface {
	TeamPerformance(ctx context.Context, caller auth.Principal, teamID string) (model.TeamPerformance, error)
}

// PurgeService удаляет лиды за период.
type PurgeService interface {
	Purge(ctx context.Context, from, to string) (model.PurgeResult, error)
}

// AccountService — вход и смена пароля.
type AccountService interface {
	Login(ctx context.Context, userName, password string) (service.LoginResult, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// UserService — операции администратора над пользователями.
type UserService interface {
	UnassignedPosters(ctx context.Context) ([]model.UserSummary, error)
	DeleteUser(ctx context.Context, actorID, userID string) error
}

// DashboardService — сводная статистика.
type DashboardService interface {
	Stats(ctx context.Context) (model.DashboardStats, error)
	Analytics(ctx context.Context, rangeName, from, to string) (model.Analytics, error)
}

// Authenticator превращает сырой токен в Principal.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (auth.Principal, error)
}

// Services собирает зависимости обработчиков.
type Services struct {
	Teams       TeamService
	Performance PerformanceService
	Purge       PurgeService
	Account     AccountService
	Users       UserService
	Dashboard   DashboardService
	Auth        Authenticator
}

// Options — настройки транспорта.
type Options struct {
	AllowedOrigins []string
	SecureCookies  bool
}

type Handler struct {
	Services
	opts Options
	Log  *logger.Logger
}

func NewHandler(svc Services, opts Options, log *logger.Logger) *Handler {
	return &Handler{
		Services: svc,
		opts:     opts,
		Log:      log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.handleHealth)
	r.Post("/auth/login", h.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/auth/session", h.handleSession)
		r.Get("/teams", h.handleTeamList)
		r.Get("/teams/{id}/performance", h.handleTeamPerformance)
		r.Get("/poster/team-leader", h.handleLeaderStatus)

		r.Group(func(r chi.Router) {
			r.Use(requireRole(model.RoleRoot))

			r.Post("/teams", h.handleTeamCreate)
			r.Get("/teams/{id}", h.handleTeamGet)
			r.Delete("/teams/{id}", h.handleTeamDelete)
			r.Post("/teams/{id}/assign", h.handleTeamAssign)
			r.Post("/teams/{id}/remove", h.handleTeamRemove)

			r.Post("/leads/purge", h.handleLeadsPurge)
			r.Post("/account/change-password", h.handleChangePassword)
			r.Get("/posters/unassigned", h.handleUnassignedPosters)
			r.Delete("/users/{id}", h.handleUserDelete)

			r.Get("/dashboard/stats", h.handleDashboardStats)
			r.Get("/dashboard/analytics", h.handleDashboardAnalytics)
		})
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	appErr := service.AsAppError(err)

	kv := []any{
		"handler", handlerName,
		"request_id", middleware.GetReqID(r.Context()),
		"code", appErr.Code,
		"message", appErr.Message,
		"err", appErr.Err,
	}
	if appErr.Status >= http.StatusInternalServerError {
		h.Log.Errorw("handler error", kv...)
	} else {
		h.Log.Warnw("handler error", kv...)
	}

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	writeJSON(w, appErr.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// logRequests пишет по строке на запрос: метод, путь, статус, длительность.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.Log.Debugw("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
