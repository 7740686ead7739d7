// Package main запускает HTTP-сервис панели администрирования команд и лидов
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leads-admin-service/internal/auth"
	"leads-admin-service/internal/config"
	httpapi "leads-admin-service/internal/http"
	"leads-admin-service/internal/logger"
	"leads-admin-service/internal/repository"
	"leads-admin-service/internal/service"
)

const serviceName = "leads-admin"

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.New(serviceName, "").Fatalw("failed to load config", "err", err)
	}

	log := logger.New(serviceName, cfg.AppEnv)
	defer func() { _ = log.Sync() }()

	loc, _ := cfg.Location()
	weekStart, _ := cfg.FirstWeekday()

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalw("failed to init postgres", "err", err)
	}
	defer db.Close()

	// 1. Репозитории и менеджер транзакций
	userRepo := repository.NewUserRepo(db)
	teamRepo := repository.NewTeamRepo(db)
	postRepo := repository.NewPostRepo(db)
	txManager := repository.NewTransactionManager(db)

	// 2. Сессии
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.SessionTTL)
	sessions := auth.NewSessions(tokens, auth.NewChecker(userRepo))
	passwords := auth.NewPasswords(cfg.BcryptCost)

	// 3. Сервисы
	calendar := service.NewCalendar(loc, weekStart)
	svc := httpapi.Services{
		Teams:       service.NewTeamService(teamRepo, userRepo, txManager, log.With("component", "teams")),
		Performance: service.NewPerformanceService(teamRepo, userRepo, postRepo, calendar),
		Purge:       service.NewPurgeService(postRepo, txManager, calendar, cfg.PurgeBatchSize, log.With("component", "purge")),
		Account:     service.NewAccountService(userRepo, passwords, tokens, log.With("component", "account")),
		Users:       service.NewUserService(userRepo, teamRepo, txManager, log.With("component", "users")),
		Dashboard:   service.NewDashboardService(userRepo, postRepo, calendar),
		Auth:        sessions,
	}

	// 4. HTTP-обработчик
	handler := httpapi.NewHandler(svc, httpapi.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		SecureCookies:  cfg.IsProduction(),
	}, log.With("component", "http"))

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		log.Infow("starting http server", "addr", server.Addr, "timezone", loc.String(), "week_start", weekStart)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server error", "err", err)
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	log.Infow("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorw("server shutdown error", "err", err)
	}

	log.Infow("server stopped")
}
