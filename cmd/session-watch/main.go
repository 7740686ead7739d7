// Package main следит за сессией администратора и завершается, когда она перестаёт действовать
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"leads-admin-service/internal/config"
	"leads-admin-service/internal/logger"
	"leads-admin-service/internal/sessionwatch"
)

const serviceName = "session-watch"

func main() {
	os.Exit(run())
}

// run возвращает код выхода: 0 — остановлен сигналом, 1 — ошибка, 2 — сессия закончилась.
func run() int {
	cfg, err := config.LoadWatch()
	if err != nil {
		logger.New(serviceName, "").Errorw("failed to load config", "err", err)
		return 1
	}

	log := logger.New(serviceName, cfg.AppEnv)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	expired := false
	w := sessionwatch.New(
		sessionwatch.NewHTTPFetcher(cfg.BaseURL, cfg.Token, nil),
		cfg.Interval,
		func(reason string) {
			expired = true
			log.Warnw("session ended, sign in again", "reason", reason)
		},
		log,
	)

	log.Infow("watching session", "api", cfg.BaseURL, "interval", cfg.Interval)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorw("session watch stopped", "err", err)
		return 1
	}
	if expired {
		return 2
	}
	return 0
}
