// Package sessionwatch периодически перепроверяет сессию клиента панели и сообщает,
// когда она перестала действовать: выход, смена пароля или отключение пользователя.
package sessionwatch

import (
	"context"
	"errors"
	"time"

	"leads-admin-service/internal/auth"
	"leads-admin-service/internal/logger"
)

// DefaultInterval — период перепроверки сессии.
const DefaultInterval = 30 * time.Second

// ErrNoSession возвращается сборщиком, когда сервер больше не признаёт сессию.
var ErrNoSession = errors.New("no active session")

// Причины завершения сессии.
const (
	ReasonSignedOut      = "session no longer exists"
	ReasonVersionChanged = "session version changed"
)

// SessionFetcher запрашивает текущую сессию у сервера.
type SessionFetcher interface {
	FetchSession(ctx context.Context) (auth.Principal, error)
}

// Watcher опрашивает сессию по таймеру.
type Watcher struct {
	fetcher   SessionFetcher
	interval  time.Duration
	onExpired func(reason string)
	log       *logger.Logger
}

// New создаёт наблюдателя. onExpired вызывается один раз, после чего Run завершается.
func New(fetcher SessionFetcher, interval time.Duration, onExpired func(reason string), log *logger.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{
		fetcher:   fetcher,
		interval:  interval,
		onExpired: onExpired,
		log:       log,
	}
}

// Run проверяет сессию сразу и затем каждые interval. Версия, увиденная первой,
// считается эталонной. Ошибки запроса логируются, проверка повторяется на следующем тике.
// Возвращает nil после вызова onExpired или ошибку контекста при отмене.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	baseline := -1
	for {
		if reason, expired := w.check(ctx, &baseline); expired {
			w.log.Infow("session expired", "reason", reason)
			w.onExpired(reason)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *Watcher) check(ctx context.Context, baseline *int) (string, bool) {
	p, err := w.fetcher.FetchSession(ctx)
	switch {
	case errors.Is(err, ErrNoSession):
		return ReasonSignedOut, true
	case err != nil:
		if ctx.Err() == nil {
			w.log.Warnw("session check failed", "err", err)
		}
		return "", false
	}

	if *baseline < 0 {
		*baseline = p.SessionVersion
		w.log.Debugw("session baseline", "user_id", p.UserID, "session_version", p.SessionVersion)
		return "", false
	}
	if p.SessionVersion != *baseline {
		return ReasonVersionChanged, true
	}
	return "", false
}
