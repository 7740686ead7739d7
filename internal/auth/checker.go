package auth

import (
	"context"
	"errors"
	"fmt"

	"leads-admin-service/internal/model"
	"leads-admin-service/internal/repository"
)

// ErrSessionInvalid возвращается, если пользователь удалён, отключён
// или его версия сессии изменилась после выдачи токена.
var ErrSessionInvalid = errors.New("session is no longer valid")

// SessionStore отдаёт авторитетное состояние пользователя.
type SessionStore interface {
	GetSessionState(ctx context.Context, userID string) (model.SessionState, error)
}

// Principal — аутентифицированный вызывающий.
type Principal struct {
	UserID         string     `json:"id"`
	Role           model.Role `json:"role"`
	SessionVersion int        `json:"sessionVersion"`
}

// Checker сверяет токен с текущей записью пользователя.
type Checker struct {
	store SessionStore
}

// NewChecker создаёт проверку сессий поверх хранилища пользователей.
func NewChecker(store SessionStore) *Checker {
	return &Checker{store: store}
}

// Check возвращает Principal, если токен всё ещё действителен.
func (c *Checker) Check(ctx context.Context, claims *Claims) (Principal, error) {
	state, err := c.store.GetSessionState(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Principal{}, ErrSessionInvalid
		}
		return Principal{}, fmt.Errorf("load session state: %w", err)
	}

	if !state.IsActive {
		return Principal{}, ErrSessionInvalid
	}
	if state.SessionVersion != claims.SessionVersion {
		return Principal{}, ErrSessionInvalid
	}

	return Principal{
		UserID:         claims.UserID(),
		Role:           claims.Role,
		SessionVersion: claims.SessionVersion,
	}, nil
}

// Sessions объединяет разбор токена и проверку версии.
type Sessions struct {
	tokens  *Tokens
	checker *Checker
}

// NewSessions создаёт аутентификатор запросов.
func NewSessions(tokens *Tokens, checker *Checker) *Sessions {
	return &Sessions{tokens: tokens, checker: checker}
}

// Authenticate проверяет сырой токен целиком. Ошибки ErrInvalidToken и ErrSessionInvalid
// означают «не аутентифицирован», остальные — сбой хранилища.
func (s *Sessions) Authenticate(ctx context.Context, raw string) (Principal, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return Principal{}, err
	}
	return s.checker.Check(ctx, claims)
}

type principalKey struct{}

// WithPrincipal кладёт вызывающего в контекст.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom достаёт вызывающего из контекста.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
