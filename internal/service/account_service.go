package service

import (
	"context"
	"errors"
	"time"

	"leads-admin-service/internal/logger"
	"leads-admin-service/internal/model"
	"leads-admin-service/internal/repository"
)

// MinPasswordLength — минимальная длина нового пароля.
const MinPasswordLength = 8

// PasswordHasher хеширует и сверяет пароли.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Matches(hash, plain string) bool
}

// TokenIssuer выпускает сессионный токен для пользователя.
type TokenIssuer interface {
	Issue(u model.User) (string, time.Time, error)
}

// LoginResult — выданная сессия.
type LoginResult struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      model.User `json:"user"`
}

// AccountService отвечает за вход и смену пароля.
type AccountService struct {
	users     UserRepository
	passwords PasswordHasher
	tokens    TokenIssuer
	log       *logger.Logger
}

// NewAccountService создаёт сервис аккаунта.
func NewAccountService(users UserRepository, passwords PasswordHasher, tokens TokenIssuer, log *logger.Logger) *AccountService {
	return &AccountService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		log:       log,
	}
}

// Login проверяет логин и пароль и выпускает токен с текущей версией сессии.
// Неизвестный, отключённый пользователь и неверный пароль неотличимы для клиента.
func (s *AccountService) Login(ctx context.Context, userName, password string) (LoginResult, error) {
	if userName == "" || password == "" {
		return LoginResult{}, ErrBadRequest("userName and password are required")
	}

	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrUnauthorized("invalid credentials")
		}
		return LoginResult{}, ErrInternal("failed to sign in", err)
	}
	if !user.IsActive || !s.passwords.Matches(user.PasswordHash, password) {
		return LoginResult{}, ErrUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokens.Issue(user)
	if err != nil {
		return LoginResult{}, ErrInternal("failed to sign in", err)
	}

	s.log.Infow("user signed in", "user_id", user.ID, "role", user.Role)
	return LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

// ChangePassword меняет пароль и увеличивает версию сессии: все выданные токены,
// включая текущий, становятся недействительными.
func (s *AccountService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrBadRequest("Current password and new password are required.")
	}
	if len(newPassword) < MinPasswordLength {
		return ErrBadRequest("New password must be at least 8 characters.")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrNotFound("User not found")
		}
		return ErrInternal("Internal server error", err)
	}

	if !s.passwords.Matches(user.PasswordHash, currentPassword) {
		return ErrBadRequest("Current password is incorrect.")
	}
	if s.passwords.Matches(user.PasswordHash, newPassword) {
		return ErrBadRequest("New password must be different from current password.")
	}

	hash, err := s.passwords.Hash(newPassword)
	if err != nil {
		return ErrInternal("Internal server error", err)
	}

	version, err := s.users.UpdatePassword(ctx, userID, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrNotFound("User not found")
		}
		return ErrInternal("Internal server error", err)
	}

	s.log.Audit("password changed", "user_id", userID, "session_version", version)
	return nil
}
