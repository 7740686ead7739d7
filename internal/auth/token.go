// Package auth выпускает и проверяет сессионные токены.
//
// Токен — подписанный HS256 JWT с id пользователя, ролью и версией сессии на момент
// выдачи. Версия хранится в записи пользователя и увеличивается при смене пароля,
// поэтому все выданные ранее токены перестают проходить проверку без списка отзыва.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"leads-admin-service/internal/model"
)

// ErrInvalidToken возвращается для повреждённых, чужих и просроченных токенов.
var ErrInvalidToken = errors.New("invalid session token")

// Claims — содержимое сессионного токена.
type Claims struct {
	Role           model.Role `json:"role"`
	SessionVersion int        `json:"sv"`
	jwt.RegisteredClaims
}

// UserID возвращает id пользователя из subject.
func (c *Claims) UserID() string {
	return c.Subject
}

// Tokens подписывает и разбирает токены общим секретом.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens создаёт выпускатель токенов с заданным сроком жизни.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock подменяет источник времени (для тестов).
func (t *Tokens) WithClock(now func() time.Time) *Tokens {
	cp := *t
	cp.now = now
	return &cp
}

// Issue выпускает токен для пользователя, фиксируя его текущую версию сессии.
func (t *Tokens) Issue(u model.User) (string, time.Time, error) {
	issuedAt := t.now()
	expiresAt := issuedAt.Add(t.ttl)

	claims := Claims{
		Role:           u.Role,
		SessionVersion: u.SessionVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse проверяет подпись, алгоритм и срок действия токена.
func (t *Tokens) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	return claims, nil
}
