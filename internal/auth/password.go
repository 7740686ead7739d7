package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Passwords хеширует и сверяет пароли через bcrypt.
type Passwords struct {
	cost int
}

// NewPasswords создаёт хешер с заданной стоимостью; некорректная стоимость заменяется дефолтной.
func NewPasswords(cost int) *Passwords {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Passwords{cost: cost}
}

// Hash возвращает bcrypt-хеш пароля.
func (p *Passwords) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), p.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Matches сообщает, соответствует ли пароль хешу. Повреждённый хеш считается несовпадением.
func (p *Passwords) Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
