// Package model содержит доменные структуры: пользователи, команды постеров, лиды и отчёты.
package model

import "time"

// Role — тип пользователя.
type Role string

const (
	// RolePoster создаёт лиды (посты).
	RolePoster Role = "poster"
	// RoleSeller забирает лиды.
	RoleSeller Role = "seller"
	// RoleSellerAdmin управляет продавцами.
	RoleSellerAdmin Role = "sellerAdmin"
	// RoleRoot — администратор панели.
	RoleRoot Role = "root"
)

// Valid сообщает, является ли значение известной ролью.
func (r Role) Valid() bool {
	switch r {
	case RolePoster, RoleSeller, RoleSellerAdmin, RoleRoot:
		return true
	}
	return false
}

// User описывает пользователя, его роль, команду и версию сессии.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	UserName       string    `json:"userName"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"type"`
	IsActive       bool      `json:"isActive"`
	TeamID         *string   `json:"teamId"`
	SessionVersion int       `json:"sessionVersion"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserSummary — краткое представление пользователя для списков.
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
}

// SessionState — авторитетное состояние пользователя, по которому проверяется токен.
type SessionState struct {
	UserID         string
	Role           Role
	IsActive       bool
	SessionVersion int
}
