// Package service содержит бизнес-логику панели: команды постеров, отчёты,
// чистку лидов, аккаунт администратора и сводную аналитику.
package service

import (
	"context"
	"time"

	"leads-admin-service/internal/model"
	"leads-admin-service/internal/repository"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository описывает контракт репозитория пользователей для бизнес-слоя.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByUserName(ctx context.Context, userName string) (model.User, error)
	AssignToTeam(ctx context.Context, userID, teamID string) (model.User, error)
	RemoveFromTeam(ctx context.Context, userID, teamID string) (model.User, error)
	DetachTeamMembers(ctx context.Context, teamID string) (int64, error)
	ListTeamMembers(ctx context.Context, teamID string) ([]model.User, error)
	ListUnassignedPosters(ctx context.Context) ([]model.UserSummary, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) (int, error)
	CountUsers(ctx context.Context, role model.Role) (int, error)
	DeleteWithOwnedRecords(ctx context.Context, user model.User) error
}

// TeamRepository описывает контракт репозитория команд.
type TeamRepository interface {
	Create(ctx context.Context, team model.Team) (model.Team, error)
	GetByID(ctx context.Context, id string) (model.Team, error)
	GetByLeader(ctx context.Context, leaderID string) (model.Team, error)
	List(ctx context.Context) ([]model.TeamListItem, error)
	Delete(ctx context.Context, id string) error
}

// PostRepository описывает контракт репозитория лидов.
type PostRepository interface {
	CountByPoster(ctx context.Context, posterIDs []string, w model.PerformanceWindows) (map[string]model.PosterCounts, error)
	ListIDsCreatedBetween(ctx context.Context, from, to time.Time) ([]string, error)
	DeleteWithDependents(ctx context.Context, ids []string) (model.PurgeCounts, error)
	CountPosts(ctx context.Context, f repository.PostFilter) (int, error)
	CountClaims(ctx context.Context, w model.Window) (int, error)
}
