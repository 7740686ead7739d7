package repository

import (
	"context"
	"errors"
	"fmt"

	"leads-admin-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TeamRepo реализует репозиторий команд постеров.
type TeamRepo struct {
	db *Postgres
}

// NewTeamRepo создаёт новый экземпляр TeamRepo.
func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

// Create вставляет команду. Если лидер уже руководит другой командой, возвращает ErrLeaderTaken.
func (r *TeamRepo) Create(ctx context.Context, t model.Team) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	var created model.Team
	err := q.QueryRow(ctx, `
INSERT INTO poster_teams (id, name, leader_id)
VALUES ($1, $2, $3)
RETURNING id, name, leader_id, created_at
`, t.ID, t.Name, t.LeaderID).Scan(&created.ID, &created.Name, &created.LeaderID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			// уникальное ограничение по leader_id нарушено
			return model.Team{}, ErrLeaderTaken
		}
		return model.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return created, nil
}

// GetByID возвращает команду по id или ErrTeamNotFound.
func (r *TeamRepo) GetByID(ctx context.Context, id string) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	var t model.Team
	err := q.QueryRow(ctx, `
SELECT id, name, leader_id, created_at
FROM poster_teams
WHERE id = $1
`, id).Scan(&t.ID, &t.Name, &t.LeaderID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

// GetByLeader возвращает команду, которой руководит пользователь, или ErrTeamNotFound.
func (r *TeamRepo) GetByLeader(ctx context.Context, leaderID string) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	var t model.Team
	err := q.QueryRow(ctx, `
SELECT id, name, leader_id, created_at
FROM poster_teams
WHERE leader_id = $1
`, leaderID).Scan(&t.ID, &t.Name, &t.LeaderID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("get team by leader: %w", err)
	}
	return t, nil
}

// List возвращает все команды с краткой информацией о лидере и числом постеров в составе.
func (r *TeamRepo) List(ctx context.Context) ([]model.TeamListItem, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT t.id, t.name, t.leader_id, t.created_at,
       l.id, l.name, l.user_name,
       (SELECT COUNT(*) FROM users m WHERE m.team_id = t.id AND m.type = $1) AS member_count
FROM poster_teams t
JOIN users l ON l.id = t.leader_id
ORDER BY t.created_at, t.id
`, string(model.RolePoster))
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	res := make([]model.TeamListItem, 0)
	for rows.Next() {
		var it model.TeamListItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.LeaderID, &it.CreatedAt,
			&it.Leader.ID, &it.Leader.Name, &it.Leader.UserName,
			&it.MemberCount,
		); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		res = append(res, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// Delete удаляет запись команды. Участники должны быть отвязаны заранее в той же транзакции.
func (r *TeamRepo) Delete(ctx context.Context, id string) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `DELETE FROM poster_teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}
	return nil
}
