package repository

import (
	"context"
	"errors"
	"fmt"

	"leads-admin-service/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, user_name, password_hash, type, is_active, team_id, session_version, created_at`

// UserRepo реализует репозиторий пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.UserName, &u.PasswordHash, &role, &u.IsActive, &u.TeamID, &u.SessionVersion, &u.CreatedAt)
	u.Role = model.Role(role)
	return u, err
}

// GetByID возвращает пользователя по id. Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByUserName возвращает пользователя по логину.
func (r *UserRepo) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_name = $1`, userName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user by name: %w", err)
	}
	return u, nil
}

// GetSessionState читает то, что нужно для проверки токена: роль, активность и версию сессии.
func (r *UserRepo) GetSessionState(ctx context.Context, id string) (model.SessionState, error) {
	var s model.SessionState
	var role string
	err := r.db.Pool.QueryRow(ctx, `
SELECT id, type, is_active, session_version
FROM users
WHERE id = $1
`, id).Scan(&s.UserID, &role, &s.IsActive, &s.SessionVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SessionState{}, ErrUserNotFound
		}
		return model.SessionState{}, fmt.Errorf("get session state: %w", err)
	}
	s.Role = model.Role(role)
	return s, nil
}

// AssignToTeam привязывает пользователя к команде, только если сейчас он ни в какой команде не состоит.
// Если пользователь уже в команде, возвращает ErrAlreadyAssigned.
func (r *UserRepo) AssignToTeam(ctx context.Context, userID, teamID string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	u, err := scanUser(q.QueryRow(ctx, `
UPDATE users
SET team_id = $2
WHERE id = $1 AND team_id IS NULL
RETURNING `+userColumns, userID, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrAlreadyAssigned
		}
		return model.User{}, fmt.Errorf("assign user to team: %w", err)
	}
	return u, nil
}

// RemoveFromTeam отвязывает пользователя от команды teamID.
// Если пользователь в этой команде не состоит, возвращает ErrNotTeamMember.
func (r *UserRepo) RemoveFromTeam(ctx context.Context, userID, teamID string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	u, err := scanUser(q.QueryRow(ctx, `
UPDATE users
SET team_id = NULL
WHERE id = $1 AND team_id = $2
RETURNING `+userColumns, userID, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrNotTeamMember
		}
		return model.User{}, fmt.Errorf("remove user from team: %w", err)
	}
	return u, nil
}

// DetachTeamMembers обнуляет team_id у всех участников команды и возвращает их количество.
func (r *UserRepo) DetachTeamMembers(ctx context.Context, teamID string) (int64, error) {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `UPDATE users SET team_id = NULL WHERE team_id = $1`, teamID)
	if err != nil {
		return 0, fmt.Errorf("detach team members: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListTeamMembers возвращает текущий состав команды.
func (r *UserRepo) ListTeamMembers(ctx context.Context, teamID string) ([]model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT `+userColumns+`
FROM users
WHERE team_id = $1
ORDER BY created_at, id
`, teamID)
	if err != nil {
		return nil, fmt.Errorf("query team members: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return users, nil
}

// ListUnassignedPosters возвращает активных постеров без команды.
func (r *UserRepo) ListUnassignedPosters(ctx context.Context) ([]model.UserSummary, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, name, user_name
FROM users
WHERE type = $1 AND is_active = TRUE AND team_id IS NULL
ORDER BY name, id
`, string(model.RolePoster))
	if err != nil {
		return nil, fmt.Errorf("query posters: %w", err)
	}
	defer rows.Close()

	res := make([]model.UserSummary, 0)
	for rows.Next() {
		var s model.UserSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.UserName); err != nil {
			return nil, fmt.Errorf("scan poster: %w", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// UpdatePassword сохраняет новый хеш пароля и одним запросом увеличивает версию сессии,
// тем самым инвалидируя все ранее выданные токены. Возвращает новую версию.
func (r *UserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) (int, error) {
	q := r.db.GetQueryExecutor(ctx)
	var version int
	err := q.QueryRow(ctx, `
UPDATE users
SET password_hash = $2,
    session_version = session_version + 1
WHERE id = $1
RETURNING session_version
`, userID, passwordHash).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("update password: %w", err)
	}
	return version, nil
}

// CountUsers считает пользователей; при role == "" считаются все.
func (r *UserRepo) CountUsers(ctx context.Context, role model.Role) (int, error) {
	var n int
	var err error
	if role == "" {
		err = r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	} else {
		err = r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE type = $1`, string(role)).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// DeleteWithOwnedRecords удаляет пользователя вместе с зависящими от него записями.
// Должен вызываться внутри транзакции: порядок запросов важен из-за внешних ключей.
func (r *UserRepo) DeleteWithOwnedRecords(ctx context.Context, user model.User) error {
	q := r.db.GetQueryExecutor(ctx)

	var stmts []string
	switch user.Role {
	case model.RoleSeller:
		stmts = append(stmts,
			`DELETE FROM claims WHERE seller_id = $1`,
			`DELETE FROM seller_queue WHERE seller_id = $1`,
			`DELETE FROM seller_limits WHERE seller_id = $1`,
			`DELETE FROM seller_request_logs WHERE seller_id = $1`,
		)
	case model.RolePoster:
		stmts = append(stmts,
			`DELETE FROM post_deletions WHERE post_id IN (SELECT id FROM posts WHERE poster_id = $1)`,
			`DELETE FROM claims WHERE post_id IN (SELECT id FROM posts WHERE poster_id = $1)`,
			`DELETE FROM posts WHERE poster_id = $1`,
		)
	}
	stmts = append(stmts,
		`DELETE FROM notifications WHERE user_id = $1`,
		`DELETE FROM post_deletions WHERE seller_id = $1`,
	)

	for _, stmt := range stmts {
		if _, err := q.Exec(ctx, stmt, user.ID); err != nil {
			return fmt.Errorf("delete owned records: %w", err)
		}
	}

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, user.ID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
