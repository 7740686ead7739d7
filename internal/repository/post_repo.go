package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"leads-admin-service/internal/model"
)

// PostRepo реализует чтение и удаление лидов.
type PostRepo struct {
	db *Postgres
}

// NewPostRepo создаёт новый экземпляр PostRepo.
func NewPostRepo(db *Postgres) *PostRepo {
	return &PostRepo{db: db}
}

// CountByPoster одним запросом считает посты каждого постера по всем окнам и за всё время.
// Постеры без постов в результат не попадают.
func (r *PostRepo) CountByPoster(ctx context.Context, posterIDs []string, w model.PerformanceWindows) (map[string]model.PosterCounts, error) {
	res := make(map[string]model.PosterCounts, len(posterIDs))
	if len(posterIDs) == 0 {
		return res, nil
	}

	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT poster_id,
       COUNT(*) FILTER (WHERE created_at >= $2 AND created_at <= $3) AS daily,
       COUNT(*) FILTER (WHERE created_at >= $4 AND created_at <= $5) AS weekly,
       COUNT(*) FILTER (WHERE created_at >= $6 AND created_at <= $7) AS monthly,
       COUNT(*) FILTER (WHERE created_at >= $8 AND created_at <= $9) AS last_month,
       COUNT(*) AS total
FROM posts
WHERE poster_id = ANY($1)
GROUP BY poster_id
`, posterIDs,
		w.Today.Start, w.Today.End,
		w.Week.Start, w.Week.End,
		w.Month.Start, w.Month.End,
		w.LastMonth.Start, w.LastMonth.End,
	)
	if err != nil {
		return nil, fmt.Errorf("count posts by poster: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var c model.PosterCounts
		if err := rows.Scan(&id, &c.Daily, &c.Weekly, &c.Monthly, &c.LastMonth, &c.Total); err != nil {
			return nil, fmt.Errorf("scan counts: %w", err)
		}
		res[id] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// ListIDsCreatedBetween возвращает id постов, созданных в [from, to] включительно.
func (r *PostRepo) ListIDsCreatedBetween(ctx context.Context, from, to time.Time) ([]string, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT id
FROM posts
WHERE created_at >= $1 AND created_at <= $2
ORDER BY created_at, id
`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query post ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan post id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return ids, nil
}

// DeleteWithDependents удаляет посты и зависящие от них логи удалений и заявки.
// Вызывается внутри транзакции на один батч.
func (r *PostRepo) DeleteWithDependents(ctx context.Context, ids []string) (model.PurgeCounts, error) {
	var counts model.PurgeCounts
	if len(ids) == 0 {
		return counts, nil
	}

	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM post_deletions WHERE post_id = ANY($1)`, ids)
	if err != nil {
		return model.PurgeCounts{}, fmt.Errorf("delete post deletions: %w", err)
	}
	counts.DeletionLogs = tag.RowsAffected()

	tag, err = q.Exec(ctx, `DELETE FROM claims WHERE post_id = ANY($1)`, ids)
	if err != nil {
		return model.PurgeCounts{}, fmt.Errorf("delete claims: %w", err)
	}
	counts.Claims = tag.RowsAffected()

	tag, err = q.Exec(ctx, `DELETE FROM posts WHERE id = ANY($1)`, ids)
	if err != nil {
		return model.PurgeCounts{}, fmt.Errorf("delete posts: %w", err)
	}
	counts.Posts = tag.RowsAffected()

	return counts, nil
}

// PostFilter задаёт условия подсчёта постов. Пустые поля не фильтруют.
type PostFilter struct {
	Deleted   *bool
	Claimed   *bool
	CreatedIn *model.Window
}

// CountPosts считает посты, удовлетворяющие фильтру.
func (r *PostRepo) CountPosts(ctx context.Context, f PostFilter) (int, error) {
	where, args := f.where()

	var n int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// where собирает WHERE-часть запроса с позиционными параметрами.
func (f PostFilter) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Deleted != nil {
		conds = append(conds, "deleted = "+arg(*f.Deleted))
	}
	if f.Claimed != nil {
		conds = append(conds, "claimed = "+arg(*f.Claimed))
	}
	if f.CreatedIn != nil {
		conds = append(conds, "created_at >= "+arg(f.CreatedIn.Start))
		conds = append(conds, "created_at <= "+arg(f.CreatedIn.End))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// CountClaims считает заявки, сделанные в окне w.
func (r *PostRepo) CountClaims(ctx context.Context, w model.Window) (int, error) {
	var n int
	err := r.db.Pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM claims
WHERE claimed_at >= $1 AND claimed_at <= $2
`, w.Start, w.End).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count claims: %w", err)
	}
	return n, nil
}
