package service

import (
	"context"
	"errors"
	"sort"

	"leads-admin-service/internal/auth"
	"leads-admin-service/internal/model"
	"leads-admin-service/internal/repository"
)

// PerformanceService строит отчёт по постам участников команды.
type PerformanceService struct {
	teams    TeamRepository
	users    UserRepository
	posts    PostRepository
	calendar Calendar
}

// NewPerformanceService создаёт сервис отчётов.
func NewPerformanceService(teams TeamRepository, users UserRepository, posts PostRepository, calendar Calendar) *PerformanceService {
	return &PerformanceService{
		teams:    teams,
		users:    users,
		posts:    posts,
		calendar: calendar,
	}
}

// TeamPerformance возвращает сводку, разбивку по участникам и рейтинг для команды.
// Доступ есть у root и у лидера именно этой команды.
func (s *PerformanceService) TeamPerformance(ctx context.Context, caller auth.Principal, teamID string) (model.TeamPerformance, error) {
	if caller.Role != model.RoleRoot && caller.Role != model.RolePoster {
		return model.TeamPerformance{}, ErrUnauthorized("Unauthorized")
	}
	if teamID == "" {
		return model.TeamPerformance{}, ErrBadRequest("team id is required")
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.TeamPerformance{}, ErrNotFound("team not found")
		}
		return model.TeamPerformance{}, ErrInternal("failed to fetch team performance", err)
	}
	if caller.Role != model.RoleRoot && team.LeaderID != caller.UserID {
		return model.TeamPerformance{}, ErrUnauthorized("Unauthorized")
	}

	members, err := s.users.ListTeamMembers(ctx, teamID)
	if err != nil {
		return model.TeamPerformance{}, ErrInternal("failed to fetch team performance", err)
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}

	counts, err := s.posts.CountByPoster(ctx, ids, s.calendar.Windows())
	if err != nil {
		return model.TeamPerformance{}, ErrInternal("failed to fetch team performance", err)
	}

	return Aggregate(teamID, members, counts), nil
}

// Aggregate собирает отчёт из текущего состава и посчитанных постов.
// Сводка — сумма по участникам; рейтинг отсортирован по total по убыванию,
// при равенстве сохраняется порядок состава.
func Aggregate(teamID string, members []model.User, counts map[string]model.PosterCounts) model.TeamPerformance {
	res := model.TeamPerformance{
		TeamID:          teamID,
		MemberBreakdown: make([]model.MemberPerformance, 0, len(members)),
	}

	for _, m := range members {
		c := counts[m.ID]

		res.Summary.DailyPosts += c.Daily
		res.Summary.WeeklyPosts += c.Weekly
		res.Summary.MonthlyPosts += c.Monthly
		res.Summary.LastMonthPosts += c.LastMonth

		res.MemberBreakdown = append(res.MemberBreakdown, model.MemberPerformance{
			ID:       m.ID,
			Name:     m.Name,
			UserName: m.UserName,
			Daily:    c.Daily,
			Weekly:   c.Weekly,
			Monthly:  c.Monthly,
			Total:    c.Total,
		})
	}

	res.TopPosters = make([]model.MemberPerformance, len(res.MemberBreakdown))
	copy(res.TopPosters, res.MemberBreakdown)
	sort.SliceStable(res.TopPosters, func(i, j int) bool {
		return res.TopPosters[i].Total > res.TopPosters[j].Total
	})

	return res
}
