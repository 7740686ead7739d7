package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"leads-admin-service/internal/model"
	"leads-admin-service/internal/repository"
)

// DashboardService собирает сводные счётчики для главной страницы панели.
type DashboardService struct {
	users    UserRepository
	posts    PostRepository
	calendar Calendar
}

// NewDashboardService создаёт сервис статистики.
func NewDashboardService(users UserRepository, posts PostRepository, calendar Calendar) *DashboardService {
	return &DashboardService{users: users, posts: posts, calendar: calendar}
}

// Stats возвращает количество пользователей по ролям и лидов по состояниям.
func (s *DashboardService) Stats(ctx context.Context) (model.DashboardStats, error) {
	yes, no := true, false
	var st model.DashboardStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		st.Users.TotalUsers, err = s.users.CountUsers(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		st.Users.TotalPosters, err = s.users.CountUsers(gctx, model.RolePoster)
		return err
	})
	g.Go(func() (err error) {
		st.Users.TotalSellers, err = s.users.CountUsers(gctx, model.RoleSeller)
		return err
	})
	g.Go(func() (err error) {
		st.Leads.TotalLeads, err = s.posts.CountPosts(gctx, repository.PostFilter{Deleted: &no})
		return err
	})
	g.Go(func() (err error) {
		st.Leads.DeletedLeads, err = s.posts.CountPosts(gctx, repository.PostFilter{Deleted: &yes})
		return err
	})
	g.Go(func() (err error) {
		st.Leads.AvailableLeads, err = s.posts.CountPosts(gctx, repository.PostFilter{Deleted: &no, Claimed: &no})
		return err
	})

	if err := g.Wait(); err != nil {
		return model.DashboardStats{}, ErrInternal("Failed to load stats.", err)
	}
	return st, nil
}

// Analytics считает посты и заявки за период. Если задан from, используется
// диапазон дат [from, to]; иначе именованный диапазон rangeName.
func (s *DashboardService) Analytics(ctx context.Context, rangeName, from, to string) (model.Analytics, error) {
	var (
		w   model.Window
		err error
	)
	if from != "" {
		w, err = s.calendar.DayRange(from, to)
	} else {
		w, err = s.calendar.RangeWindow(rangeName)
	}
	if err != nil {
		return model.Analytics{}, ErrBadRequest(err.Error())
	}

	yes, no := true, false
	res := model.Analytics{Window: w}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.TotalPosts, err = s.posts.CountPosts(gctx, repository.PostFilter{CreatedIn: &w})
		return err
	})
	g.Go(func() (err error) {
		res.DeletedPosts, err = s.posts.CountPosts(gctx, repository.PostFilter{Deleted: &yes, CreatedIn: &w})
		return err
	})
	g.Go(func() (err error) {
		res.AvailablePosts, err = s.posts.CountPosts(gctx, repository.PostFilter{Deleted: &no, Claimed: &no, CreatedIn: &w})
		return err
	})
	g.Go(func() (err error) {
		res.Claims, err = s.posts.CountClaims(gctx, w)
		return err
	})

	if err := g.Wait(); err != nil {
		return model.Analytics{}, ErrInternal("Failed to fetch analytics", err)
	}
	return res, nil
}
