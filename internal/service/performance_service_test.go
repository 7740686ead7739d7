package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leads-admin-service/internal/auth"
	"leads-admin-service/internal/model"
	"leads-admin-service/internal/repository"
	"leads-admin-service/internal/service"
	"leads-admin-service/internal/service/mocks"
)

func TestAggregate(t *testing.T) {
	members := []model.User{
		{ID: "a", Name: "Ann", UserName: "ann"},
		{ID: "b", Name: "Bob", UserName: "bob"},
		{ID: "c", Name: "Cid", UserName: "cid"},
	}
	counts := map[string]model.PosterCounts{
		"a": {Daily: 1, Weekly: 3, Monthly: 10, LastMonth: 4, Total: 20},
		"b": {Daily: 2, Weekly: 5, Monthly: 12, LastMonth: 7, Total: 40},
		"c": {Daily: 0, Weekly: 0, Monthly: 0, LastMonth: 0, Total: 20},
	}

	got := service.Aggregate("t1", members, counts)

	assert.Equal(t, "t1", got.TeamID)
	assert.Equal(t, model.PerformanceSummary{DailyPosts: 3, WeeklyPosts: 8, MonthlyPosts: 22, LastMonthPosts: 11}, got.Summary)

	// Разбивка в порядке состава.
	require.Len(t, got.MemberBreakdown, 3)
	assert.Equal(t, "a", got.MemberBreakdown[0].ID)
	assert.Equal(t, "ann", got.MemberBreakdown[0].UserName)
	assert.Equal(t, 10, got.MemberBreakdown[0].Monthly)

	// Рейтинг: b первым, a и c с равным total сохраняют порядок состава.
	require.Len(t, got.TopPosters, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{got.TopPosters[0].ID, got.TopPosters[1].ID, got.TopPosters[2].ID})
}

func TestAggregate_NoPosts(t *testing.T) {
	members := []model.User{{ID: "a"}, {ID: "b"}}

	got := service.Aggregate("t1", members, map[string]model.PosterCounts{})

	assert.Equal(t, model.PerformanceSummary{}, got.Summary)
	require.Len(t, got.MemberBreakdown, 2)
	for _, m := range got.MemberBreakdown {
		assert.Zero(t, m.Total)
	}
	assert.Equal(t, []string{"a", "b"}, []string{got.TopPosters[0].ID, got.TopPosters[1].ID})
}

func TestAggregate_EmptyTeam(t *testing.T) {
	got := service.Aggregate("t1", nil, nil)

	assert.Equal(t, model.PerformanceSummary{}, got.Summary)
	assert.NotNil(t, got.MemberBreakdown)
	assert.Empty(t, got.MemberBreakdown)
	assert.NotNil(t, got.TopPosters)
	assert.Empty(t, got.TopPosters)
}

func TestAggregate_BreakdownNotReordered(t *testing.T) {
	members := []model.User{{ID: "low"}, {ID: "high"}}
	counts := map[string]model.PosterCounts{"low": {Total: 1}, "high": {Total: 9}}

	got := service.Aggregate("t1", members, counts)

	assert.Equal(t, "low", got.MemberBreakdown[0].ID)
	assert.Equal(t, "high", got.TopPosters[0].ID)
}

func TestPerformanceService_TeamPerformance(t *testing.T) {
	team := model.Team{ID: "t1", Name: "Alpha", LeaderID: "p1"}
	members := []model.User{{ID: "p1"}, {ID: "p2"}}
	now := time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)
	cal := fixedCalendar(now, time.Sunday)

	tests := []struct {
		name       string
		caller     auth.Principal
		teamID     string
		setupMocks func(tr *mocks.TeamRepository, ur *mocks.UserRepository, pr *mocks.PostRepository)
		wantStatus int
	}{
		{
			name:   "Success: root",
			caller: auth.Principal{UserID: "admin", Role: model.RoleRoot},
			teamID: "t1",
			setupMocks: func(tr *mocks.TeamRepository, ur *mocks.UserRepository, pr *mocks.PostRepository) {
				tr.On("GetByID", mock.Anything, "t1").Return(team, nil)
				ur.On("ListTeamMembers", mock.Anything, "t1").Return(members, nil)
				pr.On("CountByPoster", mock.Anything, []string{"p1", "p2"}, cal.Windows()).
					Return(map[string]model.PosterCounts{"p2": {Daily: 1, Total: 5}}, nil)
			},
		},
		{
			name:   "Success: leader of this team",
			caller: auth.Principal{UserID: "p1", Role: model.RolePoster},
			teamID: "t1",
			setupMocks: func(tr *mocks.TeamRepository, ur *mocks.UserRepository, pr *mocks.PostRepository) {
				tr.On("GetByID", mock.Anything, "t1").Return(team, nil)
				ur.On("ListTeamMembers", mock.Anything, "t1").Return(members, nil)
				pr.On("CountByPoster", mock.Anything, mock.Anything, mock.Anything).
					Return(map[string]model.PosterCounts{"p2": {Daily: 1, Total: 5}}, nil)
			},
		},
		{
			name:   "Error: poster who does not lead the team",
			caller: auth.Principal{UserID: "p2", Role: model.RolePoster},
			teamID: "t1",
			setupMocks: func(tr *mocks.TeamRepository, ur *mocks.UserRepository, pr *mocks.PostRepository) {
				tr.On("GetByID", mock.Anything, "t1").Return(team, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Error: seller role",
			caller:     auth.Principal{UserID: "s1", Role: model.RoleSeller},
			teamID:     "t1",
			setupMocks: func(tr *mocks.TeamRepository, ur *mocks.UserRepository, pr *mocks.PostRepository) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Error: empty team id",
			caller:     auth.Principal{UserID: "admin", Role: model.RoleRoot},
			teamID:     "",
			setupMocks: func(tr *mocks.TeamRepository, ur *mocks.UserRepository, pr *mocks.PostRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Error: team not found",
			caller: auth.Principal{UserID: "admin", Role: model.RoleRoot},
			teamID: "nope",
			setupMocks: func(tr *mocks.TeamRepository, ur *mocks.UserRepository, pr *mocks.PostRepository) {
				tr.On("GetByID", mock.Anything, "nope").Return(model.Team{}, repository.ErrTeamNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "Error: counting fails",
			caller: auth.Principal{UserID: "admin", Role: model.RoleRoot},
			teamID: "t1",
			setupMocks: func(tr *mocks.TeamRepository, ur *mocks.UserRepository, pr *mocks.PostRepository) {
				tr.On("GetByID", mock.Anything, "t1").Return(team, nil)
				ur.On("ListTeamMembers", mock.Anything, "t1").Return(members, nil)
				pr.On("CountByPoster", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := new(mocks.TeamRepository)
			ur := new(mocks.UserRepository)
			pr := new(mocks.PostRepository)
			tt.setupMocks(tr, ur, pr)

			svc := service.NewPerformanceService(tr, ur, pr, cal)
			got, err := svc.TeamPerformance(context.Background(), tt.caller, tt.teamID)

			if tt.wantStatus != 0 {
				assertStatus(t, err, tt.wantStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, got.Summary.DailyPosts)
				assert.Len(t, got.MemberBreakdown, 2)
				assert.Equal(t, "p2", got.TopPosters[0].ID)
			}
			tr.AssertExpectations(t)
			ur.AssertExpectations(t)
			pr.AssertExpectations(t)
		})
	}
}
