package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"leads-admin-service/internal/logger"
	"leads-admin-service/internal/model"
	"leads-admin-service/internal/repository"
)

// TeamService содержит бизнес-логику команд постеров: создание, состав, удаление.
// Каждая изменяющая операция выполняется в одной транзакции, проверки идут до первой записи.
type TeamService struct {
	teams     TeamRepository
	users     UserRepository
	txManager TransactionManager
	log       *logger.Logger
	newID     func() string
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(teams TeamRepository, users UserRepository, txManager TransactionManager, log *logger.Logger) *TeamService {
	return &TeamService{
		teams:     teams,
		users:     users,
		txManager: txManager,
		log:       log,
		newID:     uuid.NewString,
	}
}

// ListTeams возвращает все команды с лидером и числом участников.
func (s *TeamService) ListTeams(ctx context.Context) ([]model.TeamListItem, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, ErrInternal("failed to load teams", err)
	}
	return teams, nil
}

// GetTeam возвращает команду вместе с лидером и полным составом.
func (s *TeamService) GetTeam(ctx context.Context, teamID string) (model.TeamDetails, error) {
	if teamID == "" {
		return model.TeamDetails{}, ErrBadRequest("team id is required")
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.TeamDetails{}, ErrNotFound("team not found")
		}
		return model.TeamDetails{}, ErrInternal("failed to get team", err)
	}

	leader, err := s.users.GetByID(ctx, team.LeaderID)
	if err != nil {
		return model.TeamDetails{}, ErrInternal("failed to get team leader", err)
	}

	members, err := s.users.ListTeamMembers(ctx, teamID)
	if err != nil {
		return model.TeamDetails{}, ErrInternal("failed to get team members", err)
	}

	return model.TeamDetails{Team: team, Leader: leader, Members: members}, nil
}

// CreateTeam создаёт команду и сразу делает лидера её участником.
// Команда никогда не бывает видна без лидера в составе: обе записи в одной транзакции.
func (s *TeamService) CreateTeam(ctx context.Context, name, leaderID string) (model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" || leaderID == "" {
		return model.Team{}, ErrBadRequest("name and leaderId are required")
	}

	var created model.Team
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		leader, err := s.users.GetByID(ctx, leaderID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return ErrNotFound("leader user not found")
			}
			return err
		}
		if leader.Role != model.RolePoster {
			return ErrBadRequest("leader must be of type poster")
		}

		_, err = s.teams.GetByLeader(ctx, leaderID)
		switch {
		case err == nil:
			return ErrBadRequest("this user is already a leader of a team")
		case !errors.Is(err, repository.ErrTeamNotFound):
			return err
		}

		if leader.TeamID != nil {
			return ErrBadRequest("leader already belongs to a team")
		}

		created, err = s.teams.Create(ctx, model.Team{ID: s.newID(), Name: name, LeaderID: leaderID})
		if err != nil {
			if errors.Is(err, repository.ErrLeaderTaken) {
				return ErrConflict("this user is already a leader of a team")
			}
			return err
		}

		if _, err := s.users.AssignToTeam(ctx, leaderID, created.ID); err != nil {
			if errors.Is(err, repository.ErrAlreadyAssigned) {
				return ErrBadRequest("leader already belongs to a team")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return model.Team{}, fromTx(err, "failed to create team")
	}

	s.log.Audit("team created", "team_id", created.ID, "leader_id", leaderID)
	return created, nil
}

// DeleteTeam отвязывает всех участников и удаляет команду в одной транзакции.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	if teamID == "" {
		return ErrBadRequest("team id is required")
	}

	var detached int64
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				return ErrNotFound("team not found")
			}
			return err
		}

		n, err := s.users.DetachTeamMembers(ctx, teamID)
		if err != nil {
			return err
		}
		detached = n

		return s.teams.Delete(ctx, teamID)
	})
	if err != nil {
		return fromTx(err, "failed to delete team")
	}

	s.log.Audit("team deleted", "team_id", teamID, "detached_members", detached)
	return nil
}

// AssignMember добавляет свободного постера в команду.
func (s *TeamService) AssignMember(ctx context.Context, teamID, posterID string) (model.User, error) {
	if posterID == "" {
		return model.User{}, ErrBadRequest("posterId required")
	}

	var updated model.User
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		poster, err := s.users.GetByID(ctx, posterID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return ErrNotFound("poster not found")
			}
			return err
		}
		if poster.Role != model.RolePoster {
			return ErrBadRequest("user must be a poster")
		}
		if poster.TeamID != nil {
			return ErrBadRequest("poster already belongs to a team")
		}

		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				return ErrNotFound("team not found")
			}
			return err
		}

		updated, err = s.users.AssignToTeam(ctx, posterID, teamID)
		if err != nil {
			if errors.Is(err, repository.ErrAlreadyAssigned) {
				return ErrBadRequest("poster already belongs to a team")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return model.User{}, fromTx(err, "failed to assign poster")
	}

	s.log.Infow("poster assigned", "team_id", teamID, "poster_id", posterID)
	return updated, nil
}

// RemoveMember убирает постера из команды. Лидера так убрать нельзя:
// сначала нужно сменить лидера или удалить команду.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, posterID string) (model.User, error) {
	if posterID == "" {
		return model.User{}, ErrBadRequest("posterId required")
	}

	var updated model.User
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		poster, err := s.users.GetByID(ctx, posterID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return ErrNotFound("poster not found")
			}
			return err
		}
		if poster.TeamID == nil || *poster.TeamID != teamID {
			return ErrBadRequest("poster does not belong to this team")
		}

		team, err := s.teams.GetByID(ctx, teamID)
		if err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				return ErrNotFound("team not found")
			}
			return err
		}
		if team.LeaderID == posterID {
			return ErrConflict("cannot remove the leader, reassign leader first")
		}

		updated, err = s.users.RemoveFromTeam(ctx, posterID, teamID)
		if err != nil {
			if errors.Is(err, repository.ErrNotTeamMember) {
				return ErrBadRequest("poster does not belong to this team")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return model.User{}, fromTx(err, "failed to remove poster")
	}

	s.log.Infow("poster removed", "team_id", teamID, "poster_id", posterID)
	return updated, nil
}

// LeaderStatus сообщает, руководит ли пользователь какой-нибудь командой.
func (s *TeamService) LeaderStatus(ctx context.Context, userID string) (model.LeaderStatus, error) {
	team, err := s.teams.GetByLeader(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.LeaderStatus{IsLeader: false}, nil
		}
		return model.LeaderStatus{}, ErrInternal("failed to check team leader", err)
	}
	return model.LeaderStatus{IsLeader: true, TeamID: &team.ID, TeamName: &team.Name}, nil
}
