package service

import (
	"context"
	"errors"

	"leads-admin-service/internal/logger"
	"leads-admin-service/internal/model"
	"leads-admin-service/internal/repository"
)

// UserService содержит операции администратора над пользователями.
type UserService struct {
	users     UserRepository
	teams     TeamRepository
	txManager TransactionManager
	log       *logger.Logger
}

// NewUserService создаёт новый сервис для операций над пользователями.
func NewUserService(users UserRepository, teams TeamRepository, txManager TransactionManager, log *logger.Logger) *UserService {
	return &UserService{
		users:     users,
		teams:     teams,
		txManager: txManager,
		log:       log,
	}
}

// UnassignedPosters возвращает активных постеров, которых можно добавить в команду.
func (s *UserService) UnassignedPosters(ctx context.Context) ([]model.UserSummary, error) {
	posters, err := s.users.ListUnassignedPosters(ctx)
	if err != nil {
		return nil, ErrInternal("failed to fetch poster list", err)
	}
	return posters, nil
}

// DeleteUser безвозвратно удаляет пользователя и принадлежащие ему записи.
// Удалить себя нельзя; лидера команды нельзя удалить, пока команда существует.
func (s *UserService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if userID == "" {
		return ErrBadRequest("User ID required")
	}
	if actorID == userID {
		return ErrBadRequest("You cannot delete yourself")
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return ErrNotFound("User not found")
			}
			return err
		}

		_, err = s.teams.GetByLeader(ctx, userID)
		switch {
		case err == nil:
			return ErrConflict("User is a team leader. Reassign or delete team first.")
		case !errors.Is(err, repository.ErrTeamNotFound):
			return err
		}

		return s.users.DeleteWithOwnedRecords(ctx, user)
	})
	if err != nil {
		return fromTx(err, "Failed to hard delete user")
	}

	s.log.Audit("user deleted", "user_id", userID, "by", actorID)
	return nil
}
