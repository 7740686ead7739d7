package repository

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователь не найден в БД.
	ErrUserNotFound = errors.New("user not found")

	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")

	// ErrLeaderTaken возвращается, если пользователь уже руководит другой командой
	// (нарушено уникальное ограничение poster_teams.leader_id).
	ErrLeaderTaken = errors.New("user already leads a team")

	// ErrAlreadyAssigned возвращается, если постер уже состоит в команде.
	ErrAlreadyAssigned = errors.New("user already belongs to a team")

	// ErrNotTeamMember возвращается, если пользователь не состоит в указанной команде.
	ErrNotTeamMember = errors.New("user does not belong to the team")
)

// uniqueViolation — код ошибки PostgreSQL для нарушения уникальности.
const uniqueViolation = "23505"
