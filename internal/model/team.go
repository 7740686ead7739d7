package model

import "time"

// Team описывает команду постеров с единственным лидером.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LeaderID  string    `json:"leaderId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TeamListItem — команда в общем списке вместе с лидером и числом участников.
type TeamListItem struct {
	Team
	Leader      UserSummary `json:"leader"`
	MemberCount int         `json:"memberCount"`
}

// TeamDetails — команда с лидером и полным составом.
type TeamDetails struct {
	Team
	Leader  User   `json:"leader"`
	Members []User `json:"members"`
}

// LeaderStatus отвечает на вопрос «является ли пользователь лидером какой-то команды».
type LeaderStatus struct {
	IsLeader bool    `json:"isLeader"`
	TeamID   *string `json:"teamId"`
	TeamName *string `json:"teamName"`
}
