package model

import "time"

// Post — лид, созданный постером. В аналитике служит единицей подсчёта.
type Post struct {
	ID        string    `json:"id"`
	PosterID  string    `json:"posterId"`
	CreatedAt time.Time `json:"createdAt"`
	Deleted   bool      `json:"deleted"`
	Claimed   bool      `json:"claimed"`
}

// PurgeCounts — сколько записей каждого типа удалено при чистке лидов.
type PurgeCounts struct {
	Posts        int64 `json:"deletedPosts"`
	Claims       int64 `json:"deletedClaims"`
	DeletionLogs int64 `json:"deletedDeletionLogs"`
}

// Add суммирует счётчики батча в общий итог.
func (c *PurgeCounts) Add(o PurgeCounts) {
	c.Posts += o.Posts
	c.Claims += o.Claims
	c.DeletionLogs += o.DeletionLogs
}

// PurgeResult — ответ на запрос чистки лидов.
type PurgeResult struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	PurgeCounts
}
