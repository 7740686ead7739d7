package model

// UserStats — количество пользователей по ролям.
type UserStats struct {
	TotalUsers   int `json:"totalUsers"`
	TotalPosters int `json:"totalPosters"`
	TotalSellers int `json:"totalSellers"`
}

// LeadStats — количество лидов по состояниям.
type LeadStats struct {
	TotalLeads     int `json:"totalLeads"`
	DeletedLeads   int `json:"deletedLeads"`
	AvailableLeads int `json:"availableLeads"`
}

// DashboardStats — общая статистика панели.
type DashboardStats struct {
	Users UserStats `json:"users"`
	Leads LeadStats `json:"leads"`
}

// Analytics — показатели за выбранный период.
type Analytics struct {
	Window         Window `json:"window"`
	TotalPosts     int    `json:"totalPosts"`
	DeletedPosts   int    `json:"deletedPosts"`
	AvailablePosts int    `json:"availablePosts"`
	Claims         int    `json:"dailyClaims"`
}
