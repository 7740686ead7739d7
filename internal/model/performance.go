package model

import "time"

// Window — замкнутый интервал времени [Start, End].
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains сообщает, попадает ли момент t в окно (границы включительно).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// PerformanceWindows — фиксированные окна отчёта, привязанные к «сейчас».
type PerformanceWindows struct {
	Today     Window `json:"today"`
	Week      Window `json:"week"`
	Month     Window `json:"month"`
	LastMonth Window `json:"lastMonth"`
}

// PosterCounts — количество постов одного постера по окнам.
type PosterCounts struct {
	Daily     int `json:"daily"`
	Weekly    int `json:"weekly"`
	Monthly   int `json:"monthly"`
	LastMonth int `json:"lastMonth"`
	Total     int `json:"total"`
}

// PerformanceSummary — агрегаты по всей команде.
type PerformanceSummary struct {
	DailyPosts     int `json:"dailyPosts"`
	WeeklyPosts    int `json:"weeklyPosts"`
	MonthlyPosts   int `json:"monthlyPosts"`
	LastMonthPosts int `json:"lastMonthPosts"`
}

// MemberPerformance — показатели одного участника команды.
type MemberPerformance struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
	Daily    int    `json:"daily"`
	Weekly   int    `json:"weekly"`
	Monthly  int    `json:"monthly"`
	Total    int    `json:"total"`
}

// TeamPerformance — отчёт по команде: сводка, разбивка по участникам и рейтинг.
type TeamPerformance struct {
	TeamID          string              `json:"teamId"`
	Summary         PerformanceSummary  `json:"summary"`
	MemberBreakdown []MemberPerformance `json:"memberBreakdown"`
	TopPosters      []MemberPerformance `json:"topPosters"`
}
