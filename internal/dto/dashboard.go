package dto

// DashboardStats is the aggregate view rendered on the dashboard. StageStats
// always contains all five stages, zero-defaulted.
type DashboardStats struct {
	StageStats     map[int]int `json:"stageStats"`
	ActiveCount    int         `json:"activeCount"`
	CompletedCount int         `json:"completedCount"`
	TotalCount     int         `json:"totalCount"`
}
