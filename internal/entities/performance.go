package entities

import "time"

// PerformanceMetric is a per-team-member rolling scorecard, keyed by the team
// member id and upserted field-by-field.
type PerformanceMetric struct {
	TeamMemberID         int64     `json:"teamMemberId"`
	ProjectsCompleted    int       `json:"projectsCompleted"`
	AvgCompletionDays    float64   `json:"avgCompletionTime"`
	CustomerSatisfaction float64   `json:"customerSatisfaction"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// MonthlyTeamPerformance is an organization-wide aggregate snapshot, one row
// per (month, year).
type MonthlyTeamPerformance struct {
	Month             int     `json:"month"`
	Year              int     `json:"year"`
	ProjectsCompleted int     `json:"projectsCompleted"`
	AvgCompletionDays float64 `json:"avgCompletionTime"`
	AvgSatisfaction   float64 `json:"avgCustomerSatisfaction"`
}
