package dto

type UpsertPerformanceMetricDTO struct {
	ProjectsCompleted    int     `json:"projectsCompleted" validate:"min=0"`
	AvgCompletionDays    float64 `json:"avgCompletionTime" validate:"min=0"`
	CustomerSatisfaction float64 `json:"customerSatisfaction" validate:"min=0,max=10"`
}

type UpsertMonthlyPerformanceDTO struct {
	ProjectsCompleted int     `json:"projectsCompleted" validate:"min=0"`
	AvgCompletionDays float64 `json:"avgCompletionTime" validate:"min=0"`
	AvgSatisfaction   float64 `json:"avgCustomerSatisfaction" validate:"min=0,max=10"`
}
