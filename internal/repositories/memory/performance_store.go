package memory

import (
	"context"
	"sort"
	"time"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	apperrors "fibertrack/pkg/errors"
)

type PerformanceStore struct {
	s *Store
}

func (p *PerformanceStore) FindMetric(ctx context.Context, teamMemberID int64) (*entities.PerformanceMetric, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	m, ok := p.s.metrics[teamMemberID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (p *PerformanceStore) UpsertMetric(ctx context.Context, teamMemberID int64, data dto.UpsertPerformanceMetricDTO) (*entities.PerformanceMetric, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	m := entities.PerformanceMetric{
		TeamMemberID:         teamMemberID,
		ProjectsCompleted:    data.ProjectsCompleted,
		AvgCompletionDays:    data.AvgCompletionDays,
		CustomerSatisfaction: data.CustomerSatisfaction,
		UpdatedAt:            time.Now(),
	}
	p.s.metrics[teamMemberID] = m
	return &m, nil
}

func (p *PerformanceStore) FindMonthly(ctx context.Context, month, year int) (*entities.MonthlyTeamPerformance, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	m, ok := p.s.monthly[[2]int{year, month}]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (p *PerformanceStore) UpsertMonthly(ctx context.Context, month, year int, data dto.UpsertMonthlyPerformanceDTO) (*entities.MonthlyTeamPerformance, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	m := entities.MonthlyTeamPerformance{
		Month:             month,
		Year:              year,
		ProjectsCompleted: data.ProjectsCompleted,
		AvgCompletionDays: data.AvgCompletionDays,
		AvgSatisfaction:   data.AvgSatisfaction,
	}
	p.s.monthly[[2]int{year, month}] = m
	return &m, nil
}

func (p *PerformanceStore) ListMonthlyByYear(ctx context.Context, year int) ([]entities.MonthlyTeamPerformance, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	months := make([]entities.MonthlyTeamPerformance, 0)
	for key, m := range p.s.monthly {
		if key[0] == year {
			months = append(months, m)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months, nil
}
