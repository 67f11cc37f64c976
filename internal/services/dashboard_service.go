package services

import (
	"context"

	"fibertrack/internal/dto"
	"fibertrack/internal/repositories"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStats, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
}

func NewDashboardService(dashboardRepo repositories.DashboardRepositoryInterface) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	stageStats, err := s.dashboardRepo.CountByStage(ctx)
	if err != nil {
		return nil, err
	}

	active, completed, err := s.dashboardRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		StageStats:     stageStats,
		ActiveCount:    active,
		CompletedCount: completed,
		TotalCount:     active + completed,
	}, nil
}
