package services

import (
	"context"
	"fmt"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/repositories"
	apperrors "fibertrack/pkg/errors"
)

type PerformanceServiceInterface interface {
	GetMetric(ctx context.Context, teamMemberID int64) (*entities.PerformanceMetric, error)
	UpsertMetric(ctx context.Context, teamMemberID int64, data dto.UpsertPerformanceMetricDTO) (*entities.PerformanceMetric, error)
	GetMonthly(ctx context.Context, month, year int) (*entities.MonthlyTeamPerformance, error)
	UpsertMonthly(ctx context.Context, month, year int, data dto.UpsertMonthlyPerformanceDTO) (*entities.MonthlyTeamPerformance, error)
	GetYearlyOverview(ctx context.Context, year int) ([]entities.MonthlyTeamPerformance, error)
}

type PerformanceService struct {
	performanceRepo repositories.PerformanceRepositoryInterface
	teamRepo        repositories.TeamMemberRepositoryInterface
}

func NewPerformanceService(
	performanceRepo repositories.PerformanceRepositoryInterface,
	teamRepo repositories.TeamMemberRepositoryInterface,
) PerformanceServiceInterface {
	return &PerformanceService{performanceRepo: performanceRepo, teamRepo: teamRepo}
}

func (s *PerformanceService) GetMetric(ctx context.Context, teamMemberID int64) (*entities.PerformanceMetric, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamMemberID); err != nil {
		return nil, err
	}
	return s.performanceRepo.FindMetric(ctx, teamMemberID)
}

func (s *PerformanceService) UpsertMetric(ctx context.Context, teamMemberID int64, data dto.UpsertPerformanceMetricDTO) (*entities.PerformanceMetric, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamMemberID); err != nil {
		return nil, err
	}
	return s.performanceRepo.UpsertMetric(ctx, teamMemberID, data)
}

func validMonth(month int) bool { return month >= 1 && month <= 12 }

func (s *PerformanceService) GetMonthly(ctx context.Context, month, year int) (*entities.MonthlyTeamPerformance, error) {
	if !validMonth(month) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid month %d", month))
	}
	return s.performanceRepo.FindMonthly(ctx, month, year)
}

func (s *PerformanceService) UpsertMonthly(ctx context.Context, month, year int, data dto.UpsertMonthlyPerformanceDTO) (*entities.MonthlyTeamPerformance, error) {
	if !validMonth(month) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid month %d", month))
	}
	return s.performanceRepo.UpsertMonthly(ctx, month, year, data)
}

func (s *PerformanceService) GetYearlyOverview(ctx context.Context, year int) ([]entities.MonthlyTeamPerformance, error) {
	return s.performanceRepo.ListMonthlyByYear(ctx, year)
}
