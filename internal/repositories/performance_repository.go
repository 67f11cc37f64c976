package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	apperrors "fibertrack/pkg/errors"
)

type PerformanceRepositoryInterface interface {
	FindMetric(ctx context.Context, teamMemberID int64) (*entities.PerformanceMetric, error)
	UpsertMetric(ctx context.Context, teamMemberID int64, data dto.UpsertPerformanceMetricDTO) (*entities.PerformanceMetric, error)
	FindMonthly(ctx context.Context, month, year int) (*entities.MonthlyTeamPerformance, error)
	UpsertMonthly(ctx context.Context, month, year int, data dto.UpsertMonthlyPerformanceDTO) (*entities.MonthlyTeamPerformance, error)
	ListMonthlyByYear(ctx context.Context, year int) ([]entities.MonthlyTeamPerformance, error)
}

type PerformanceRepository struct {
	storage *pgxpool.Pool
}

func NewPerformanceRepository(storage *pgxpool.Pool) PerformanceRepositoryInterface {
	return &PerformanceRepository{storage: storage}
}

func (r *PerformanceRepository) FindMetric(ctx context.Context, teamMemberID int64) (*entities.PerformanceMetric, error) {
	query, args, err := sq.Select("team_member_id", "projects_completed", "avg_completion_days", "customer_satisfaction", "updated_at").
		From("performance_metrics").
		Where(sq.Eq{"team_member_id": teamMemberID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var m entities.PerformanceMetric
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&m.TeamMemberID, &m.ProjectsCompleted, &m.AvgCompletionDays, &m.CustomerSatisfaction, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("finding metric for member %d: %w", teamMemberID, err)
	}
	return &m, nil
}

// UpsertMetric writes the full scorecard in one statement; repeating the same
// payload leaves the row unchanged apart from updated_at.
func (r *PerformanceRepository) UpsertMetric(ctx context.Context, teamMemberID int64, data dto.UpsertPerformanceMetricDTO) (*entities.PerformanceMetric, error) {
	query, args, err := sq.Insert("performance_metrics").
		Columns("team_member_id", "projects_completed", "avg_completion_days", "customer_satisfaction").
		Values(teamMemberID, data.ProjectsCompleted, data.AvgCompletionDays, data.CustomerSatisfaction).
		Suffix(`ON CONFLICT (team_member_id) DO UPDATE SET
			projects_completed = EXCLUDED.projects_completed,
			avg_completion_days = EXCLUDED.avg_completion_days,
			customer_satisfaction = EXCLUDED.customer_satisfaction,
			updated_at = NOW()
		RETURNING team_member_id, projects_completed, avg_completion_days, customer_satisfaction, updated_at`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var m entities.PerformanceMetric
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&m.TeamMemberID, &m.ProjectsCompleted, &m.AvgCompletionDays, &m.CustomerSatisfaction, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upserting metric for member %d: %w", teamMemberID, err)
	}
	return &m, nil
}

func (r *PerformanceRepository) FindMonthly(ctx context.Context, month, year int) (*entities.MonthlyTeamPerformance, error) {
	query, args, err := sq.Select("month", "year", "projects_completed", "avg_completion_days", "avg_satisfaction").
		From("monthly_team_performance").
		Where(sq.Eq{"month": month, "year": year}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var m entities.MonthlyTeamPerformance
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&m.Month, &m.Year, &m.ProjectsCompleted, &m.AvgCompletionDays, &m.AvgSatisfaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("finding monthly performance %d/%d: %w", month, year, err)
	}
	return &m, nil
}

func (r *PerformanceRepository) UpsertMonthly(ctx context.Context, month, year int, data dto.UpsertMonthlyPerformanceDTO) (*entities.MonthlyTeamPerformance, error) {
	query, args, err := sq.Insert("monthly_team_performance").
		Columns("month", "year", "projects_completed", "avg_completion_days", "avg_satisfaction").
		Values(month, year, data.ProjectsCompleted, data.AvgCompletionDays, data.AvgSatisfaction).
		Suffix(`ON CONFLICT (year, month) DO UPDATE SET
			projects_completed = EXCLUDED.projects_completed,
			avg_completion_days = EXCLUDED.avg_completion_days,
			avg_satisfaction = EXCLUDED.avg_satisfaction
		RETURNING month, year, projects_completed, avg_completion_days, avg_satisfaction`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var m entities.MonthlyTeamPerformance
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&m.Month, &m.Year, &m.ProjectsCompleted, &m.AvgCompletionDays, &m.AvgSatisfaction)
	if err != nil {
		return nil, fmt.Errorf("upserting monthly performance %d/%d: %w", month, year, err)
	}
	return &m, nil
}

func (r *PerformanceRepository) ListMonthlyByYear(ctx context.Context, year int) ([]entities.MonthlyTeamPerformance, error) {
	query, args, err := sq.Select("month", "year", "projects_completed", "avg_completion_days", "avg_satisfaction").
		From("monthly_team_performance").
		Where(sq.Eq{"year": year}).
		OrderBy("month ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying monthly performance for %d: %w", year, err)
	}
	defer rows.Close()

	months := make([]entities.MonthlyTeamPerformance, 0)
	for rows.Next() {
		var m entities.MonthlyTeamPerformance
		if err := rows.Scan(&m.Month, &m.Year, &m.ProjectsCompleted, &m.AvgCompletionDays, &m.AvgSatisfaction); err != nil {
			return nil, fmt.Errorf("scanning monthly performance: %w", err)
		}
		months = append(months, m)
	}
	return months, rows.Err()
}
