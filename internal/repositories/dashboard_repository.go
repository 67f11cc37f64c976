package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"fibertrack/internal/workflow"
)

type DashboardRepositoryInterface interface {
	CountByStage(ctx context.Context) (map[int]int, error)
	CountByStatus(ctx context.Context) (active int, completed int, err error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

// CountByStage always returns a key for every stage, zero when no projects
// sit in it.
func (r *DashboardRepository) CountByStage(ctx context.Context) (map[int]int, error) {
	counts := make(map[int]int, len(workflow.Stages()))
	for _, s := range workflow.Stages() {
		counts[int(s)] = 0
	}

	query, args, err := sq.Select("current_stage", "COUNT(*)").
		From("projects").
		GroupBy("current_stage").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("counting projects by stage: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stage, count int
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, fmt.Errorf("scanning stage count: %w", err)
		}
		counts[stage] = count
	}
	return counts, rows.Err()
}

func (r *DashboardRepository) CountByStatus(ctx context.Context) (int, int, error) {
	query, args, err := sq.Select(
		"COUNT(*) FILTER (WHERE NOT is_completed)",
		"COUNT(*) FILTER (WHERE is_completed)",
	).
		From("projects").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, err
	}

	var active, completed int
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).Scan(&active, &completed)
	if err != nil {
		return 0, 0, fmt.Errorf("counting projects by status: %w", err)
	}
	return active, completed, nil
}
