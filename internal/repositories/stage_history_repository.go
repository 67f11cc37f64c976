package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"fibertrack/internal/entities"
	"fibertrack/internal/workflow"
)

type StageHistoryRepositoryInterface interface {
	ListByProject(ctx context.Context, projectID int64) ([]entities.StageHistory, error)
	Create(ctx context.Context, projectID int64, stage workflow.Stage, notes string, changedBy int64) (*entities.StageHistory, error)
}

type StageHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewStageHistoryRepository(storage *pgxpool.Pool) StageHistoryRepositoryInterface {
	return &StageHistoryRepository{storage: storage}
}

// ListByProject returns entries newest first; id breaks ties between entries
// written in the same transaction.
func (r *StageHistoryRepository) ListByProject(ctx context.Context, projectID int64) ([]entities.StageHistory, error) {
	query, args, err := sq.Select("id", "project_id", "stage", "notes", "changed_by", "timestamp").
		From("stage_history").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("timestamp DESC", "id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying stage history: %w", err)
	}
	defer rows.Close()

	history := make([]entities.StageHistory, 0)
	for rows.Next() {
		var h entities.StageHistory
		if err := rows.Scan(&h.ID, &h.ProjectID, &h.Stage, &h.Notes, &h.ChangedBy, &h.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning stage history: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

func (r *StageHistoryRepository) Create(ctx context.Context, projectID int64, stage workflow.Stage, notes string, changedBy int64) (*entities.StageHistory, error) {
	query, args, err := sq.Insert("stage_history").
		Columns("project_id", "stage", "notes", "changed_by").
		Values(projectID, stage, notes, changedBy).
		Suffix("RETURNING id, project_id, stage, notes, changed_by, timestamp").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var h entities.StageHistory
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&h.ID, &h.ProjectID, &h.Stage, &h.Notes, &h.ChangedBy, &h.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("creating stage history entry: %w", err)
	}
	return &h, nil
}
