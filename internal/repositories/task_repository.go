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

type TaskRepositoryInterface interface {
	ListByProject(ctx context.Context, projectID int64) ([]entities.Task, error)
	Create(ctx context.Context, projectID int64, data dto.CreateTaskDTO) (*entities.Task, error)
	Update(ctx context.Context, id int64, data dto.UpdateTaskDTO) (*entities.Task, error)
}

type TaskRepository struct {
	storage *pgxpool.Pool
}

func NewTaskRepository(storage *pgxpool.Pool) TaskRepositoryInterface {
	return &TaskRepository{storage: storage}
}

const taskColumns = "id, project_id, title, description, assigned_to, stage, is_completed, due_date, created_at"

func scanTask(row pgx.Row) (*entities.Task, error) {
	var t entities.Task
	err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.AssignedTo,
		&t.Stage, &t.IsCompleted, &t.DueDate, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]entities.Task, error) {
	query, args, err := sq.Select(taskColumns).
		From("tasks").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, projectID int64, data dto.CreateTaskDTO) (*entities.Task, error) {
	query, args, err := sq.Insert("tasks").
		Columns("project_id", "title", "description", "assigned_to", "stage", "is_completed", "due_date").
		Values(projectID, data.Title, data.Description, data.AssignedTo, data.Stage, false, data.DueDate).
		Suffix("RETURNING " + taskColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanTask(queryEngine(ctx, r.storage).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) Update(ctx context.Context, id int64, data dto.UpdateTaskDTO) (*entities.Task, error) {
	b := sq.Update("tasks")

	if data.Title != nil {
		b = b.Set("title", *data.Title)
	}
	if data.Description.Valid {
		b = b.Set("description", data.Description)
	}
	if data.AssignedTo != nil {
		b = b.Set("assigned_to", *data.AssignedTo)
	}
	if data.Stage != nil {
		b = b.Set("stage", *data.Stage)
	}
	if data.IsCompleted != nil {
		b = b.Set("is_completed", *data.IsCompleted)
	}
	if data.DueDate.Valid {
		b = b.Set("due_date", data.DueDate)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + taskColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanTask(queryEngine(ctx, r.storage).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("updating task %d: %w", id, err)
	}
	return t, nil
}
