package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/workflow"
	apperrors "fibertrack/pkg/errors"
)

type ProjectRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.Project, error)
	FindByID(ctx context.Context, id int64) (*entities.Project, error)
	FindByStage(ctx context.Context, stage workflow.Stage) ([]entities.Project, error)
	FindByServiceType(ctx context.Context, serviceType entities.ServiceType) ([]entities.Project, error)
	FindByStatus(ctx context.Context, isCompleted bool) ([]entities.Project, error)
	Search(ctx context.Context, query string) ([]entities.Project, error)
	Create(ctx context.Context, data dto.CreateProjectDTO) (*entities.Project, error)
	Update(ctx context.Context, id int64, data dto.UpdateProjectDTO) (*entities.Project, error)
	UpdateStage(ctx context.Context, id int64, stage workflow.Stage) (*entities.Project, error)
}

type ProjectRepository struct {
	storage *pgxpool.Pool
}

func NewProjectRepository(storage *pgxpool.Pool) ProjectRepositoryInterface {
	return &ProjectRepository{storage: storage}
}

var projectColumns = []string{
	"id", "project_code", "customer_name", "contact_person", "email", "phone",
	"address", "service_type", "bandwidth", "requirements", "assigned_to",
	"expected_completion", "current_stage", "is_completed", "created_at", "updated_at",
}

func selectProjects() sq.SelectBuilder {
	return sq.Select(projectColumns...).
		From("projects").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)
}

func scanProject(row pgx.Row) (*entities.Project, error) {
	var p entities.Project
	err := row.Scan(
		&p.ID, &p.ProjectCode, &p.CustomerName, &p.ContactPerson, &p.Email,
		&p.Phone, &p.Address, &p.ServiceType, &p.Bandwidth, &p.Requirements,
		&p.AssignedTo, &p.ExpectedCompletion, &p.CurrentStage, &p.IsCompleted,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) queryProjects(ctx context.Context, b sq.SelectBuilder) ([]entities.Project, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]entities.Project, error) {
	return r.queryProjects(ctx, selectProjects())
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*entities.Project, error) {
	query, args, err := selectProjects().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanProject(queryEngine(ctx, r.storage).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("finding project %d: %w", id, err)
	}
	return p, nil
}

func (r *ProjectRepository) FindByStage(ctx context.Context, stage workflow.Stage) ([]entities.Project, error) {
	return r.queryProjects(ctx, selectProjects().Where(sq.Eq{"current_stage": stage}))
}

func (r *ProjectRepository) FindByServiceType(ctx context.Context, serviceType entities.ServiceType) ([]entities.Project, error) {
	return r.queryProjects(ctx, selectProjects().Where(sq.Eq{"service_type": serviceType}))
}

func (r *ProjectRepository) FindByStatus(ctx context.Context, isCompleted bool) ([]entities.Project, error) {
	return r.queryProjects(ctx, selectProjects().Where(sq.Eq{"is_completed": isCompleted}))
}

func (r *ProjectRepository) Search(ctx context.Context, query string) ([]entities.Project, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return r.queryProjects(ctx, selectProjects().Where(sq.Or{
		sq.ILike{"customer_name": pattern},
		sq.ILike{"contact_person": pattern},
		sq.ILike{"project_code": pattern},
		sq.ILike{"address": pattern},
		sq.ILike{"email": pattern},
	}))
}

// Create inserts the project and derives the human-readable code from a
// dedicated sequence inside the same statement, so codes stay unique under
// concurrent creation.
func (r *ProjectRepository) Create(ctx context.Context, data dto.CreateProjectDTO) (*entities.Project, error) {
	query, args, err := sq.Insert("projects").
		Columns("project_code", "customer_name", "contact_person", "email", "phone",
			"address", "service_type", "bandwidth", "requirements", "assigned_to",
			"expected_completion", "current_stage", "is_completed").
		Values(
			sq.Expr("'P-' || to_char(now(), 'YYYY') || '-' || lpad(nextval('project_code_seq')::text, 4, '0')"),
			data.CustomerName, data.ContactPerson, data.Email, data.Phone,
			data.Address, data.ServiceType, data.Bandwidth, data.Requirements,
			data.AssignedTo, data.ExpectedCompletion, workflow.StageRequirements, false,
		).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanProject(queryEngine(ctx, r.storage).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return p, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, data dto.UpdateProjectDTO) (*entities.Project, error) {
	b := sq.Update("projects").Set("updated_at", sq.Expr("NOW()"))

	if data.CustomerName != nil {
		b = b.Set("customer_name", *data.CustomerName)
	}
	if data.ContactPerson != nil {
		b = b.Set("contact_person", *data.ContactPerson)
	}
	if data.Email != nil {
		b = b.Set("email", *data.Email)
	}
	if data.Phone != nil {
		b = b.Set("phone", *data.Phone)
	}
	if data.Address != nil {
		b = b.Set("address", *data.Address)
	}
	if data.ServiceType != nil {
		b = b.Set("service_type", *data.ServiceType)
	}
	if data.Bandwidth != nil {
		b = b.Set("bandwidth", *data.Bandwidth)
	}
	if data.Requirements.Valid {
		b = b.Set("requirements", data.Requirements)
	}
	if data.AssignedTo != nil {
		b = b.Set("assigned_to", *data.AssignedTo)
	}
	if data.ExpectedCompletion != nil {
		b = b.Set("expected_completion", *data.ExpectedCompletion)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanProject(queryEngine(ctx, r.storage).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("updating project %d: %w", id, err)
	}
	return p, nil
}

// UpdateStage sets the stage and recomputes the derived completion flag in one
// statement; no other path may touch is_completed.
func (r *ProjectRepository) UpdateStage(ctx context.Context, id int64, stage workflow.Stage) (*entities.Project, error) {
	query, args, err := sq.Update("projects").
		Set("current_stage", stage).
		Set("is_completed", stage.IsTerminal()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanProject(queryEngine(ctx, r.storage).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("updating stage of project %d: %w", id, err)
	}
	return p, nil
}
