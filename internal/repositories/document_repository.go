package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"fibertrack/internal/entities"
)

type DocumentRepositoryInterface interface {
	ListByProject(ctx context.Context, projectID int64) ([]entities.ProjectDocument, error)
	Create(ctx context.Context, projectID int64, name, docType, url string) (*entities.ProjectDocument, error)
}

type DocumentRepository struct {
	storage *pgxpool.Pool
}

func NewDocumentRepository(storage *pgxpool.Pool) DocumentRepositoryInterface {
	return &DocumentRepository{storage: storage}
}

func (r *DocumentRepository) ListByProject(ctx context.Context, projectID int64) ([]entities.ProjectDocument, error) {
	query, args, err := sq.Select("id", "project_id", "name", "type", "url", "uploaded_at").
		From("project_documents").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("uploaded_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	docs := make([]entities.ProjectDocument, 0)
	for rows.Next() {
		var d entities.ProjectDocument
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.Name, &d.Type, &d.URL, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *DocumentRepository) Create(ctx context.Context, projectID int64, name, docType, url string) (*entities.ProjectDocument, error) {
	query, args, err := sq.Insert("project_documents").
		Columns("project_id", "name", "type", "url").
		Values(projectID, name, docType, url).
		Suffix("RETURNING id, project_id, name, type, url, uploaded_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var d entities.ProjectDocument
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&d.ID, &d.ProjectID, &d.Name, &d.Type, &d.URL, &d.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	return &d, nil
}
