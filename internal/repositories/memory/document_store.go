package memory

import (
	"context"
	"sort"
	"time"

	"fibertrack/internal/entities"
)

type DocumentStore struct {
	s *Store
}

func (d *DocumentStore) ListByProject(ctx context.Context, projectID int64) ([]entities.ProjectDocument, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	docs := make([]entities.ProjectDocument, 0)
	for _, doc := range d.s.documents {
		if doc.ProjectID == projectID {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].UploadedAt.Equal(docs[j].UploadedAt) {
			return docs[i].UploadedAt.After(docs[j].UploadedAt)
		}
		return docs[i].ID > docs[j].ID
	})
	return docs, nil
}

func (d *DocumentStore) Create(ctx context.Context, projectID int64, name, docType, url string) (*entities.ProjectDocument, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	d.s.nextDocumentID++
	doc := entities.ProjectDocument{
		ID:         d.s.nextDocumentID,
		ProjectID:  projectID,
		Name:       name,
		Type:       docType,
		URL:        url,
		UploadedAt: time.Now(),
	}
	d.s.documents[doc.ID] = doc
	return &doc, nil
}
