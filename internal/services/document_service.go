package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"fibertrack/internal/entities"
	"fibertrack/internal/events"
	"fibertrack/internal/repositories"
	"fibertrack/pkg/eventbus"
	"fibertrack/pkg/filestorage"
)

type DocumentServiceInterface interface {
	GetProjectDocuments(ctx context.Context, projectID int64) ([]entities.ProjectDocument, error)
	UploadDocument(ctx context.Context, projectID int64, file io.Reader, fileName, docType string) (*entities.ProjectDocument, error)
}

type DocumentService struct {
	documentRepo repositories.DocumentRepositoryInterface
	projectRepo  repositories.ProjectRepositoryInterface
	storage      filestorage.FileStorage
	bus          *eventbus.Bus
	logger       *zap.Logger
}

func NewDocumentService(
	documentRepo repositories.DocumentRepositoryInterface,
	projectRepo repositories.ProjectRepositoryInterface,
	storage filestorage.FileStorage,
	bus *eventbus.Bus,
	logger *zap.Logger,
) DocumentServiceInterface {
	return &DocumentService{
		documentRepo: documentRepo,
		projectRepo:  projectRepo,
		storage:      storage,
		bus:          bus,
		logger:       logger,
	}
}

func (s *DocumentService) GetProjectDocuments(ctx context.Context, projectID int64) ([]entities.ProjectDocument, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.documentRepo.ListByProject(ctx, projectID)
}

func (s *DocumentService) UploadDocument(ctx context.Context, projectID int64, file io.Reader, fileName, docType string) (*entities.ProjectDocument, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	saved, err := s.storage.Save(file, fileName, "documents")
	if err != nil {
		return nil, fmt.Errorf("saving document file: %w", err)
	}
	url := "/uploads/" + saved

	doc, err := s.documentRepo.Create(ctx, projectID, fileName, docType, url)
	if err != nil {
		// The metadata row failed, so the stored file is orphaned. Best
		// effort cleanup.
		if delErr := s.storage.Delete(url); delErr != nil {
			s.logger.Warn("cleaning up orphaned document file failed",
				zap.String("url", url), zap.Error(delErr))
		}
		return nil, err
	}

	s.bus.Publish(ctx, events.ProjectDocumentUploaded{Project: *project, Document: *doc})
	return doc, nil
}
