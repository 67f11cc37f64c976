package services

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/events"
	"fibertrack/internal/repositories"
	"fibertrack/internal/workflow"
	"fibertrack/pkg/eventbus"
	apperrors "fibertrack/pkg/errors"
)

type ProjectServiceInterface interface {
	GetProjects(ctx context.Context) ([]entities.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*entities.Project, error)
	GetProjectsByStage(ctx context.Context, stage int) ([]entities.Project, error)
	GetProjectsByServiceType(ctx context.Context, serviceType string) ([]entities.Project, error)
	GetProjectsByStatus(ctx context.Context, isCompleted bool) ([]entities.Project, error)
	SearchProjects(ctx context.Context, query string) ([]entities.Project, error)
	CreateProject(ctx context.Context, data dto.CreateProjectDTO) (*entities.Project, error)
	UpdateProject(ctx context.Context, id int64, data dto.UpdateProjectDTO) (*entities.Project, error)
	ChangeStage(ctx context.Context, id int64, data dto.ChangeStageDTO) (*entities.Project, error)
	GetStageHistory(ctx context.Context, projectID int64) ([]entities.StageHistory, error)
}

type ProjectService struct {
	projectRepo repositories.ProjectRepositoryInterface
	historyRepo repositories.StageHistoryRepositoryInterface
	txManager   repositories.TxManagerInterface
	bus         *eventbus.Bus
	logger      *zap.Logger
}

func NewProjectService(
	projectRepo repositories.ProjectRepositoryInterface,
	historyRepo repositories.StageHistoryRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) ProjectServiceInterface {
	return &ProjectService{
		projectRepo: projectRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		bus:         bus,
		logger:      logger,
	}
}

func (s *ProjectService) GetProjects(ctx context.Context) ([]entities.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id int64) (*entities.Project, error) {
	return s.projectRepo.FindByID(ctx, id)
}

func (s *ProjectService) GetProjectsByStage(ctx context.Context, stage int) ([]entities.Project, error) {
	st := workflow.Stage(stage)
	if !st.Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown stage %d", stage))
	}
	return s.projectRepo.FindByStage(ctx, st)
}

func (s *ProjectService) GetProjectsByServiceType(ctx context.Context, serviceType string) ([]entities.Project, error) {
	st := entities.ServiceType(serviceType)
	if !st.Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown service type %q", serviceType))
	}
	return s.projectRepo.FindByServiceType(ctx, st)
}

func (s *ProjectService) GetProjectsByStatus(ctx context.Context, isCompleted bool) ([]entities.Project, error) {
	return s.projectRepo.FindByStatus(ctx, isCompleted)
}

func (s *ProjectService) SearchProjects(ctx context.Context, query string) ([]entities.Project, error) {
	if query == "" {
		return s.projectRepo.GetAll(ctx)
	}
	return s.projectRepo.Search(ctx, query)
}

// CreateProject opens every project in the requirements stage and writes the
// initial history entry in the same transaction, so a project is never
// observable without its audit trail.
func (s *ProjectService) CreateProject(ctx context.Context, data dto.CreateProjectDTO) (*entities.Project, error) {
	var created *entities.Project

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		project, err := s.projectRepo.Create(ctx, data)
		if err != nil {
			return err
		}
		if _, err := s.historyRepo.Create(ctx, project.ID, workflow.StageRequirements, "Project created", data.AssignedTo); err != nil {
			return err
		}
		created = project
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		zap.Int64("id", created.ID),
		zap.String("projectCode", created.ProjectCode))
	s.bus.Publish(ctx, events.ProjectCreated{Project: *created})
	return created, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id int64, data dto.UpdateProjectDTO) (*entities.Project, error) {
	if data.Empty() {
		return nil, apperrors.NewBadRequestError("no fields to update")
	}

	project, err := s.projectRepo.Update(ctx, id, data)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.ProjectUpdated{Project: *project})
	return project, nil
}

// ChangeStage validates the transition, then applies the stage update and its
// history entry atomically. The notification event is published only after
// the transaction commits.
func (s *ProjectService) ChangeStage(ctx context.Context, id int64, data dto.ChangeStageDTO) (*entities.Project, error) {
	target := workflow.Stage(data.Stage)
	if !target.Valid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown stage %d", data.Stage))
	}

	var (
		updated *entities.Project
		entry   *entities.StageHistory
	)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		project, err := s.projectRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if !workflow.CanTransition(project.CurrentStage, target) {
			return &apperrors.HttpError{
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("cannot move from %s to %s", project.CurrentStage.Label(), target.Label()),
				Err:     apperrors.ErrTransitionRejected,
			}
		}

		updated, err = s.projectRepo.UpdateStage(ctx, id, target)
		if err != nil {
			return err
		}

		notes := data.Notes
		if notes == "" {
			notes = "Advanced to " + target.Label()
		}
		changedBy := data.ChangedBy
		if changedBy == 0 {
			changedBy = project.AssignedTo
		}
		entry, err = s.historyRepo.Create(ctx, id, target, notes, changedBy)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project stage changed",
		zap.Int64("id", updated.ID),
		zap.Int("stage", int(updated.CurrentStage)),
		zap.Bool("isCompleted", updated.IsCompleted))
	s.bus.Publish(ctx, events.ProjectStageChanged{Project: *updated, Entry: *entry})
	return updated, nil
}

func (s *ProjectService) GetStageHistory(ctx context.Context, projectID int64) ([]entities.StageHistory, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.historyRepo.ListByProject(ctx, projectID)
}
