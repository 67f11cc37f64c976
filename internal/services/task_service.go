package services

import (
	"context"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/repositories"
	apperrors "fibertrack/pkg/errors"
)

type TaskServiceInterface interface {
	GetProjectTasks(ctx context.Context, projectID int64) ([]entities.Task, error)
	CreateTask(ctx context.Context, projectID int64, data dto.CreateTaskDTO) (*entities.Task, error)
	UpdateTask(ctx context.Context, id int64, data dto.UpdateTaskDTO) (*entities.Task, error)
}

type TaskService struct {
	taskRepo    repositories.TaskRepositoryInterface
	projectRepo repositories.ProjectRepositoryInterface
}

func NewTaskService(
	taskRepo repositories.TaskRepositoryInterface,
	projectRepo repositories.ProjectRepositoryInterface,
) TaskServiceInterface {
	return &TaskService{taskRepo: taskRepo, projectRepo: projectRepo}
}

func (s *TaskService) GetProjectTasks(ctx context.Context, projectID int64) ([]entities.Task, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByProject(ctx, projectID)
}

func (s *TaskService) CreateTask(ctx context.Context, projectID int64, data dto.CreateTaskDTO) (*entities.Task, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.taskRepo.Create(ctx, projectID, data)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, data dto.UpdateTaskDTO) (*entities.Task, error) {
	if data.Empty() {
		return nil, apperrors.NewBadRequestError("no fields to update")
	}
	return s.taskRepo.Update(ctx, id, data)
}
