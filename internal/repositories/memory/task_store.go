package memory

import (
	"context"
	"sort"
	"time"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/workflow"
	apperrors "fibertrack/pkg/errors"
)

type TaskStore struct {
	s *Store
}

func (t *TaskStore) ListByProject(ctx context.Context, projectID int64) ([]entities.Task, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	tasks := make([]entities.Task, 0)
	for _, task := range t.s.tasks {
		if task.ProjectID == projectID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

func (t *TaskStore) Create(ctx context.Context, projectID int64, data dto.CreateTaskDTO) (*entities.Task, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	t.s.nextTaskID++
	task := entities.Task{
		ID:          t.s.nextTaskID,
		ProjectID:   projectID,
		Title:       data.Title,
		Description: data.Description,
		AssignedTo:  data.AssignedTo,
		Stage:       workflow.Stage(data.Stage),
		IsCompleted: false,
		DueDate:     data.DueDate,
		CreatedAt:   time.Now(),
	}
	t.s.tasks[task.ID] = task
	return &task, nil
}

func (t *TaskStore) Update(ctx context.Context, id int64, data dto.UpdateTaskDTO) (*entities.Task, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	task, ok := t.s.tasks[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if data.Title != nil {
		task.Title = *data.Title
	}
	if data.Description.Valid {
		task.Description = data.Description
	}
	if data.AssignedTo != nil {
		task.AssignedTo = *data.AssignedTo
	}
	if data.Stage != nil {
		task.Stage = workflow.Stage(*data.Stage)
	}
	if data.IsCompleted != nil {
		task.IsCompleted = *data.IsCompleted
	}
	if data.DueDate.Valid {
		task.DueDate = data.DueDate
	}

	t.s.tasks[id] = task
	return &task, nil
}
