package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/repositories/memory"
	"fibertrack/internal/workflow"
	"fibertrack/pkg/eventbus"
	apperrors "fibertrack/pkg/errors"
)

func newTaskFixture(t *testing.T) (TaskServiceInterface, *entities.Project) {
	t.Helper()
	store := memory.NewStore()
	bus := eventbus.New(zap.NewNop())
	projects := NewProjectService(store.Projects(), store.StageHistory(), memory.NewTxManager(), bus, zap.NewNop())

	project, err := projects.CreateProject(context.Background(), sampleProjectInput())
	require.NoError(t, err)
	bus.Wait()

	return NewTaskService(store.Tasks(), store.Projects()), project
}

func TestCreateAndListTasks(t *testing.T) {
	svc, project := newTaskFixture(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, project.ID, dto.CreateTaskDTO{
		Title:      "Run cable survey",
		AssignedTo: 2,
		Stage:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, workflow.StageSurvey, task.Stage)
	assert.False(t, task.IsCompleted)

	tasks, err := svc.GetProjectTasks(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Run cable survey", tasks[0].Title)
}

func TestCreateTaskUnknownProject(t *testing.T) {
	svc, _ := newTaskFixture(t)

	_, err := svc.CreateTask(context.Background(), 404, dto.CreateTaskDTO{
		Title:      "Orphan task",
		AssignedTo: 2,
		Stage:      1,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetProjectTasks(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateTask(t *testing.T) {
	svc, project := newTaskFixture(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, project.ID, dto.CreateTaskDTO{
		Title:      "Install ONT",
		AssignedTo: 2,
		Stage:      4,
	})
	require.NoError(t, err)

	done := true
	updated, err := svc.UpdateTask(ctx, task.ID, dto.UpdateTaskDTO{IsCompleted: &done})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, "Install ONT", updated.Title)

	_, err = svc.UpdateTask(ctx, task.ID, dto.UpdateTaskDTO{})
	require.Error(t, err)

	_, err = svc.UpdateTask(ctx, 9000, dto.UpdateTaskDTO{IsCompleted: &done})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
