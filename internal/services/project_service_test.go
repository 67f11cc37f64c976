package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fibertrack/internal/dto"
	"fibertrack/internal/repositories/memory"
	"fibertrack/internal/workflow"
	"fibertrack/pkg/eventbus"
	apperrors "fibertrack/pkg/errors"
)

func newProjectService(t *testing.T) (ProjectServiceInterface, *memory.Store, *eventbus.Bus) {
	t.Helper()
	store := memory.NewStore()
	bus := eventbus.New(zap.NewNop())
	svc := NewProjectService(store.Projects(), store.StageHistory(), memory.NewTxManager(), bus, zap.NewNop())
	return svc, store, bus
}

func sampleProjectInput() dto.CreateProjectDTO {
	return dto.CreateProjectDTO{
		CustomerName:       "Acme Corp",
		ContactPerson:      "Jane Doe",
		Email:              "jane@acme.example",
		Phone:              "+1-555-0199",
		Address:            "12 Fiber Lane",
		ServiceType:        "fiber",
		Bandwidth:          500,
		AssignedTo:         1,
		ExpectedCompletion: "2026-11-30",
	}
}

func TestCreateProjectStartsAtRequirements(t *testing.T) {
	svc, _, bus := newProjectService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)
	bus.Wait()

	assert.Equal(t, workflow.StageRequirements, project.CurrentStage)
	assert.False(t, project.IsCompleted)
	assert.Equal(t, fmt.Sprintf("P-%d-0001", time.Now().Year()), project.ProjectCode)

	history, err := svc.GetStageHistory(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, workflow.StageRequirements, history[0].Stage)
	assert.Equal(t, "Project created", history[0].Notes)
	assert.Equal(t, int64(1), history[0].ChangedBy)
}

func TestCreateProjectCodesAreSequential(t *testing.T) {
	svc, _, bus := newProjectService(t)
	ctx := context.Background()

	first, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)
	second, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)
	bus.Wait()

	assert.NotEqual(t, first.ProjectCode, second.ProjectCode)
	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("P-%d-0001", year), first.ProjectCode)
	assert.Equal(t, fmt.Sprintf("P-%d-0002", year), second.ProjectCode)
}

func TestChangeStageAdvancesAndRecordsHistory(t *testing.T) {
	svc, _, bus := newProjectService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)

	updated, err := svc.ChangeStage(ctx, project.ID, dto.ChangeStageDTO{Stage: 2, ChangedBy: 7})
	require.NoError(t, err)
	bus.Wait()

	assert.Equal(t, workflow.StageSurvey, updated.CurrentStage)
	assert.False(t, updated.IsCompleted)

	history, err := svc.GetStageHistory(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Newest first.
	assert.Equal(t, workflow.StageSurvey, history[0].Stage)
	assert.Equal(t, "Advanced to Survey", history[0].Notes)
	assert.Equal(t, int64(7), history[0].ChangedBy)
	assert.Equal(t, workflow.StageRequirements, history[1].Stage)
}

func TestChangeStageKeepsCustomNotes(t *testing.T) {
	svc, _, bus := newProjectService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)

	_, err = svc.ChangeStage(ctx, project.ID, dto.ChangeStageDTO{Stage: 2, Notes: "site visit booked", ChangedBy: 7})
	require.NoError(t, err)
	bus.Wait()

	history, err := svc.GetStageHistory(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "site visit booked", history[0].Notes)
}

func TestChangeStageRejectsSkips(t *testing.T) {
	svc, _, bus := newProjectService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)

	_, err = svc.ChangeStage(ctx, project.ID, dto.ChangeStageDTO{Stage: 3, ChangedBy: 7})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransitionRejected)
	bus.Wait()

	// Rejected transitions must not leave a trace.
	current, err := svc.GetProjectByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StageRequirements, current.CurrentStage)

	history, err := svc.GetStageHistory(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestChangeStageDirectHandoverCompletes(t *testing.T) {
	svc, _, bus := newProjectService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)

	updated, err := svc.ChangeStage(ctx, project.ID, dto.ChangeStageDTO{Stage: 5, ChangedBy: 7})
	require.NoError(t, err)
	bus.Wait()

	assert.Equal(t, workflow.StageHandover, updated.CurrentStage)
	assert.True(t, updated.IsCompleted)

	// Reopening clears the completion flag.
	reopened, err := svc.ChangeStage(ctx, project.ID, dto.ChangeStageDTO{Stage: 4, ChangedBy: 7})
	require.NoError(t, err)
	bus.Wait()
	assert.False(t, reopened.IsCompleted)
}

func TestChangeStageUnknownProject(t *testing.T) {
	svc, _, _ := newProjectService(t)

	_, err := svc.ChangeStage(context.Background(), 999, dto.ChangeStageDTO{Stage: 2, ChangedBy: 7})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestChangeStageInvalidStageValue(t *testing.T) {
	svc, _, _ := newProjectService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)

	_, err = svc.ChangeStage(ctx, project.ID, dto.ChangeStageDTO{Stage: 6, ChangedBy: 7})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestUpdateProjectPatchesOnlyGivenFields(t *testing.T) {
	svc, _, bus := newProjectService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)

	newName := "Acme Holdings"
	updated, err := svc.UpdateProject(ctx, project.ID, dto.UpdateProjectDTO{CustomerName: &newName})
	require.NoError(t, err)
	bus.Wait()

	assert.Equal(t, "Acme Holdings", updated.CustomerName)
	assert.Equal(t, project.ContactPerson, updated.ContactPerson)
	assert.Equal(t, project.ProjectCode, updated.ProjectCode)
	assert.Equal(t, project.CurrentStage, updated.CurrentStage)
}

func TestUpdateProjectRejectsEmptyPatch(t *testing.T) {
	svc, _, _ := newProjectService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)

	_, err = svc.UpdateProject(ctx, project.ID, dto.UpdateProjectDTO{})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestSearchProjectsIsCaseInsensitive(t *testing.T) {
	svc, _, bus := newProjectService(t)
	ctx := context.Background()

	input := sampleProjectInput()
	_, err := svc.CreateProject(ctx, input)
	require.NoError(t, err)

	other := sampleProjectInput()
	other.CustomerName = "Globex"
	other.Email = "ops@globex.example"
	_, err = svc.CreateProject(ctx, other)
	require.NoError(t, err)
	bus.Wait()

	for _, q := range []string{"acme", "ACME", "Jane", "fiber lane"} {
		results, err := svc.SearchProjects(ctx, q)
		require.NoError(t, err)
		require.Len(t, results, 1, "query %q", q)
		assert.Equal(t, "Acme Corp", results[0].CustomerName)
	}

	byEmail, err := svc.SearchProjects(ctx, "globex.example")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Globex", byEmail[0].CustomerName)

	all, err := svc.SearchProjects(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetProjectsByFilters(t *testing.T) {
	svc, _, bus := newProjectService(t)
	ctx := context.Background()

	fiber := sampleProjectInput()
	_, err := svc.CreateProject(ctx, fiber)
	require.NoError(t, err)

	wireless := sampleProjectInput()
	wireless.ServiceType = "wireless"
	wp, err := svc.CreateProject(ctx, wireless)
	require.NoError(t, err)

	_, err = svc.ChangeStage(ctx, wp.ID, dto.ChangeStageDTO{Stage: 5, ChangedBy: 1})
	require.NoError(t, err)
	bus.Wait()

	byStage, err := svc.GetProjectsByStage(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byStage, 1)

	_, err = svc.GetProjectsByStage(ctx, 7)
	assert.Error(t, err)

	byType, err := svc.GetProjectsByServiceType(ctx, "wireless")
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	_, err = svc.GetProjectsByServiceType(ctx, "satellite")
	assert.Error(t, err)

	completed, err := svc.GetProjectsByStatus(ctx, true)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, wp.ID, completed[0].ID)

	active, err := svc.GetProjectsByStatus(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestChangeStageDefaultsChangedByToAssignee(t *testing.T) {
	svc, _, bus := newProjectService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, sampleProjectInput())
	require.NoError(t, err)

	_, err = svc.ChangeStage(ctx, project.ID, dto.ChangeStageDTO{Stage: 2, Notes: "site confirmed"})
	require.NoError(t, err)
	bus.Wait()

	history, err := svc.GetStageHistory(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "site confirmed", history[0].Notes)
	assert.Equal(t, project.AssignedTo, history[0].ChangedBy)
}

func TestGetStageHistoryUnknownProject(t *testing.T) {
	svc, _, _ := newProjectService(t)

	_, err := svc.GetStageHistory(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
